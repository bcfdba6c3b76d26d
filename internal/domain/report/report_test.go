package report

import (
	"testing"

	"github.com/miraway/projects/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestBuild_Empty(t *testing.T) {
	stats := Build(nil)
	require.True(t, stats.Empty)
	require.Empty(t, stats.Bars)
	require.Empty(t, stats.Slices)
}

func TestBuild_SameDayExample(t *testing.T) {
	stats := Build([]project.Project{
		{ID: "PROJECT-1", Description: "Migrate DB", Status: project.StatusOpen, Priority: project.PriorityHigh, DateSubmitted: "2024-01-10"},
		{ID: "PROJECT-2", Description: "Audit logs", Status: project.StatusOpen, Priority: project.PriorityLow, DateSubmitted: "2024-01-10"},
	})

	require.False(t, stats.Empty)
	require.Equal(t, float64(2), stats.Open.Value)
	require.Len(t, stats.Bars, 1)
	require.Equal(t, "10-01-2024", stats.Bars[0].Day)
	require.Equal(t, project.StatusOpen, stats.Bars[0].Status)
	require.Equal(t, 2, stats.Bars[0].Count)
	require.Equal(t, []PrioritySlice{
		{Priority: project.PriorityHigh, Count: 1},
		{Priority: project.PriorityLow, Count: 1},
	}, stats.Slices)
}

func TestBuild_BarsPerDayAndStatus(t *testing.T) {
	stats := Build([]project.Project{
		{ID: "PROJECT-1", Status: project.StatusClosed, Priority: project.PriorityLow, DateSubmitted: "2024-02-01"},
		{ID: "PROJECT-2", Status: project.StatusOpen, Priority: project.PriorityLow, DateSubmitted: "2024-02-01"},
		{ID: "PROJECT-3", Status: project.StatusOpen, Priority: project.PriorityMedium, DateSubmitted: "2024-01-31"},
		{ID: "PROJECT-4", Status: project.StatusInProgress, Priority: project.PriorityLow, DateSubmitted: "2024-02-01"},
		{ID: "PROJECT-5", Status: project.StatusClosed, Priority: project.PriorityLow, DateSubmitted: "2024-02-01"},
	})

	var got []StatusBar
	for _, b := range stats.Bars {
		got = append(got, StatusBar{Day: b.Day, Status: b.Status, Count: b.Count})
	}
	require.Equal(t, []StatusBar{
		{Day: "31-01-2024", Status: project.StatusOpen, Count: 1},
		{Day: "01-02-2024", Status: project.StatusOpen, Count: 1},
		{Day: "01-02-2024", Status: project.StatusInProgress, Count: 1},
		{Day: "01-02-2024", Status: project.StatusClosed, Count: 2},
	}, got)
	require.Equal(t, float64(2), stats.Open.Value)
	require.Equal(t, []PrioritySlice{
		{Priority: project.PriorityMedium, Count: 1},
		{Priority: project.PriorityLow, Count: 4},
	}, stats.Slices)
}

func TestBuild_SkipsUnparseableDates(t *testing.T) {
	stats := Build([]project.Project{
		{ID: "PROJECT-1", Status: project.StatusOpen, Priority: project.PriorityHigh, DateSubmitted: "yesterday"},
	})
	require.False(t, stats.Empty)
	require.Empty(t, stats.Bars)
	require.Len(t, stats.Slices, 1)
}

func TestBuild_PlaceholderMetrics(t *testing.T) {
	stats := Build([]project.Project{{ID: "PROJECT-1", Status: project.StatusClosed, Priority: project.PriorityHigh, DateSubmitted: "2024-01-10"}})
	require.Equal(t, 5.2, stats.FirstResponse.Value)
	require.Equal(t, -1.5, stats.FirstResponse.Delta)
	require.Equal(t, float64(16), stats.AvgResolution.Value)
	require.Equal(t, float64(0), stats.Open.Value)
}

func TestFormatDay(t *testing.T) {
	day, err := FormatDay("2024-01-10")
	require.NoError(t, err)
	require.Equal(t, "10-01-2024", day)

	_, err = FormatDay("10/01/2024")
	require.Error(t, err)
}
