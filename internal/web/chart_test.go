package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/miraway/projects/internal/domain/project"
	"github.com/miraway/projects/internal/domain/report"
)

func TestNewBarChart(t *testing.T) {
	chart := newBarChart([]report.StatusBar{
		{Day: "10-01-2024", Status: project.StatusOpen, Count: 2},
		{Day: "11-01-2024", Status: project.StatusOpen, Count: 1},
		{Day: "11-01-2024", Status: project.StatusClosed, Count: 1},
	})

	require.Equal(t, 2, chart.MaxCount)
	require.Len(t, chart.Bars, 3)
	require.Len(t, chart.Labels, 2)
	require.Equal(t, "10-01-2024", chart.Labels[0].Text)
	require.Equal(t, "11-01-2024", chart.Labels[1].Text)
	require.Len(t, chart.Legend, len(project.Statuses))

	// The tallest bar fills the plot; a half count is half as tall.
	require.InDelta(t, plotHeight, chart.Bars[0].H, 1e-9)
	require.InDelta(t, plotHeight/2, chart.Bars[1].H, 1e-9)
	require.InDelta(t, chart.BaseY, chart.Bars[0].Y+chart.Bars[0].H, 1e-9)

	// Closed sits two slots to the right of Open within the same day.
	require.InDelta(t, 2*barWidth, chart.Bars[2].X-chart.Bars[1].X, 1e-9)
	require.Equal(t, statusColors[project.StatusClosed], chart.Bars[2].Color)
}

func TestNewPieChart(t *testing.T) {
	chart := newPieChart([]report.PrioritySlice{
		{Priority: project.PriorityHigh, Count: 1},
		{Priority: project.PriorityLow, Count: 3},
	})

	require.False(t, chart.Full)
	require.Len(t, chart.Slices, 2)
	require.InDelta(t, 25.0, chart.Slices[0].Percent, 1e-9)
	require.InDelta(t, 75.0, chart.Slices[1].Percent, 1e-9)
	require.True(t, strings.HasPrefix(chart.Slices[0].Path, "M 120.00 120.00"))
	require.Contains(t, chart.Slices[1].Path, " 0 1 1 ")
}

func TestNewPieChart_SinglePriority(t *testing.T) {
	chart := newPieChart([]report.PrioritySlice{{Priority: project.PriorityMedium, Count: 4}})

	require.True(t, chart.Full)
	require.Len(t, chart.Slices, 1)
	require.InDelta(t, 100.0, chart.Slices[0].Percent, 1e-9)
}

func TestNewPage_Empty(t *testing.T) {
	page := newPage(project.Snapshot{})

	require.True(t, page.Stats.Empty)
	require.Empty(t, page.BarChart.Bars)
	require.Empty(t, page.PieChart.Slices)
	require.Nil(t, page.BannerFor(SectionCreate))
}

func TestPage_BannerFor(t *testing.T) {
	page := newPage(project.Snapshot{})
	page.Banner = &Banner{Section: SectionDelete, Error: true, Message: "nope"}

	require.Nil(t, page.BannerFor(SectionSave))
	require.Equal(t, "nope", page.BannerFor(SectionDelete).Message)
}

func TestStatusColor_Unknown(t *testing.T) {
	require.Equal(t, fallbackColor, statusColor(project.Status("Done")))
	require.Equal(t, fallbackColor, priorityColor(project.Priority("Urgent")))
}
