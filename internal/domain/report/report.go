// Package report derives the statistics panel from a project snapshot.
package report

import (
	"sort"
	"time"

	"github.com/miraway/projects/internal/domain/project"
)

// DayLayout formats the bar chart's x-axis labels.
const DayLayout = "02-01-2006"

// Metric is a headline number with its change indicator.
type Metric struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Delta float64 `json:"delta"`
}

// StatusBar counts projects submitted on one day with one status.
type StatusBar struct {
	Day    string         `json:"day"`
	Status project.Status `json:"status"`
	Count  int            `json:"count"`

	date time.Time
}

// PrioritySlice counts projects with one priority.
type PrioritySlice struct {
	Priority project.Priority `json:"priority"`
	Count    int              `json:"count"`
}

// Stats is everything the statistics panel shows.
type Stats struct {
	Empty         bool            `json:"empty"`
	Open          Metric          `json:"open"`
	FirstResponse Metric          `json:"first_response"`
	AvgResolution Metric          `json:"avg_resolution"`
	Bars          []StatusBar     `json:"bars"`
	Slices        []PrioritySlice `json:"slices"`
}

// The response and resolution metrics are fixed display values, not derived
// from the data.
var (
	firstResponse = Metric{Label: "First response time (hours)", Value: 5.2, Delta: -1.5}
	avgResolution = Metric{Label: "Average resolution time (hours)", Value: 16, Delta: 2}
)

// Build computes the statistics for projects. An empty snapshot yields
// Stats{Empty: true} and no chart data.
func Build(projects []project.Project) Stats {
	if len(projects) == 0 {
		return Stats{Empty: true}
	}

	open := 0
	for _, p := range projects {
		if p.Status == project.StatusOpen {
			open++
		}
	}

	return Stats{
		Open:          Metric{Label: "Open projects", Value: float64(open)},
		FirstResponse: firstResponse,
		AvgResolution: avgResolution,
		Bars:          statusBars(projects),
		Slices:        prioritySlices(projects),
	}
}

// FormatDay rewrites an ISO date as dd-mm-yyyy.
func FormatDay(isoDate string) (string, error) {
	t, err := time.Parse(project.DateLayout, isoDate)
	if err != nil {
		return "", err
	}
	return t.Format(DayLayout), nil
}

type barKey struct {
	day    string
	status project.Status
}

// statusBars bins by (day, status). Rows whose date does not parse are left
// out of the chart.
func statusBars(projects []project.Project) []StatusBar {
	index := map[barKey]int{}
	var bars []StatusBar
	for _, p := range projects {
		t, err := p.Submitted()
		if err != nil {
			continue
		}
		key := barKey{day: t.Format(DayLayout), status: p.Status}
		if i, ok := index[key]; ok {
			bars[i].Count++
			continue
		}
		index[key] = len(bars)
		bars = append(bars, StatusBar{Day: key.day, Status: p.Status, Count: 1, date: t})
	}

	sort.SliceStable(bars, func(i, j int) bool {
		if !bars[i].date.Equal(bars[j].date) {
			return bars[i].date.Before(bars[j].date)
		}
		return statusRank(bars[i].Status) < statusRank(bars[j].Status)
	})
	return bars
}

func prioritySlices(projects []project.Project) []PrioritySlice {
	counts := map[project.Priority]int{}
	for _, p := range projects {
		counts[p.Priority]++
	}

	slices := make([]PrioritySlice, 0, len(counts))
	for _, pr := range project.Priorities {
		if n := counts[pr]; n > 0 {
			slices = append(slices, PrioritySlice{Priority: pr, Count: n})
			delete(counts, pr)
		}
	}
	// Values outside the enumeration can only come from rows written by hand.
	var rest []project.Priority
	for pr := range counts {
		rest = append(rest, pr)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, pr := range rest {
		slices = append(slices, PrioritySlice{Priority: pr, Count: counts[pr]})
	}
	return slices
}

func statusRank(s project.Status) int {
	for i, st := range project.Statuses {
		if st == s {
			return i
		}
	}
	return len(project.Statuses)
}
