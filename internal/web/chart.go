package web

import (
	"fmt"
	"math"

	"github.com/miraway/projects/internal/domain/project"
	"github.com/miraway/projects/internal/domain/report"
)

var statusColors = map[project.Status]string{
	project.StatusOpen:       "#4c78a8",
	project.StatusInProgress: "#f58518",
	project.StatusClosed:     "#54a24b",
}

var priorityColors = map[project.Priority]string{
	project.PriorityHigh:   "#e45756",
	project.PriorityMedium: "#eeca3b",
	project.PriorityLow:    "#72b7b2",
}

const fallbackColor = "#9d9d9d"

// Bar chart geometry, in SVG user units.
const (
	barWidth     = 22.0
	groupGap     = 18.0
	plotHeight   = 200.0
	plotTop      = 10.0
	axisLeft     = 36.0
	labelBand    = 30.0
	minPlotWidth = 320.0
)

// BarShape is one rectangle of the status chart.
type BarShape struct {
	X, Y, W, H float64
	Color      string
	Title      string
}

// AxisLabel is a day label under a bar group.
type AxisLabel struct {
	X    float64
	Text string
}

// LegendEntry names a series colour.
type LegendEntry struct {
	Label string
	Color string
}

// BarChart is the status-by-day chart ready to draw.
type BarChart struct {
	Width, Height float64
	BaseY         float64
	AxisLeft      float64
	MaxCount      int
	Bars          []BarShape
	Labels        []AxisLabel
	Legend        []LegendEntry
}

// newBarChart lays out one group per day with a fixed slot per status, the
// way a status offset within each day reads.
func newBarChart(bars []report.StatusBar) BarChart {
	var days []string
	dayIndex := map[string]int{}
	maxCount := 0
	for _, b := range bars {
		if _, ok := dayIndex[b.Day]; !ok {
			dayIndex[b.Day] = len(days)
			days = append(days, b.Day)
		}
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	groupWidth := float64(len(project.Statuses))*barWidth + groupGap
	width := math.Max(minPlotWidth, axisLeft+float64(len(days))*groupWidth+groupGap)
	baseY := plotTop + plotHeight

	chart := BarChart{
		Width:    width,
		Height:   baseY + labelBand,
		BaseY:    baseY,
		AxisLeft: axisLeft,
		MaxCount: maxCount,
	}

	for _, b := range bars {
		slot := statusSlot(b.Status)
		h := 0.0
		if maxCount > 0 {
			h = float64(b.Count) / float64(maxCount) * plotHeight
		}
		chart.Bars = append(chart.Bars, BarShape{
			X:     axisLeft + groupGap + float64(dayIndex[b.Day])*groupWidth + float64(slot)*barWidth,
			Y:     baseY - h,
			W:     barWidth - 2,
			H:     h,
			Color: statusColor(b.Status),
			Title: fmt.Sprintf("%s · %s: %d", b.Day, b.Status, b.Count),
		})
	}

	for i, day := range days {
		chart.Labels = append(chart.Labels, AxisLabel{
			X:    axisLeft + groupGap + float64(i)*groupWidth + float64(len(project.Statuses))*barWidth/2,
			Text: day,
		})
	}

	for _, s := range project.Statuses {
		chart.Legend = append(chart.Legend, LegendEntry{Label: string(s), Color: statusColors[s]})
	}
	return chart
}

// SliceShape is one wedge of the priority chart.
type SliceShape struct {
	Path    string
	Color   string
	Label   string
	Count   int
	Percent float64
}

// PieChart is the priority chart ready to draw. Full is set when a single
// priority covers the whole pie and is drawn as a circle.
type PieChart struct {
	Size   float64
	CX, CY float64
	R      float64
	Full   bool
	Slices []SliceShape
}

func newPieChart(slices []report.PrioritySlice) PieChart {
	const size = 240.0
	chart := PieChart{Size: size, CX: size / 2, CY: size / 2, R: size/2 - 10}

	total := 0
	for _, s := range slices {
		total += s.Count
	}
	if total == 0 {
		return chart
	}
	chart.Full = len(slices) == 1

	angle := -math.Pi / 2
	for _, s := range slices {
		frac := float64(s.Count) / float64(total)
		end := angle + frac*2*math.Pi
		chart.Slices = append(chart.Slices, SliceShape{
			Path:    arcPath(chart.CX, chart.CY, chart.R, angle, end),
			Color:   priorityColor(s.Priority),
			Label:   string(s.Priority),
			Count:   s.Count,
			Percent: frac * 100,
		})
		angle = end
	}
	return chart
}

func arcPath(cx, cy, r, start, end float64) string {
	x1, y1 := cx+r*math.Cos(start), cy+r*math.Sin(start)
	x2, y2 := cx+r*math.Cos(end), cy+r*math.Sin(end)
	large := 0
	if end-start > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z", cx, cy, x1, y1, r, r, large, x2, y2)
}

func statusSlot(s project.Status) int {
	for i, st := range project.Statuses {
		if st == s {
			return i
		}
	}
	return len(project.Statuses) - 1
}

func statusColor(s project.Status) string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return fallbackColor
}

func priorityColor(p project.Priority) string {
	if c, ok := priorityColors[p]; ok {
		return c
	}
	return fallbackColor
}
