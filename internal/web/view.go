package web

import (
	"github.com/miraway/projects/internal/domain/project"
	"github.com/miraway/projects/internal/domain/report"
)

// Section identifies which control a banner belongs to.
type Section string

const (
	SectionCreate Section = "create"
	SectionDelete Section = "delete"
	SectionSave   Section = "save"
)

// Banner is an inline success or error message.
type Banner struct {
	Section Section
	Error   bool
	Message string
}

// Page is the view model for one render of the project page. It is built
// from a freshly loaded snapshot and nothing else.
type Page struct {
	Title      string
	Projects   project.Snapshot
	Statuses   []project.Status
	Priorities []project.Priority
	Created    *project.Project
	Banner     *Banner
	Stats      report.Stats
	BarChart   BarChart
	PieChart   PieChart
	DeleteID   string
}

func newPage(snap project.Snapshot) Page {
	stats := report.Build(snap)
	page := Page{
		Title:      "Project Management",
		Projects:   snap,
		Statuses:   project.Statuses,
		Priorities: project.Priorities,
		Stats:      stats,
	}
	if !stats.Empty {
		page.BarChart = newBarChart(stats.Bars)
		page.PieChart = newPieChart(stats.Slices)
	}
	return page
}

// BannerFor returns the banner when it belongs to section.
func (p Page) BannerFor(section Section) *Banner {
	if p.Banner != nil && p.Banner.Section == section {
		return p.Banner
	}
	return nil
}
