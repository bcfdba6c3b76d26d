package mcp

import (
	"time"

	"github.com/miraway/projects/internal/domain/activity"
	"github.com/miraway/projects/internal/domain/project"
	"github.com/miraway/projects/internal/domain/report"
)

type ListProjectsParams struct{}

type ListProjectsResult struct {
	Count    int               `json:"count"`
	Projects []project.Project `json:"projects"`
}

type CreateProjectParams struct {
	Description string           `json:"description,omitempty" jsonschema:"Free-text project description"`
	Priority    project.Priority `json:"priority" jsonschema:"One of High, Medium, Low"`
}

type CreateProjectResult struct {
	Project project.Project `json:"project"`
}

type DeleteProjectParams struct {
	ID string `json:"id" jsonschema:"Project id, for example PROJECT-1"`
}

type DeleteProjectResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

type UpdateProjectParams struct {
	ID       string           `json:"id" jsonschema:"Project id, for example PROJECT-1"`
	Status   project.Status   `json:"status" jsonschema:"One of Open, In-Progress, Closed"`
	Priority project.Priority `json:"priority" jsonschema:"One of High, Medium, Low"`
}

type UpdateProjectResult struct {
	Edit project.Edit `json:"project"`
}

type SaveProjectsParams struct {
	Edits []project.Edit `json:"edits" jsonschema:"Status and priority for each project id; every row is written"`
}

type SaveProjectsResult struct {
	Saved int `json:"saved"`
}

type GetProjectStatsParams struct{}

type GetProjectStatsResult struct {
	Empty         bool                   `json:"empty"`
	Open          report.Metric          `json:"open"`
	FirstResponse report.Metric          `json:"first_response"`
	AvgResolution report.Metric          `json:"avg_resolution"`
	Bars          []report.StatusBar     `json:"bars"`
	Slices        []report.PrioritySlice `json:"slices"`
}

type GetRecentActivityParams struct {
	ProjectID    string `json:"project_id,omitempty" jsonschema:"Only entries for this project id"`
	ActivityType string `json:"activity_type,omitempty" jsonschema:"Only entries of this type"`
	Limit        int    `json:"limit,omitempty" jsonschema:"Maximum number of entries (default 20)"`
}

type ActivityView struct {
	ID        int64  `json:"id"`
	ProjectID string `json:"project_id,omitempty"`
	Type      string `json:"type"`
	Summary   string `json:"summary"`
	CreatedAt string `json:"created_at"`
}

type GetRecentActivityResult struct {
	Entries []ActivityView `json:"entries"`
}

func newStatsResult(stats report.Stats) GetProjectStatsResult {
	res := GetProjectStatsResult{
		Empty:         stats.Empty,
		Open:          stats.Open,
		FirstResponse: stats.FirstResponse,
		AvgResolution: stats.AvgResolution,
		Bars:          stats.Bars,
		Slices:        stats.Slices,
	}
	if res.Bars == nil {
		res.Bars = []report.StatusBar{}
	}
	if res.Slices == nil {
		res.Slices = []report.PrioritySlice{}
	}
	return res
}

func newActivityView(entry activity.ActivityEntry) ActivityView {
	return ActivityView{
		ID:        entry.ID,
		ProjectID: entry.ProjectID,
		Type:      string(entry.ActivityType),
		Summary:   entry.Summary,
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
	}
}
