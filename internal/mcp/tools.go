package mcp

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/miraway/projects/internal/domain/activity"
	"github.com/miraway/projects/internal/domain/project"
	"github.com/miraway/projects/internal/domain/report"
)

const defaultActivityLimit = 20

type tools struct {
	projects ProjectService
	activity ActivityService
}

func registerTools(server *sdkmcp.Server, t *tools) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List every project in storage order",
	}, t.listProjects)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create an Open project submitted today; the id is assigned by the server",
	}, t.createProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project by id",
	}, t.deleteProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Set the status and priority of one project",
	}, t.updateProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_projects",
		Description: "Write status and priority for a batch of projects in one all-or-nothing save",
	}, t.saveProjects)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project_stats",
		Description: "Get the statistics panel: open count, placeholder metrics, status-by-day bars and priority slices",
	}, t.getProjectStats)

	if t.activity != nil {
		sdkmcp.AddTool(server, &sdkmcp.Tool{
			Name:        "get_recent_activity",
			Description: "List recent project changes, newest first",
		}, t.getRecentActivity)
	}
}

func (t *tools) listProjects(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListProjectsParams) (*sdkmcp.CallToolResult, ListProjectsResult, error) {
	snap, err := t.projects.List(ctx)
	if err != nil {
		return nil, ListProjectsResult{}, MapError(err)
	}
	projects := []project.Project(snap)
	if projects == nil {
		projects = []project.Project{}
	}
	return nil, ListProjectsResult{Count: len(projects), Projects: projects}, nil
}

func (t *tools) createProject(ctx context.Context, _ *sdkmcp.CallToolRequest, params CreateProjectParams) (*sdkmcp.CallToolResult, CreateProjectResult, error) {
	proj, err := t.projects.Create(ctx, project.CreateRequest{
		Description: params.Description,
		Priority:    params.Priority,
	})
	if err != nil {
		return nil, CreateProjectResult{}, MapError(err)
	}
	return nil, CreateProjectResult{Project: *proj}, nil
}

func (t *tools) deleteProject(ctx context.Context, _ *sdkmcp.CallToolRequest, params DeleteProjectParams) (*sdkmcp.CallToolResult, DeleteProjectResult, error) {
	id := strings.TrimSpace(params.ID)
	if err := t.projects.Remove(ctx, id); err != nil {
		return nil, DeleteProjectResult{}, MapError(err)
	}
	return nil, DeleteProjectResult{ID: id, Deleted: true}, nil
}

func (t *tools) updateProject(ctx context.Context, _ *sdkmcp.CallToolRequest, params UpdateProjectParams) (*sdkmcp.CallToolResult, UpdateProjectResult, error) {
	edit := project.Edit{ID: strings.TrimSpace(params.ID), Status: params.Status, Priority: params.Priority}
	if err := t.projects.Update(ctx, edit); err != nil {
		return nil, UpdateProjectResult{}, MapError(err)
	}
	return nil, UpdateProjectResult{Edit: edit}, nil
}

func (t *tools) saveProjects(ctx context.Context, _ *sdkmcp.CallToolRequest, params SaveProjectsParams) (*sdkmcp.CallToolResult, SaveProjectsResult, error) {
	if err := t.projects.SaveEdits(ctx, params.Edits); err != nil {
		return nil, SaveProjectsResult{}, MapError(err)
	}
	return nil, SaveProjectsResult{Saved: len(params.Edits)}, nil
}

func (t *tools) getProjectStats(ctx context.Context, _ *sdkmcp.CallToolRequest, _ GetProjectStatsParams) (*sdkmcp.CallToolResult, GetProjectStatsResult, error) {
	snap, err := t.projects.List(ctx)
	if err != nil {
		return nil, GetProjectStatsResult{}, MapError(err)
	}
	return nil, newStatsResult(report.Build(snap)), nil
}

func (t *tools) getRecentActivity(ctx context.Context, _ *sdkmcp.CallToolRequest, params GetRecentActivityParams) (*sdkmcp.CallToolResult, GetRecentActivityResult, error) {
	opts := activity.ListActivityOptions{
		ProjectID: params.ProjectID,
		Limit:     params.Limit,
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultActivityLimit
	}
	if params.ActivityType != "" {
		typ := activity.ActivityType(params.ActivityType)
		opts.ActivityType = &typ
	}

	entries, err := t.activity.GetRecentActivity(ctx, opts)
	if err != nil {
		return nil, GetRecentActivityResult{}, MapError(err)
	}

	res := GetRecentActivityResult{Entries: make([]ActivityView, 0, len(entries))}
	for _, entry := range entries {
		res.Entries = append(res.Entries, newActivityView(entry))
	}
	return nil, res, nil
}
