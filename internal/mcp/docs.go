package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `projects tracks a flat list of projects, each with a status and a priority.

- Project ids look like PROJECT-<n> and are assigned by the server on create.
- Status is one of Open, In-Progress, Closed. New projects start Open.
- Priority is one of High, Medium, Low.
- Description and submission date never change after create.

Tools:
- list_projects, get_project_stats and get_recent_activity only read.
- create_project, delete_project, update_project and save_projects write.
- save_projects writes every edit it is given in one all-or-nothing save.

Read projects://docs/index for error codes and known limitations.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "projects://docs/index",
		Name:        "docs_index",
		Title:       "projects docs index",
		Description: "Tool reference, error codes and known limitations.",
		Content: `# projects: tool reference

## Tools

- list_projects: every project in storage order, with a count.
- create_project(description, priority): stores an Open project dated today.
- delete_project(id): removes one project. Unknown ids fail with PROJECT_NOT_FOUND and change nothing.
- update_project(id, status, priority): changes one project. Unknown ids fail with PROJECT_NOT_FOUND.
- save_projects(edits[]): sets status and priority for each id. Any failure rolls back the whole batch.
- get_project_stats: open count, the two fixed response-time metrics, status counts per day (dd-mm-yyyy) and priority counts.
- get_recent_activity(project_id?, activity_type?, limit?): change log, newest first.

## Error codes

- PROJECT_NOT_FOUND: the id is not in the current list.
- INVALID_INPUT: status or priority outside the allowed values.
- CONSTRAINT_VIOLATION: the generated id is already taken. Nothing was written.
- STORAGE_UNAVAILABLE: the database could not be reached.

## Known limitations

- Ids are the project count plus one by default. After a delete the next
  create can collide with an existing id and fail with CONSTRAINT_VIOLATION.
  Servers started with the max id strategy do not have this problem.
- Concurrent writers are last-write-wins.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
