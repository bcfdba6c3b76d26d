package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/miraway/projects/internal/domain/activity"
	"github.com/miraway/projects/internal/domain/project"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	List(ctx context.Context) (project.Snapshot, error)
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Remove(ctx context.Context, id string) error
	Update(ctx context.Context, edit project.Edit) error
	SaveEdits(ctx context.Context, edits []project.Edit) error
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Config contains server configuration.
type Config struct {
	Projects ProjectService
	Activity ActivityService
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "projects",
		Version: cfg.Version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, &tools{projects: cfg.Projects, activity: cfg.Activity})

	return server
}
