// Package testserver runs the full HTTP stack over an in-memory database for
// end-to-end tests.
package testserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/miraway/projects/internal/domain/activity"
	"github.com/miraway/projects/internal/domain/project"
	"github.com/miraway/projects/internal/mcp"
	"github.com/miraway/projects/internal/sqlite"
	"github.com/miraway/projects/internal/transport"
	"github.com/miraway/projects/internal/web"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Projects *project.Service
	Activity *activity.Service
}

// Option adjusts the project service under test.
type Option = project.Option

// New starts a server with the page at / and MCP at /mcp. Submission dates
// are pinned to day (YYYY-MM-DD) when it is non-empty.
func New(t *testing.T, day string, opts ...Option) *TestServer {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.EnsureSchema(context.Background()))

	if day != "" {
		ts, err := time.Parse(project.DateLayout, day)
		require.NoError(t, err)
		opts = append([]Option{project.WithClock(func() time.Time { return ts })}, opts...)
	}

	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), nil)
	projectSvc := project.NewService(sqlite.NewProjectRepository(db), activitySvc, nil, opts...)

	pages, err := web.NewHandler(projectSvc, nil)
	require.NoError(t, err)

	mcpServer := mcp.NewServer(mcp.Config{Projects: projectSvc, Activity: activitySvc})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server { return mcpServer }, nil)

	server := httptest.NewServer(transport.NewServer(pages, mcpHandler, nil))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server:   server,
		DB:       db,
		Projects: projectSvc,
		Activity: activitySvc,
	}
}

// ConnectMCP opens a client session against /mcp.
func (ts *TestServer) ConnectMCP(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint: ts.Server.URL + "/mcp",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}
