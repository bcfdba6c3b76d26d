package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PageRoutes registers the browser-facing routes.
type PageRoutes interface {
	Routes(r chi.Router)
}

// NewServer creates an HTTP server router with middleware. mcpHandler is
// mounted at /mcp when non-nil.
func NewServer(pages PageRoutes, mcpHandler http.Handler, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))

	r.Get("/health", handleHealth)
	if pages != nil {
		pages.Routes(r)
	}
	if mcpHandler != nil {
		r.Handle("/mcp", mcpHandler)
	}

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
