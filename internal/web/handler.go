// Package web serves the project management page.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/miraway/projects/internal/domain/project"
	"github.com/miraway/projects/internal/repository"
)

//go:embed templates/*.html
var templateFS embed.FS

var errIncompleteGrid = errors.New("edit grid rows are incomplete")

// ProjectService defines the project operations the page needs.
type ProjectService interface {
	List(ctx context.Context) (project.Snapshot, error)
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Remove(ctx context.Context, id string) error
	SaveEdits(ctx context.Context, edits []project.Edit) error
}

// Handler renders the page and applies form submissions. Every action
// reloads all projects before rendering.
type Handler struct {
	projects ProjectService
	tmpl     *template.Template
	logger   *slog.Logger
}

// NewHandler parses the page template.
func NewHandler(projects ProjectService, logger *slog.Logger) (*Handler, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tmpl, err := template.New("page.html").Funcs(template.FuncMap{
		"signed": func(v float64) string {
			if v > 0 {
				return fmt.Sprintf("+%g", v)
			}
			return fmt.Sprintf("%g", v)
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handler{projects: projects, tmpl: tmpl, logger: logger}, nil
}

// Routes registers the page routes on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/projects", h.handleCreate)
	r.Post("/projects/save", h.handleSave)
	r.Post("/projects/delete", h.handleDelete)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, nil, nil)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, &Banner{Section: SectionCreate, Error: true, Message: "Could not read the form."}, nil)
		return
	}

	proj, err := h.projects.Create(r.Context(), project.CreateRequest{
		Description: r.PostFormValue("description"),
		Priority:    project.Priority(r.PostFormValue("priority")),
	})
	if err != nil {
		status, msg := describeError(err)
		h.logger.Warn("create project failed", "error", err)
		h.render(w, r, status, &Banner{Section: SectionCreate, Error: true, Message: msg}, nil)
		return
	}

	h.render(w, r, http.StatusOK, &Banner{
		Section: SectionCreate,
		Message: "The project was created! Here are its details:",
	}, func(p *Page) { p.Created = proj })
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	edits, err := parseGrid(r)
	if err != nil {
		h.logger.Warn("malformed edit grid", "error", err)
		h.render(w, r, http.StatusBadRequest, &Banner{
			Section: SectionSave,
			Error:   true,
			Message: "The edited table is incomplete. Reload the page and try again.",
		}, nil)
		return
	}

	if err := h.projects.SaveEdits(r.Context(), edits); err != nil {
		status, msg := describeError(err)
		h.logger.Warn("save edits failed", "rows", len(edits), "error", err)
		h.render(w, r, status, &Banner{Section: SectionSave, Error: true, Message: msg}, nil)
		return
	}

	h.render(w, r, http.StatusOK, &Banner{Section: SectionSave, Message: "Changes saved successfully!"}, nil)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, &Banner{Section: SectionDelete, Error: true, Message: "Could not read the form."}, nil)
		return
	}
	id := strings.TrimSpace(r.PostFormValue("id"))

	if err := h.projects.Remove(r.Context(), id); err != nil {
		status, msg := describeError(err)
		h.render(w, r, status, &Banner{Section: SectionDelete, Error: true, Message: msg}, func(p *Page) { p.DeleteID = id })
		return
	}

	h.render(w, r, http.StatusOK, &Banner{Section: SectionDelete, Message: fmt.Sprintf("Project %s was deleted.", id)}, nil)
}

// render reloads the snapshot and writes the page. A reload failure ends the
// cycle with a plain 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, banner *Banner, decorate func(*Page)) {
	snap, err := h.projects.List(r.Context())
	if err != nil {
		h.logger.Error("load projects failed", "error", err)
		http.Error(w, "projects are unavailable", http.StatusInternalServerError)
		return
	}

	page := newPage(snap)
	page.Banner = banner
	if decorate != nil {
		decorate(&page)
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "page.html", page); err != nil {
		h.logger.Error("render page failed", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// parseGrid reads the whole edit grid. Rows arrive as parallel id, status and
// priority fields in display order.
func parseGrid(r *http.Request) ([]project.Edit, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	ids := r.PostForm["id"]
	statuses := r.PostForm["status"]
	priorities := r.PostForm["priority"]
	if len(ids) != len(statuses) || len(ids) != len(priorities) {
		return nil, errIncompleteGrid
	}

	edits := make([]project.Edit, 0, len(ids))
	for i, id := range ids {
		edits = append(edits, project.Edit{
			ID:       id,
			Status:   project.Status(statuses[i]),
			Priority: project.Priority(priorities[i]),
		})
	}
	return edits, nil
}

func describeError(err error) (int, string) {
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return http.StatusNotFound, "Project ID does not exist. Please check it again."
	case errors.Is(err, project.ErrInvalidInput):
		return http.StatusUnprocessableEntity, "Please choose a valid status and priority."
	case errors.Is(err, repository.ErrConstraintViolation):
		return http.StatusConflict, "A project with this ID already exists. Nothing was saved."
	default:
		return http.StatusInternalServerError, "The project store is unavailable. Please try again."
	}
}
