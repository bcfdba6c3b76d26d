package project

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/miraway/projects/internal/domain/activity"
)

// Service handles project operations. It keeps no state between calls:
// every operation works from a freshly loaded snapshot.
type Service struct {
	repo     Repository
	activity ActivityLogger
	ids      IDStrategy
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithIDStrategy overrides the default count-based id assignment.
func WithIDStrategy(ids IDStrategy) Option {
	return func(s *Service) {
		if ids != nil {
			s.ids = ids
		}
	}
}

// WithClock sets the clock used for submission dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a new project service. activityLog and logger may be nil.
func NewService(repo Repository, activityLog ActivityLogger, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		repo:     repo,
		activity: activityLog,
		ids:      CountIDs{},
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Description string
	Priority    Priority
}

// List returns every stored project.
func (s *Service) List(ctx context.Context) (Snapshot, error) {
	projects, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	return Snapshot(projects), nil
}

// Create stores a new open project submitted today.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if !req.Priority.Valid() {
		return nil, ErrInvalidInput
	}

	snap, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	proj := &Project{
		ID:            s.ids.NextID(snap),
		Description:   req.Description,
		Status:        StatusOpen,
		Priority:      req.Priority,
		DateSubmitted: s.now().Format(DateLayout),
	}

	if err := s.repo.Insert(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project %s: %w", proj.ID, err)
	}

	s.logger.Info("project created", "id", proj.ID, "priority", proj.Priority)
	s.record(ctx, activity.TypeProjectCreated, proj.ID, fmt.Sprintf("Created %s (%s)", proj.ID, proj.Priority))
	return proj, nil
}

// Remove deletes the project with id. Storage is not touched when the id is
// absent from the current snapshot.
func (s *Service) Remove(ctx context.Context, id string) error {
	snap, err := s.List(ctx)
	if err != nil {
		return err
	}
	if !snap.Contains(id) {
		return ErrProjectNotFound
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}

	s.logger.Info("project deleted", "id", id)
	s.record(ctx, activity.TypeProjectDeleted, id, fmt.Sprintf("Deleted %s", id))
	return nil
}

// Update changes the status and priority of a single project.
func (s *Service) Update(ctx context.Context, edit Edit) error {
	if err := validateEdit(edit); err != nil {
		return err
	}

	snap, err := s.List(ctx)
	if err != nil {
		return err
	}
	if !snap.Contains(edit.ID) {
		return ErrProjectNotFound
	}

	if err := s.repo.UpdateStatusAndPriority(ctx, edit.ID, edit.Status, edit.Priority); err != nil {
		return fmt.Errorf("updating project %s: %w", edit.ID, err)
	}

	s.record(ctx, activity.TypeProjectUpdated, edit.ID, fmt.Sprintf("Set %s to %s/%s", edit.ID, edit.Status, edit.Priority))
	return nil
}

// SaveEdits writes the status and priority of every row in edits, changed or
// not. The rows are applied all-or-nothing.
func (s *Service) SaveEdits(ctx context.Context, edits []Edit) error {
	for _, edit := range edits {
		if err := validateEdit(edit); err != nil {
			return err
		}
	}

	if err := s.repo.UpdateAll(ctx, edits); err != nil {
		return fmt.Errorf("saving edits: %w", err)
	}

	s.logger.Info("project edits saved", "rows", len(edits))
	s.record(ctx, activity.TypeProjectsSaved, "", fmt.Sprintf("Saved %d rows", len(edits)))
	return nil
}

func (s *Service) record(ctx context.Context, typ activity.ActivityType, projectID, summary string) {
	if s.activity == nil {
		return
	}
	entry := &activity.ActivityEntry{
		ProjectID:    projectID,
		ActivityType: typ,
		Summary:      summary,
	}
	if err := s.activity.LogActivity(ctx, entry); err != nil {
		s.logger.Warn("failed to log activity", "type", typ, "error", err)
	}
}

func validateEdit(edit Edit) error {
	if edit.ID == "" || !edit.Status.Valid() || !edit.Priority.Valid() {
		return ErrInvalidInput
	}
	return nil
}
