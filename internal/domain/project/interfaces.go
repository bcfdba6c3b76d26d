package project

import (
	"context"

	"github.com/miraway/projects/internal/domain/activity"
)

// Repository provides persistence for projects.
type Repository interface {
	Insert(ctx context.Context, proj *Project) error
	DeleteByID(ctx context.Context, id string) error
	UpdateStatusAndPriority(ctx context.Context, id string, status Status, priority Priority) error
	UpdateAll(ctx context.Context, edits []Edit) error
	LoadAll(ctx context.Context) ([]Project, error)
}

// ActivityLogger records project mutations.
type ActivityLogger interface {
	LogActivity(ctx context.Context, entry *activity.ActivityEntry) error
}
