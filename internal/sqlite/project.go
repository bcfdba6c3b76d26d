package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/miraway/projects/internal/domain/project"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const updateStatusAndPriority = `
	UPDATE projects
	SET status = ?, priority = ?
	WHERE id = ?
`

// Insert appends a project row
func (r *ProjectRepository) Insert(ctx context.Context, proj *project.Project) error {
	query := `
		INSERT INTO projects (id, description, status, priority, date_submitted)
		VALUES (?, ?, ?, ?, ?)
	`

	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, query,
			proj.ID,
			proj.Description,
			proj.Status,
			proj.Priority,
			proj.DateSubmitted,
		)
		if err != nil {
			return fmt.Errorf("failed to insert project: %w", classify(err))
		}
		return nil
	})
}

// DeleteByID removes the project with id, if any
func (r *ProjectRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete project: %w", classify(err))
		}
		return nil
	})
}

// UpdateStatusAndPriority overwrites the two mutable fields of one project.
// A missing id is a no-op.
func (r *ProjectRepository) UpdateStatusAndPriority(ctx context.Context, id string, status project.Status, priority project.Priority) error {
	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, updateStatusAndPriority, status, priority, id); err != nil {
			return fmt.Errorf("failed to update project %s: %w", id, classify(err))
		}
		return nil
	})
}

// UpdateAll applies every edit in one transaction; any failure rolls back
// the whole batch
func (r *ProjectRepository) UpdateAll(ctx context.Context, edits []project.Edit) error {
	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, updateStatusAndPriority)
		if err != nil {
			return fmt.Errorf("failed to prepare update: %w", classify(err))
		}
		defer stmt.Close()

		for _, edit := range edits {
			if _, err := stmt.ExecContext(ctx, edit.Status, edit.Priority, edit.ID); err != nil {
				return fmt.Errorf("failed to update project %s: %w", edit.ID, classify(err))
			}
		}
		return nil
	})
}

// LoadAll returns every project in insertion order
func (r *ProjectRepository) LoadAll(ctx context.Context) ([]project.Project, error) {
	query := `
		SELECT id, COALESCE(description, ''), status, priority, date_submitted
		FROM projects
		ORDER BY rowid
	`

	projects := []project.Project{}
	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to load projects: %w", classify(err))
		}
		defer rows.Close()

		for rows.Next() {
			var proj project.Project
			if err := rows.Scan(
				&proj.ID,
				&proj.Description,
				&proj.Status,
				&proj.Priority,
				&proj.DateSubmitted,
			); err != nil {
				return fmt.Errorf("failed to scan project: %w", err)
			}
			projects = append(projects, proj)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating project rows: %w", classify(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return projects, nil
}
