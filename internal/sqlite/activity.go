package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/miraway/projects/internal/domain/activity"
)

// ActivityRepository implements activity.Repository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log inserts a new activity entry
func (r *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO activity_log (project_id, activity_type, summary, created_at)
		VALUES (?, ?, ?, ?)
	`

	var projectID sql.NullString
	if entry.ProjectID != "" {
		projectID = sql.NullString{String: entry.ProjectID, Valid: true}
	}

	return r.db.withConn(ctx, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, query,
			projectID,
			entry.ActivityType,
			entry.Summary,
			createdAt,
		)
		if err != nil {
			return fmt.Errorf("failed to log activity: %w", classify(err))
		}

		if id, err := result.LastInsertId(); err == nil {
			entry.ID = id
		}
		entry.CreatedAt = createdAt
		return nil
	})
}

// List returns activity entries matching the given filters, newest first
func (r *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	query := `
		SELECT id, project_id, activity_type, summary, created_at
		FROM activity_log
	`

	args := []interface{}{}
	conditions := []string{}

	if opts.ProjectID != "" {
		conditions = append(conditions, "project_id = ?")
		args = append(args, opts.ProjectID)
	}
	if opts.ActivityType != nil {
		conditions = append(conditions, "activity_type = ?")
		args = append(args, *opts.ActivityType)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC, id DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	var entries []activity.ActivityEntry
	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to list activity: %w", classify(err))
		}
		defer rows.Close()

		for rows.Next() {
			var entry activity.ActivityEntry
			var projectID sql.NullString
			if err := rows.Scan(
				&entry.ID,
				&projectID,
				&entry.ActivityType,
				&entry.Summary,
				&entry.CreatedAt,
			); err != nil {
				return fmt.Errorf("failed to scan activity entry: %w", err)
			}
			entry.ProjectID = projectID.String
			entries = append(entries, entry)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
