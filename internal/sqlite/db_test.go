package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.EnsureSchema(context.Background())
	require.NoError(t, err, "failed to ensure schema")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestEnsureSchema verifies that the tables exist after setup
func TestEnsureSchema(t *testing.T) {
	db := NewTestDB(t)

	for _, table := range []string{"projects", "activity_log"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestEnsureSchema_Idempotent verifies a second call keeps existing rows
func TestEnsureSchema_Idempotent(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO projects (id, description, status, priority, date_submitted) VALUES (?, ?, ?, ?, ?)`,
		"PROJECT-1", "Migrate DB", "Open", "High", "2024-01-10")
	require.NoError(t, err)

	require.NoError(t, db.EnsureSchema(ctx))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count))
	require.Equal(t, 1, count)
}

// TestProjectsTable verifies column order and enumeration constraints
func TestProjectsTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	rows, err := db.QueryContext(ctx, `SELECT name FROM pragma_table_info('projects') ORDER BY cid`)
	require.NoError(t, err)
	var columns []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		columns = append(columns, name)
	}
	require.NoError(t, rows.Close())
	require.Equal(t, []string{"id", "description", "status", "priority", "date_submitted"}, columns)

	_, err = db.ExecContext(ctx,
		`INSERT INTO projects (id, description, status, priority, date_submitted) VALUES (?, ?, ?, ?, ?)`,
		"PROJECT-1", "x", "Done", "High", "2024-01-10")
	require.Error(t, err, "should fail with invalid status")

	_, err = db.ExecContext(ctx,
		`INSERT INTO projects (id, description, status, priority, date_submitted) VALUES (?, ?, ?, ?, ?)`,
		"PROJECT-1", "x", "Open", "Urgent", "2024-01-10")
	require.Error(t, err, "should fail with invalid priority")
}
