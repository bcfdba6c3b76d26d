package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/miraway/projects/internal/repository"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w: %v", repository.ErrStorageUnavailable, err)
	}

	// One connection: SQLite has a single writer, and an in-memory
	// database only lives as long as its connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w: %v", repository.ErrStorageUnavailable, err)
	}

	return &DB{db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    description TEXT,
    status TEXT NOT NULL CHECK(status IN ('Open', 'In-Progress', 'Closed')),
    priority TEXT NOT NULL CHECK(priority IN ('High', 'Medium', 'Low')),
    date_submitted TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS activity_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id TEXT,
    activity_type TEXT NOT NULL,
    summary TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_activity_project ON activity_log(project_id);
CREATE INDEX IF NOT EXISTS idx_activity_created_at ON activity_log(created_at);
`

// EnsureSchema creates the tables if they are missing. It is safe to call on
// every start.
func (db *DB) EnsureSchema(ctx context.Context) error {
	return db.withConn(ctx, func(conn *sql.Conn) error {
		if _, err := conn.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("failed to ensure schema: %w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil
	})
}

// withConn holds one pooled connection for the duration of fn and always
// returns it to the pool.
func (db *DB) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w: %v", repository.ErrStorageUnavailable, err)
	}
	defer conn.Close()

	return fn(conn)
}

// withTx runs fn in a transaction on a single connection. The transaction is
// committed only if fn returns nil.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return db.withConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w: %v", repository.ErrStorageUnavailable, err)
		}
		defer tx.Rollback()

		if err := fn(tx); err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil
	})
}
