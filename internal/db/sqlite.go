// Package db provides SQLite storage for user records.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLite is a record source stored in a SQLite database. Records keep their
// original JSON text and their position in the imported file.
type SQLite struct {
	db *sql.DB
}

// New opens the database at path and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// NewFromDB wraps an already opened database. Migrations are not run.
func NewFromDB(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Total returns the number of stored records.
func (s *SQLite) Total(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}

// Slice returns up to limit records starting at offset, in import order.
func (s *SQLite) Slice(ctx context.Context, offset, limit int) ([]json.RawMessage, error) {
	if limit < 1 || offset < 0 {
		return []json.RawMessage{}, nil
	}

	query := `
		SELECT body
		FROM users
		ORDER BY position
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]json.RawMessage, 0, min(limit, 256))
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		records = append(records, json.RawMessage(body))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}

	return records, nil
}

// Import replaces the stored records with records, atomically.
// It returns the number of records written.
func (s *SQLite) Import(ctx context.Context, records []json.RawMessage) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return 0, fmt.Errorf("clearing users: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO users (position, body) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range records {
		if !json.Valid(r) {
			return 0, fmt.Errorf("record %d is not valid JSON", i)
		}
		if _, err := stmt.ExecContext(ctx, i, string(r)); err != nil {
			return 0, fmt.Errorf("inserting record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return len(records), nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
