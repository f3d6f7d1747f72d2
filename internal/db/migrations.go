package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			position INTEGER PRIMARY KEY,
			body     TEXT NOT NULL CHECK(json_valid(body))
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	return nil
}
