// Package storage persists boarding episode results in a local SQLite database.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// InitSQLite opens (creating if needed) the results database at dbPath and
// ensures its schema exists.
func InitSQLite(dbPath string) (*sql.DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlite database: %w", err)
	}
	if err := createSchemas(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schemas: %w", err)
	}
	return db, nil
}

func createSchemas(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS episodes (
			id TEXT PRIMARY KEY,
			policy TEXT NOT NULL,
			num_rows INTEGER NOT NULL,
			seats_per_row INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			decisions INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			total_reward REAL NOT NULL,
			stow_events INTEGER NOT NULL,
			peak_waiting INTEGER NOT NULL,
			releases_json TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_episodes_policy ON episodes(policy);`,
		`CREATE INDEX IF NOT EXISTS idx_episodes_created_at ON episodes(created_at);`,
	}
	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}
