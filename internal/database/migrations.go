package database

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_venues_lat_lon ON venues(lat, lon)`,
}

// Migrate creates the schema. It is safe to run on every start.
func Migrate(db *sql.DB) error {
	return Transaction(db, func(tx *sql.Tx) error {
		for _, m := range migrations {
			if _, err := tx.Exec(m); err != nil {
				return fmt.Errorf("failed to run migration: %w", err)
			}
		}
		return nil
	})
}
