package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bmharper/quadtree-go/internal/database"
	"github.com/bmharper/quadtree-go/internal/venue"
)

// VenueRepository handles database operations for venues
type VenueRepository struct {
	db *sql.DB
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *sql.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// InsertBatch stores venues in a single transaction
func (r *VenueRepository) InsertBatch(ctx context.Context, venues []*venue.Venue) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		return insertAll(ctx, tx, venues)
	})
}

// ReplaceAll swaps the stored venues for a new set in a single transaction
func (r *VenueRepository) ReplaceAll(ctx context.Context, venues []*venue.Venue) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM venues"); err != nil {
			return fmt.Errorf("failed to clear venues: %w", err)
		}
		return insertAll(ctx, tx, venues)
	})
}

func insertAll(ctx context.Context, tx *sql.Tx, venues []*venue.Venue) error {
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO venues (id, name, phone, lat, lon) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare venue insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range venues {
		if _, err := stmt.ExecContext(ctx, v.ID, v.Name, v.Phone, v.Lat, v.Lon); err != nil {
			return fmt.Errorf("failed to insert venue %s: %w", v.ID, err)
		}
	}
	return nil
}

// All returns every venue in insertion order, so that index builds are repeatable
func (r *VenueRepository) All(ctx context.Context) ([]*venue.Venue, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, phone, lat, lon FROM venues ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer rows.Close()

	venues := []*venue.Venue{}
	for rows.Next() {
		v := &venue.Venue{}
		if err := rows.Scan(&v.ID, &v.Name, &v.Phone, &v.Lat, &v.Lon); err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate venues: %w", err)
	}
	return venues, nil
}

// Count returns the number of stored venues
func (r *VenueRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM venues").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count venues: %w", err)
	}
	return n, nil
}

// DeleteAll removes every venue
func (r *VenueRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM venues"); err != nil {
		return fmt.Errorf("failed to delete venues: %w", err)
	}
	return nil
}
