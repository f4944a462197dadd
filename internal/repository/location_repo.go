package repository

import (
	"context"
	"database/sql"
	"driverlogs/internal/models"
	"errors"
	"fmt"
	"strings"
	"time"
)

// LocationSQLite is the persistent geocoding cache. Names are stored
// trimmed and lowercased so lookups are case-insensitive.
type LocationSQLite struct {
	db *sql.DB
}

func NewLocationSQLite(db *sql.DB) *LocationSQLite { return &LocationSQLite{db: db} }

// Ensure implementation of LocationRepo interface at compile time.
var _ LocationRepo = (*LocationSQLite)(nil)

const (
	upsertLocationSQL = `
		INSERT INTO location_cache (name, lat, lng, formatted_address, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			lat=excluded.lat,
			lng=excluded.lng,
			formatted_address=excluded.formatted_address
	`

	selectLocationSQL = `
		SELECT name, lat, lng, formatted_address, created_at
		FROM location_cache WHERE name=?
	`
)

func cacheKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Get fetches a cached location by name. Returns (nil, nil) if not cached.
func (r *LocationSQLite) Get(ctx context.Context, name string) (*models.CachedLocation, error) {
	row := r.db.QueryRowContext(ctx, selectLocationSQL, cacheKey(name))

	var loc models.CachedLocation
	var addr sql.NullString
	if err := row.Scan(&loc.Name, &loc.Lat, &loc.Lng, &addr, &loc.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select cached location %q: %w", name, err)
	}
	loc.FormattedAddress = addr.String
	loc.CreatedAt = loc.CreatedAt.UTC()
	return &loc, nil
}

// Put inserts or refreshes a cached location.
func (r *LocationSQLite) Put(ctx context.Context, loc models.CachedLocation) error {
	if loc.CreatedAt.IsZero() {
		loc.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, upsertLocationSQL,
		cacheKey(loc.Name),
		loc.Lat,
		loc.Lng,
		loc.FormattedAddress,
		loc.CreatedAt.UTC().Format(sqliteTimestampLayout),
	)
	if err != nil {
		return fmt.Errorf("upsert cached location %q: %w", loc.Name, err)
	}
	return nil
}
