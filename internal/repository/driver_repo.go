package repository

import (
	"context"
	"database/sql"
	"driverlogs/internal/models"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicateLicense is returned when an insert or update would reuse
// another driver's license number.
var ErrDuplicateLicense = errors.New("license number already in use")

type DriverSQLite struct {
	db *sql.DB
}

func NewDriverSQLite(db *sql.DB) *DriverSQLite { return &DriverSQLite{db: db} }

// Ensure implementation of DriverRepo interface at compile time.
var _ DriverRepo = (*DriverSQLite)(nil)

const (
	insertDriverSQL = `
		INSERT INTO drivers (id, name, license_number, home_terminal, main_office_address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	selectDriverSQL = `
		SELECT id, name, license_number, home_terminal, main_office_address, created_at, updated_at
		FROM drivers
	`

	updateDriverSQL = `
		UPDATE drivers
		SET name=?, license_number=?, home_terminal=?, main_office_address=?, updated_at=?
		WHERE id=?
	`

	deleteDriverSQL = `DELETE FROM drivers WHERE id=?`
)

const sqliteTimestampLayout = "2006-01-02 15:04:05"

// Create inserts a new driver. If ID or timestamps are empty, they’re set.
func (r *DriverSQLite) Create(ctx context.Context, d models.Driver) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, insertDriverSQL,
		d.ID,
		d.Name,
		d.LicenseNumber,
		d.HomeTerminal,
		d.MainOfficeAddress,
		d.CreatedAt.UTC().Format(sqliteTimestampLayout),
		d.UpdatedAt.UTC().Format(sqliteTimestampLayout),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateLicense
		}
		return fmt.Errorf("insert driver %q: %w", d.ID, err)
	}
	return nil
}

// GetByID fetches a driver by id. Returns (nil, nil) if not found.
func (r *DriverSQLite) GetByID(ctx context.Context, id string) (*models.Driver, error) {
	row := r.db.QueryRowContext(ctx, selectDriverSQL+" WHERE id=?", id)

	var d models.Driver
	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.LicenseNumber,
		&d.HomeTerminal,
		&d.MainOfficeAddress,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select driver %q: %w", id, err)
	}
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()
	return &d, nil
}

// List returns all drivers ordered by name.
func (r *DriverSQLite) List(ctx context.Context) ([]models.Driver, error) {
	rows, err := r.db.QueryContext(ctx, selectDriverSQL+" ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Driver, 0, 16)
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.LicenseNumber,
			&d.HomeTerminal,
			&d.MainOfficeAddress,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		d.CreatedAt = d.CreatedAt.UTC()
		d.UpdatedAt = d.UpdatedAt.UTC()
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites the mutable driver fields. ErrNotFound if no row matched.
func (r *DriverSQLite) Update(ctx context.Context, d models.Driver) error {
	res, err := r.db.ExecContext(ctx, updateDriverSQL,
		d.Name,
		d.LicenseNumber,
		d.HomeTerminal,
		d.MainOfficeAddress,
		time.Now().UTC().Format(sqliteTimestampLayout),
		d.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateLicense
		}
		return fmt.Errorf("update driver %q: %w", d.ID, err)
	}
	return requireRowAffected(res)
}

// Delete removes a driver and, via FK cascade, its daily logs.
func (r *DriverSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteDriverSQL, id)
	if err != nil {
		return fmt.Errorf("delete driver %q: %w", id, err)
	}
	return requireRowAffected(res)
}

// ErrNotFound is returned by Update/Delete when no row matched the id.
var ErrNotFound = errors.New("not found")

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
