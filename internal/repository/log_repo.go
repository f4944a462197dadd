package repository

import (
	"context"
	"database/sql"
	"driverlogs/internal/models"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type LogSQLite struct {
	db *sql.DB
}

func NewLogSQLite(db *sql.DB) *LogSQLite { return &LogSQLite{db: db} }

// Ensure implementation of LogRepo interface at compile time.
var _ LogRepo = (*LogSQLite)(nil)

// ErrDuplicateLog is returned when a (driver, date) pair already has a log.
var ErrDuplicateLog = errors.New("daily log already exists for driver and date")

const (
	insertLogSQL = `
		INSERT INTO daily_logs (
			id, driver_id, date, duty_statuses, remarks, shipping_documents,
			co_driver_name, vehicle_numbers, total_miles, total_miles_today,
			total_miles_yesterday, hours, is_compliant, violations,
			total_driving_distance, route_stats, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	selectLogSQL = `
		SELECT id, driver_id, date, duty_statuses, remarks, shipping_documents,
			co_driver_name, vehicle_numbers, total_miles, total_miles_today,
			total_miles_yesterday, hours, is_compliant, violations,
			total_driving_distance, route_stats, created_at, updated_at
		FROM daily_logs
	`

	updateLogSQL = `
		UPDATE daily_logs
		SET date=?, duty_statuses=?, remarks=?, shipping_documents=?,
			co_driver_name=?, vehicle_numbers=?, total_miles=?, total_miles_today=?,
			total_miles_yesterday=?, hours=?, is_compliant=?, violations=?,
			total_driving_distance=?, route_stats=?, updated_at=?
		WHERE id=?
	`

	deleteLogSQL = `DELETE FROM daily_logs WHERE id=?`
)

// marshalJSONColumn converts a value to its JSON string for a TEXT column.
func marshalJSONColumn(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// unmarshalJSONColumn parses a TEXT column into out; empty strings are skipped.
func unmarshalJSONColumn(s sql.NullString, out any) error {
	if !s.Valid || s.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(s.String), out)
}

// Create inserts a new daily log. If ID or timestamps are empty, they’re set.
// Returns ErrDuplicateLog when the driver already has a log for the date.
func (r *LogSQLite) Create(ctx context.Context, l models.DailyLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = now
	}

	statusesJSON, hoursJSON, violationsJSON, statsJSON, err := marshalLogColumns(l)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, insertLogSQL,
		l.ID,
		l.DriverID,
		l.Date,
		statusesJSON,
		l.Remarks,
		l.ShippingDocuments,
		l.CoDriverName,
		l.VehicleNumbers,
		l.TotalMiles,
		l.TotalMilesToday,
		l.TotalMilesYesterday,
		hoursJSON,
		nullBool(l.IsCompliant),
		violationsJSON,
		l.TotalDrivingDistance,
		statsJSON,
		l.CreatedAt.UTC().Format(sqliteTimestampLayout),
		l.UpdatedAt.UTC().Format(sqliteTimestampLayout),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateLog
		}
		return fmt.Errorf("insert daily log %q: %w", l.ID, err)
	}
	return nil
}

// GetByID fetches a daily log by id. Returns (nil, nil) if not found.
func (r *LogSQLite) GetByID(ctx context.Context, id string) (*models.DailyLog, error) {
	row := r.db.QueryRowContext(ctx, selectLogSQL+" WHERE id=?", id)
	l, err := scanLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select daily log %q: %w", id, err)
	}
	return l, nil
}

// GetByDriverAndDate fetches the log for one driver-day. (nil, nil) if absent.
func (r *LogSQLite) GetByDriverAndDate(ctx context.Context, driverID, date string) (*models.DailyLog, error) {
	row := r.db.QueryRowContext(ctx, selectLogSQL+" WHERE driver_id=? AND date=?", driverID, date)
	l, err := scanLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select daily log for driver %q on %s: %w", driverID, date, err)
	}
	return l, nil
}

// List returns logs filtered by driver and/or [from, to] date (inclusive,
// YYYY-MM-DD), ordered by date DESC. Empty filters are skipped.
func (r *LogSQLite) List(ctx context.Context, driverID, from, to string) ([]models.DailyLog, error) {
	var (
		conds []string
		args  []any
	)

	if driverID != "" {
		conds = append(conds, "driver_id = ?")
		args = append(args, driverID)
	}
	if from != "" {
		conds = append(conds, "date >= ?")
		args = append(args, from)
	}
	if to != "" {
		conds = append(conds, "date <= ?")
		args = append(args, to)
	}

	q := selectLogSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY date DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.DailyLog, 0, 32)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites the log row. ErrNotFound if no row matched.
func (r *LogSQLite) Update(ctx context.Context, l models.DailyLog) error {
	statusesJSON, hoursJSON, violationsJSON, statsJSON, err := marshalLogColumns(l)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, updateLogSQL,
		l.Date,
		statusesJSON,
		l.Remarks,
		l.ShippingDocuments,
		l.CoDriverName,
		l.VehicleNumbers,
		l.TotalMiles,
		l.TotalMilesToday,
		l.TotalMilesYesterday,
		hoursJSON,
		nullBool(l.IsCompliant),
		violationsJSON,
		l.TotalDrivingDistance,
		statsJSON,
		time.Now().UTC().Format(sqliteTimestampLayout),
		l.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateLog
		}
		return fmt.Errorf("update daily log %q: %w", l.ID, err)
	}
	return requireRowAffected(res)
}

// Delete removes a daily log by id. ErrNotFound if no row matched.
func (r *LogSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteLogSQL, id)
	if err != nil {
		return fmt.Errorf("delete daily log %q: %w", id, err)
	}
	return requireRowAffected(res)
}

func marshalLogColumns(l models.DailyLog) (statuses, hours, violations, stats string, err error) {
	if l.DutyStatuses == nil {
		l.DutyStatuses = []models.DutyStatus{}
	}
	if l.Violations == nil {
		l.Violations = []models.Violation{}
	}
	if statuses, err = marshalJSONColumn(l.DutyStatuses); err != nil {
		return "", "", "", "", fmt.Errorf("marshal duty statuses: %w", err)
	}
	if hours, err = marshalJSONColumn(l.Hours); err != nil {
		return "", "", "", "", fmt.Errorf("marshal hours: %w", err)
	}
	if violations, err = marshalJSONColumn(l.Violations); err != nil {
		return "", "", "", "", fmt.Errorf("marshal violations: %w", err)
	}
	if stats, err = marshalJSONColumn(l.RouteStats); err != nil {
		return "", "", "", "", fmt.Errorf("marshal route stats: %w", err)
	}
	return statuses, hours, violations, stats, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner) (*models.DailyLog, error) {
	var (
		l             models.DailyLog
		statusesStr   sql.NullString
		hoursStr      sql.NullString
		violationsStr sql.NullString
		routeStatsStr sql.NullString
		compliant     sql.NullBool
	)
	if err := row.Scan(
		&l.ID,
		&l.DriverID,
		&l.Date,
		&statusesStr,
		&l.Remarks,
		&l.ShippingDocuments,
		&l.CoDriverName,
		&l.VehicleNumbers,
		&l.TotalMiles,
		&l.TotalMilesToday,
		&l.TotalMilesYesterday,
		&hoursStr,
		&compliant,
		&violationsStr,
		&l.TotalDrivingDistance,
		&routeStatsStr,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	l.DutyStatuses = []models.DutyStatus{}
	if err := unmarshalJSONColumn(statusesStr, &l.DutyStatuses); err != nil {
		return nil, fmt.Errorf("unmarshal duty statuses for log %q: %w", l.ID, err)
	}
	if err := unmarshalJSONColumn(hoursStr, &l.Hours); err != nil {
		return nil, fmt.Errorf("unmarshal hours for log %q: %w", l.ID, err)
	}
	l.Violations = []models.Violation{}
	if err := unmarshalJSONColumn(violationsStr, &l.Violations); err != nil {
		return nil, fmt.Errorf("unmarshal violations for log %q: %w", l.ID, err)
	}
	if err := unmarshalJSONColumn(routeStatsStr, &l.RouteStats); err != nil {
		return nil, fmt.Errorf("unmarshal route stats for log %q: %w", l.ID, err)
	}
	if compliant.Valid {
		v := compliant.Bool
		l.IsCompliant = &v
	}
	l.CreatedAt = l.CreatedAt.UTC()
	l.UpdatedAt = l.UpdatedAt.UTC()
	return &l, nil
}

func nullBool(p *bool) sql.NullBool {
	if p == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *p, Valid: true}
}
