package repository

import (
	"database/sql"
	"driverlogs/internal/models"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestLocationGet_NormalizesKey(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewLocationSQLite(db)

	at := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"name", "lat", "lng", "formatted_address", "created_at"}).
		AddRow("los angeles, ca", 34.05, -118.24, "Los Angeles, CA, USA", at)

	// Mixed case and padding must be looked up by the lowercase key.
	mock.ExpectQuery("SELECT (.+) FROM location_cache").
		WithArgs("los angeles, ca").
		WillReturnRows(rows)

	got, err := repo.Get(ctx(t), "  Los Angeles, CA ")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Lat != 34.05 || got.Lng != -118.24 {
		t.Fatalf("unexpected location: %+v", got)
	}
	if got.FormattedAddress != "Los Angeles, CA, USA" {
		t.Fatalf("formatted address not scanned: %q", got.FormattedAddress)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestLocationGet_Miss(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewLocationSQLite(db)

	mock.ExpectQuery("SELECT (.+) FROM location_cache").
		WithArgs("nowhere").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(ctx(t), "nowhere")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on miss, got %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestLocationPut_UpsertWithDefaults(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewLocationSQLite(db)

	mock.ExpectExec("INSERT INTO location_cache").
		WithArgs("phoenix, az", 33.45, -112.07, "Phoenix, AZ, USA", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Put(ctx(t), models.CachedLocation{
		Name:             "Phoenix, AZ",
		Lat:              33.45,
		Lng:              -112.07,
		FormattedAddress: "Phoenix, AZ, USA",
		// CreatedAt zero -> repo sets UTC now
	})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
