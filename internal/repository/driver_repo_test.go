package repository

import (
	"database/sql"
	"driverlogs/internal/models"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDriverCreate_Success_WithDefaults(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewDriverSQLite(db)

	mock.ExpectExec("INSERT INTO drivers").
		WithArgs(sqlmock.AnyArg(), "John Doe", "D1234567", "Los Angeles, CA", "HQ, Phoenix, AZ",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx(t), models.Driver{
		// ID empty -> repo generates
		Name:              "John Doe",
		LicenseNumber:     "D1234567",
		HomeTerminal:      "Los Angeles, CA",
		MainOfficeAddress: "HQ, Phoenix, AZ",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestDriverCreate_DuplicateLicense(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewDriverSQLite(db)

	mock.ExpectExec("INSERT INTO drivers").
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: drivers.license_number (2067)"))

	err = repo.Create(ctx(t), models.Driver{Name: "Bob Lee", LicenseNumber: "D1234567"})
	if !errors.Is(err, ErrDuplicateLicense) {
		t.Fatalf("expected ErrDuplicateLicense, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestDriverUpdate_DuplicateLicense(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewDriverSQLite(db)

	mock.ExpectExec("UPDATE drivers").
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: drivers.license_number (2067)"))

	err = repo.Update(ctx(t), models.Driver{ID: "drv-2", Name: "Bob Lee", LicenseNumber: "D1234567"})
	if !errors.Is(err, ErrDuplicateLicense) {
		t.Fatalf("expected ErrDuplicateLicense, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestDriverGetByID_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewDriverSQLite(db)

	mock.ExpectQuery("SELECT (.+) FROM drivers").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByID(ctx(t), "missing")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestDriverList_OrderedByName(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewDriverSQLite(db)

	at := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "license_number", "home_terminal", "main_office_address", "created_at", "updated_at"}).
		AddRow("drv-1", "Alice Ray", "A111", "Dallas, TX", "HQ", at, at).
		AddRow("drv-2", "Bob Lee", "B222", "Reno, NV", "HQ", at, at)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY name ASC")).
		WillReturnRows(rows)

	got, err := repo.List(ctx(t))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Alice Ray" || got[1].Name != "Bob Lee" {
		t.Fatalf("unexpected results: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestDriverUpdate_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewDriverSQLite(db)

	mock.ExpectExec("UPDATE drivers").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(ctx(t), models.Driver{ID: "missing", Name: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestDriverDelete_Success(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewDriverSQLite(db)

	mock.ExpectExec("DELETE FROM drivers").
		WithArgs("drv-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(ctx(t), "drv-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
