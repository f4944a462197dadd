package repository

import (
	"context"
	"database/sql"
	"driverlogs/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

type DriverRepo interface {
	Create(ctx context.Context, d models.Driver) error
	GetByID(ctx context.Context, id string) (*models.Driver, error)
	List(ctx context.Context) ([]models.Driver, error)
	Update(ctx context.Context, d models.Driver) error
	Delete(ctx context.Context, id string) error
}

type LogRepo interface {
	Create(ctx context.Context, l models.DailyLog) error
	GetByID(ctx context.Context, id string) (*models.DailyLog, error)
	GetByDriverAndDate(ctx context.Context, driverID, date string) (*models.DailyLog, error)
	List(ctx context.Context, driverID, from, to string) ([]models.DailyLog, error)
	Update(ctx context.Context, l models.DailyLog) error
	Delete(ctx context.Context, id string) error
}

type LocationRepo interface {
	Get(ctx context.Context, name string) (*models.CachedLocation, error)
	Put(ctx context.Context, loc models.CachedLocation) error
}

type Repository struct {
	DriverRepo   DriverRepo
	LogRepo      LogRepo
	LocationRepo LocationRepo
	Auth         Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DriverRepo:   NewDriverSQLite(db),
		LogRepo:      NewLogSQLite(db),
		LocationRepo: NewLocationSQLite(db),
		Auth:         NewUserRepository(db),
	}
}
