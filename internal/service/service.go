package service

import (
	"context"
	"time"

	"driverlogs/internal/models"
	"driverlogs/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Drivers exposes driver CRUD with search and pagination.
type Drivers interface {
	Create(ctx context.Context, d models.Driver) (*models.Driver, error)
	Get(ctx context.Context, id string) (*models.Driver, error)
	List(ctx context.Context, f DriverFilter) ([]models.Driver, int, error)
	Update(ctx context.Context, d models.Driver) (*models.Driver, error)
	Delete(ctx context.Context, id string) error
}

// Logs exposes daily-log CRUD. Create and Update validate duty statuses,
// auto-geocode missing coordinates, and recompute derived fields.
type Logs interface {
	Create(ctx context.Context, l models.DailyLog) (*models.DailyLog, error)
	Get(ctx context.Context, id string) (*models.DailyLog, error)
	List(ctx context.Context, f LogFilter) ([]models.DailyLog, int, error)
	Update(ctx context.Context, l models.DailyLog) (*models.DailyLog, error)
	Delete(ctx context.Context, id string) error
}

// Compliance evaluates duty statuses without persisting anything.
type Compliance interface {
	Check(statuses []models.DutyStatus) (models.ComplianceResult, error)
}

// GPS exposes geocoding and distance operations.
type GPS interface {
	Geocode(ctx context.Context, location string) (*models.CachedLocation, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Address, error)
	BatchGeocode(ctx context.Context, locations []string) []BatchGeocodeItem
	Distance(start, end models.Coordinate, unit string) (float64, error)
	RouteDistance(waypoints []models.Coordinate, unit string) (float64, []models.RouteLeg, error)
	LogRoute(ctx context.Context, logID string) (*LogRoute, error)
}

// Stats exposes per-driver and fleet-wide aggregates.
type Stats interface {
	DriverStats(ctx context.Context, driverID string, p StatsParams) (*DriverStats, error)
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

// Backfill runs the background loop that geocodes duty statuses which have a
// location but no coordinates. Stop via context cancellation in main().
type Backfill interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Drivers
	Logs
	Compliance
	GPS
	Stats
	Backfill
	Authorization
}

// NewService wires the repository layer and the geocoder into concrete
// services.
func NewService(repos *repository.Repository, geo Geocoder, authCfg AuthConfig) *Service {
	logs := NewLogService(repos.LogRepo, repos.DriverRepo, geo)
	return &Service{
		Drivers:       NewDriverService(repos.DriverRepo),
		Logs:          logs,
		Compliance:    NewComplianceService(),
		GPS:           NewGPSService(repos.LogRepo, geo),
		Stats:         NewStatsService(repos.DriverRepo, repos.LogRepo),
		Backfill:      NewBackfillService(repos.LogRepo, logs),
		Authorization: NewAuthService(repos.Auth, authCfg),
	}
}
