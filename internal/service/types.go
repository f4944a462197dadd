package service

import "driverlogs/internal/models"

// DriverFilter narrows driver listings.
type DriverFilter struct {
	Search   string // matches name or license number, case-insensitive
	Page     int    // 1-based; 0 means first page
	PageSize int    // 0 means default
}

// LogFilter narrows daily-log listings.
type LogFilter struct {
	DriverID  string
	StartDate string // inclusive, YYYY-MM-DD; empty means no lower bound
	EndDate   string // inclusive, YYYY-MM-DD; empty means no upper bound
	Compliant *bool  // nil means both
	Page      int
	PageSize  int
}

// StatsParams selects the window for driver stats.
type StatsParams struct {
	PeriodDays int    // 7, 30, or 90; anything else means 30
	StartDate  string // explicit range overrides PeriodDays
	EndDate    string
}

// DriverStats is the per-driver aggregate for a date window.
type DriverStats struct {
	DriverID            string             `json:"driverId"`
	StartDate           string             `json:"startDate"`
	EndDate             string             `json:"endDate"`
	TotalLogs           int                `json:"totalLogs"`
	TotalDrivingHours   float64            `json:"totalDrivingHours"`
	TotalOnDutyHours    float64            `json:"totalOnDutyHours"`
	TotalMiles          float64            `json:"totalMiles"`
	AverageDrivingHours float64            `json:"averageDrivingHours"`
	AverageMiles        float64            `json:"averageMiles"`
	CompliantLogs       int                `json:"compliantLogs"`
	ComplianceRate      float64            `json:"complianceRate"`
	Violations          []models.Violation `json:"violations"`
	WeeklyBreakdown     []WeeklyStats      `json:"weeklyBreakdown"`
}

// WeeklyStats is one ISO week of a driver's breakdown.
type WeeklyStats struct {
	Week          string  `json:"week"` // YYYY-WNN
	Logs          int     `json:"logs"`
	DrivingHours  float64 `json:"drivingHours"`
	Miles         float64 `json:"miles"`
	CompliantLogs int     `json:"compliantLogs"`
}

// DashboardStats is the fleet-wide aggregate.
type DashboardStats struct {
	TotalDrivers   int              `json:"totalDrivers"`
	TotalLogs      int              `json:"totalLogs"`
	CompliantLogs  int              `json:"compliantLogs"`
	ViolationLogs  int              `json:"violationLogs"`
	ComplianceRate float64          `json:"complianceRate"`
	LogsToday      int              `json:"logsToday"`
	LogsThisWeek   int              `json:"logsThisWeek"`
	LogsThisMonth  int              `json:"logsThisMonth"`
	TopViolations  []ViolationCount `json:"topViolations"`
}

// ViolationCount is one rule with its occurrence count.
type ViolationCount struct {
	Rule  string `json:"rule"`
	Count int    `json:"count"`
}

// BatchGeocodeItem is one location's outcome in a batch geocode.
type BatchGeocodeItem struct {
	Location string                 `json:"location"`
	Status   string                 `json:"status"` // "found" | "not_found" | "error"
	Result   *models.CachedLocation `json:"result,omitempty"`
}

// LogRoute describes one daily log's movement for the route endpoint.
type LogRoute struct {
	LogID      string                  `json:"logId"`
	DriverID   string                  `json:"driverId"`
	Date       string                  `json:"date"`
	Locations  []RoutePoint            `json:"locations"`
	Segments   []models.DrivingSegment `json:"segments"`
	RouteStats models.RouteStats       `json:"routeStats"`
}

// RoutePoint is one coordinate-bearing duty status on a log's route.
type RoutePoint struct {
	Status     string            `json:"status"`
	Location   string            `json:"location,omitempty"`
	Coordinate models.Coordinate `json:"coordinate"`
}
