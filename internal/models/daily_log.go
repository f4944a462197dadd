package models

import "time"

// DailyLog is one driver-day of duty statuses with derived HOS and route
// figures. Derived fields (Hours, IsCompliant, Violations, RouteStats,
// TotalDrivingDistance) are recomputed whenever duty statuses change;
// they are stored, never trusted from client input.
type DailyLog struct {
	ID                   string       `json:"id"`
	DriverID             string       `json:"driverId"`
	Date                 string       `json:"date"` // YYYY-MM-DD
	DutyStatuses         []DutyStatus `json:"dutyStatuses"`
	Remarks              string       `json:"remarks,omitempty"`
	ShippingDocuments    string       `json:"shippingDocuments,omitempty"`
	CoDriverName         string       `json:"coDriverName,omitempty"`
	VehicleNumbers       string       `json:"vehicleNumbers,omitempty"`
	TotalMiles           int          `json:"totalMiles"`
	TotalMilesToday      int          `json:"totalMilesToday"`
	TotalMilesYesterday  int          `json:"totalMilesYesterday"`
	Hours                HoursSummary `json:"hours"`
	IsCompliant          *bool        `json:"isCompliant,omitempty"`
	Violations           []Violation  `json:"violations"`
	TotalDrivingDistance float64      `json:"totalDrivingDistance"`
	RouteStats           RouteStats   `json:"routeStats"`
	CreatedAt            time.Time    `json:"createdAt"`
	UpdatedAt            time.Time    `json:"updatedAt"`
}
