package models

// Distance units accepted by the GPS calculators.
const (
	UnitMiles      = "miles"
	UnitKilometers = "kilometers"
)

// Coordinate is an immutable WGS 84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DrivingSegment is one reconstructed hop ending at a driving event.
// Start is the last reported position before the hop, whatever duty status
// reported it.
type DrivingSegment struct {
	Start       Coordinate `json:"start"`
	StartStatus string     `json:"startStatus"`
	End         Coordinate `json:"end"`
	EndStatus   string     `json:"endStatus"`
	Distance    float64    `json:"distance"`
}

// RouteStats summarizes the GPS-bearing events of a day.
type RouteStats struct {
	TotalDrivingDistance float64          `json:"totalDrivingDistance"`
	TotalLocations       int              `json:"totalLocations"`
	DrivingLocations     int              `json:"drivingLocations"`
	OnDutyLocations      int              `json:"onDutyLocations"`
	OffDutyLocations     int              `json:"offDutyLocations"`
	SleeperLocations     int              `json:"sleeperLocations"`
	DrivingSegments      []DrivingSegment `json:"drivingSegments"`
}

// RouteLeg is one leg of an explicit waypoint route.
type RouteLeg struct {
	From     Coordinate `json:"from"`
	To       Coordinate `json:"to"`
	Distance float64    `json:"distance"`
}
