// Package gps holds the pure route-statistics calculations: great-circle
// distance, waypoint legs, and segment reconstruction over a day's duty
// statuses. Like package hos it performs no I/O and keeps no state between
// calls; the geocoding that produces coordinates lives elsewhere.
package gps

import (
	"math"

	"driverlogs/internal/models"
)

// Earth radii matching the supported units.
const (
	earthRadiusMiles = 3959.0
	earthRadiusKm    = 6371.0
)

// Distance returns the haversine great-circle distance between two points,
// rounded to 1 decimal. The radius is 3959 miles iff unit is exactly
// models.UnitMiles; any other value selects the kilometer radius. Unit
// validation is the caller's responsibility.
func Distance(lat1, lng1, lat2, lng2 float64, unit string) float64 {
	r := earthRadiusKm
	if unit == models.UnitMiles {
		r = earthRadiusMiles
	}

	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	deltaLat := toRadians(lat2 - lat1)
	deltaLng := toRadians(lng2 - lng1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	// a is in [0,1] by construction; clamp against float overshoot so the
	// sqrt(1-a) term can never go negative for antipodal points.
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return round1(r * c)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// round1 rounds to 1 decimal place, halves away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
