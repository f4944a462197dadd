package gps

import (
	"strconv"
	"strings"

	"driverlogs/internal/models"
)

// Coordinate bounds (WGS 84 degrees).
const (
	minLat, maxLat = -90.0, 90.0
	minLng, maxLng = -180.0, 180.0
)

// InRange reports whether the pair is a plausible latitude/longitude.
func InRange(lat, lng float64) bool {
	return lat >= minLat && lat <= maxLat && lng >= minLng && lng <= maxLng
}

// ParseCoordinates parses a "lat, lng" string (e.g. "34.0522, -118.2437")
// into a coordinate, rejecting malformed input and out-of-range values.
func ParseCoordinates(s string) (*models.Coordinate, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, false
	}

	if !InRange(lat, lng) {
		return nil, false
	}

	return &models.Coordinate{Lat: lat, Lng: lng}, true
}
