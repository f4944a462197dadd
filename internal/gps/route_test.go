package gps

import (
	"testing"

	"driverlogs/internal/models"
)

func coord(lat, lng float64) *models.Coordinate {
	return &models.Coordinate{Lat: lat, Lng: lng}
}

func located(status string, c *models.Coordinate) models.DutyStatus {
	return models.DutyStatus{Status: status, Coordinates: c}
}

func TestBuildRouteStats_SegmentFromLastKnownLocation(t *testing.T) {
	stats := BuildRouteStats([]models.DutyStatus{
		located("on-duty", coord(34.0, -118.0)),
		located("driving", coord(35.0, -119.0)),
	}, models.UnitMiles)

	if stats.TotalLocations != 2 {
		t.Fatalf("totalLocations = %d, want 2", stats.TotalLocations)
	}
	if stats.OnDutyLocations != 1 || stats.DrivingLocations != 1 {
		t.Fatalf("location counters wrong: %+v", stats)
	}
	if len(stats.DrivingSegments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(stats.DrivingSegments))
	}

	seg := stats.DrivingSegments[0]
	if seg.Start != (models.Coordinate{Lat: 34.0, Lng: -118.0}) {
		t.Fatalf("segment start = %+v, want the on-duty coordinate", seg.Start)
	}
	if seg.StartStatus != "on-duty" || seg.EndStatus != "driving" {
		t.Fatalf("segment statuses = %q → %q", seg.StartStatus, seg.EndStatus)
	}

	want := Distance(34.0, -118.0, 35.0, -119.0, models.UnitMiles)
	if seg.Distance != want {
		t.Fatalf("segment distance = %v, want %v", seg.Distance, want)
	}
	if stats.TotalDrivingDistance != want {
		t.Fatalf("totalDrivingDistance = %v, want %v", stats.TotalDrivingDistance, want)
	}
}

func TestBuildRouteStats_FirstDrivingEventHasNoSegment(t *testing.T) {
	stats := BuildRouteStats([]models.DutyStatus{
		located("driving", coord(34.0, -118.0)),
	}, models.UnitMiles)

	if len(stats.DrivingSegments) != 0 {
		t.Fatalf("no prior location: expected 0 segments, got %d", len(stats.DrivingSegments))
	}
	if stats.DrivingLocations != 1 || stats.TotalLocations != 1 {
		t.Fatalf("first driving event must still be counted: %+v", stats)
	}
	if stats.TotalDrivingDistance != 0.0 {
		t.Fatalf("totalDrivingDistance = %v, want 0.0", stats.TotalDrivingDistance)
	}
}

func TestBuildRouteStats_ConsecutiveDrivingHops(t *testing.T) {
	a, b, c := coord(34.0, -118.0), coord(35.0, -119.0), coord(36.0, -120.0)
	stats := BuildRouteStats([]models.DutyStatus{
		located("driving", a),
		located("driving", b),
		located("driving", c),
	}, models.UnitMiles)

	if len(stats.DrivingSegments) != 2 {
		t.Fatalf("expected 2 incremental hops, got %d", len(stats.DrivingSegments))
	}
	// Each hop measures from the previous driving event, never from A twice.
	if stats.DrivingSegments[1].Start != *b {
		t.Fatalf("second hop starts at %+v, want %+v", stats.DrivingSegments[1].Start, *b)
	}

	ab := Distance(a.Lat, a.Lng, b.Lat, b.Lng, models.UnitMiles)
	bc := Distance(b.Lat, b.Lng, c.Lat, c.Lng, models.UnitMiles)
	if want := ab + bc; stats.TotalDrivingDistance != want {
		t.Fatalf("totalDrivingDistance = %v, want %v", stats.TotalDrivingDistance, want)
	}
}

func TestBuildRouteStats_EventsWithoutCoordinatesAreSkipped(t *testing.T) {
	stats := BuildRouteStats([]models.DutyStatus{
		located("on-duty", coord(34.0, -118.0)),
		{Status: "off-duty"}, // no coordinates: no counters, no state update
		located("driving", coord(35.0, -119.0)),
	}, models.UnitMiles)

	if stats.TotalLocations != 2 || stats.OffDutyLocations != 0 {
		t.Fatalf("coordinate-less event leaked into counters: %+v", stats)
	}
	if len(stats.DrivingSegments) != 1 || stats.DrivingSegments[0].StartStatus != "on-duty" {
		t.Fatalf("segment must start from the on-duty position, got %+v", stats.DrivingSegments)
	}
}

func TestBuildRouteStats_UnknownStatusCountsTotalOnly(t *testing.T) {
	stats := BuildRouteStats([]models.DutyStatus{
		located("yard-move", coord(34.0, -118.0)),
		located("driving", coord(35.0, -119.0)),
	}, models.UnitMiles)

	if stats.TotalLocations != 2 {
		t.Fatalf("totalLocations = %d, want 2", stats.TotalLocations)
	}
	if stats.OnDutyLocations+stats.OffDutyLocations+stats.SleeperLocations != 0 {
		t.Fatalf("unknown status incremented a category counter: %+v", stats)
	}
	// Unknown statuses still anchor segments.
	if len(stats.DrivingSegments) != 1 || stats.DrivingSegments[0].StartStatus != "yard-move" {
		t.Fatalf("unknown status must still carry forward as segment start: %+v", stats.DrivingSegments)
	}
}

func TestBuildRouteStats_AllCategoryCounters(t *testing.T) {
	stats := BuildRouteStats([]models.DutyStatus{
		located("off-duty", coord(34.0, -118.0)),
		located("Sleeper", coord(34.1, -118.1)),
		located("on-duty", coord(34.2, -118.2)),
		located("driving", coord(34.3, -118.3)),
	}, models.UnitMiles)

	if stats.OffDutyLocations != 1 || stats.SleeperLocations != 1 ||
		stats.OnDutyLocations != 1 || stats.DrivingLocations != 1 {
		t.Fatalf("category counters wrong: %+v", stats)
	}
	if stats.TotalLocations != 4 {
		t.Fatalf("totalLocations = %d, want 4", stats.TotalLocations)
	}
}

func TestBuildRouteStats_Empty(t *testing.T) {
	stats := BuildRouteStats(nil, models.UnitMiles)
	if stats.TotalLocations != 0 || stats.TotalDrivingDistance != 0.0 {
		t.Fatalf("empty input must yield zero stats: %+v", stats)
	}
	if stats.DrivingSegments == nil {
		t.Fatalf("segments must serialize as an array, not null")
	}
}

func TestRouteLegs(t *testing.T) {
	points := []models.Coordinate{
		{Lat: 34.0522, Lng: -118.2437},
		{Lat: 35.3733, Lng: -119.0187},
		{Lat: 37.7749, Lng: -122.4194},
	}

	total, legs := RouteLegs(points, models.UnitMiles)

	if len(legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(legs))
	}
	sum := legs[0].Distance + legs[1].Distance
	if total != round1(sum) {
		t.Fatalf("total = %v, want rounded leg sum %v", total, round1(sum))
	}
	if legs[0].From != points[0] || legs[1].To != points[2] {
		t.Fatalf("leg endpoints wrong: %+v", legs)
	}
}

func TestRouteLegs_TooFewWaypoints(t *testing.T) {
	total, legs := RouteLegs([]models.Coordinate{{Lat: 1, Lng: 2}}, models.UnitMiles)
	if total != 0.0 || len(legs) != 0 {
		t.Fatalf("single waypoint: total=%v legs=%v, want 0 and none", total, legs)
	}
}

func TestParseCoordinates(t *testing.T) {
	c, ok := ParseCoordinates("34.0522, -118.2437")
	if !ok || c.Lat != 34.0522 || c.Lng != -118.2437 {
		t.Fatalf("parse failed: %+v ok=%v", c, ok)
	}

	for _, bad := range []string{"", "34.0522", "91.0, 10.0", "10.0, 181.0", "a, b", "1,2,3"} {
		if _, ok := ParseCoordinates(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}
