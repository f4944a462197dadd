package gps

import "driverlogs/internal/models"

// routeState is the carried-forward fold state of the single left-to-right
// pass: the last coordinate any event reported, whatever its status.
type routeState struct {
	lastCoord  *models.Coordinate
	lastStatus string
}

// BuildRouteStats walks the duty statuses in order and reconstructs the
// day's driving segments. Every coordinate-bearing event updates the
// carried-forward position; a driving event with a prior position emits a
// segment from that position to itself. Events without coordinates are
// skipped entirely: no counters, no state update. The position is last
// reported at any duty-status change, so only driving hops become road
// distance while non-driving events still anchor segment starts.
func BuildRouteStats(statuses []models.DutyStatus, unit string) models.RouteStats {
	stats := models.RouteStats{
		DrivingSegments: []models.DrivingSegment{},
	}

	var st routeState

	for _, ds := range statuses {
		if ds.Coordinates == nil {
			continue
		}
		coord := *ds.Coordinates

		stats.TotalLocations++

		cat, known := models.ParseDutyCategory(ds.Status)
		switch {
		case known && cat == models.CategoryDriving:
			stats.DrivingLocations++

			if st.lastCoord != nil {
				d := Distance(st.lastCoord.Lat, st.lastCoord.Lng, coord.Lat, coord.Lng, unit)
				stats.TotalDrivingDistance += d
				stats.DrivingSegments = append(stats.DrivingSegments, models.DrivingSegment{
					Start:       *st.lastCoord,
					StartStatus: st.lastStatus,
					End:         coord,
					EndStatus:   models.CategoryDriving.String(),
					Distance:    d,
				})
			}
		case known && cat == models.CategoryOnDuty:
			stats.OnDutyLocations++
		case known && cat == models.CategoryOffDuty:
			stats.OffDutyLocations++
		case known && cat == models.CategorySleeper:
			stats.SleeperLocations++
		}
		// Unrecognized statuses count toward TotalLocations only, but they
		// still anchor the next segment start like any other event.

		st.lastCoord = &coord
		st.lastStatus = cat.String()
	}

	stats.TotalDrivingDistance = round1(stats.TotalDrivingDistance)

	return stats
}

// RouteLegs measures the consecutive legs of an explicit waypoint route and
// returns the 1-decimal rounded total alongside the legs themselves.
func RouteLegs(waypoints []models.Coordinate, unit string) (float64, []models.RouteLeg) {
	legs := make([]models.RouteLeg, 0, max(len(waypoints)-1, 0))
	total := 0.0

	for i := 0; i+1 < len(waypoints); i++ {
		from, to := waypoints[i], waypoints[i+1]
		d := Distance(from.Lat, from.Lng, to.Lat, to.Lng, unit)
		total += d
		legs = append(legs, models.RouteLeg{From: from, To: to, Distance: d})
	}

	return round1(total), legs
}
