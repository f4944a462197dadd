package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"driverlogs/internal/gps"
	"driverlogs/internal/models"
	"driverlogs/internal/repository"
)

// Geocoder resolves place names to coordinates and back. Implemented by
// geocode.Client; fakes stand in during tests.
type Geocoder interface {
	Geocode(ctx context.Context, name string) (*models.CachedLocation, error)
	Reverse(ctx context.Context, lat, lng float64) (*models.Address, error)
}

// ErrLocationNotFound signals a geocode lookup that produced no match.
var ErrLocationNotFound = errors.New("location not found")

type GPSService struct {
	logRepo repository.LogRepo
	geo     Geocoder
}

func NewGPSService(logRepo repository.LogRepo, geo Geocoder) *GPSService {
	return &GPSService{logRepo: logRepo, geo: geo}
}

func (s *GPSService) Geocode(ctx context.Context, location string) (*models.CachedLocation, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: location is required", ErrValidation)
	}
	loc, err := s.geo.Geocode(ctx, location)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, ErrLocationNotFound
	}
	return loc, nil
}

func (s *GPSService) ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Address, error) {
	if !gps.InRange(lat, lng) {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}
	addr, err := s.geo.Reverse(ctx, lat, lng)
	if err != nil {
		return nil, err
	}
	if addr == nil {
		return nil, ErrLocationNotFound
	}
	return addr, nil
}

// BatchGeocode resolves each location independently; one failure never
// aborts the batch.
func (s *GPSService) BatchGeocode(ctx context.Context, locations []string) []BatchGeocodeItem {
	out := make([]BatchGeocodeItem, 0, len(locations))
	for _, location := range locations {
		item := BatchGeocodeItem{Location: location}
		loc, err := s.Geocode(ctx, location)
		switch {
		case err == nil:
			item.Status = "found"
			item.Result = loc
		case errors.Is(err, ErrLocationNotFound) || errors.Is(err, ErrValidation):
			item.Status = "not_found"
		default:
			item.Status = "error"
		}
		out = append(out, item)
	}
	return out
}

// Distance returns the great-circle distance between two points.
// An empty unit means miles.
func (s *GPSService) Distance(start, end models.Coordinate, unit string) (float64, error) {
	unit, err := normalizeUnit(unit)
	if err != nil {
		return 0, err
	}
	if !gps.InRange(start.Lat, start.Lng) || !gps.InRange(end.Lat, end.Lng) {
		return 0, fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}
	return gps.Distance(start.Lat, start.Lng, end.Lat, end.Lng, unit), nil
}

// RouteDistance sums consecutive waypoint legs.
func (s *GPSService) RouteDistance(waypoints []models.Coordinate, unit string) (float64, []models.RouteLeg, error) {
	unit, err := normalizeUnit(unit)
	if err != nil {
		return 0, nil, err
	}
	if len(waypoints) < 2 {
		return 0, nil, fmt.Errorf("%w: at least two waypoints are required", ErrValidation)
	}
	for i, w := range waypoints {
		if !gps.InRange(w.Lat, w.Lng) {
			return 0, nil, fmt.Errorf("%w: waypoints[%d] out of range", ErrValidation, i)
		}
	}
	total, legs := gps.RouteLegs(waypoints, unit)
	return total, legs, nil
}

// LogRoute rebuilds the movement picture for one stored daily log.
func (s *GPSService) LogRoute(ctx context.Context, logID string) (*LogRoute, error) {
	l, err := s.logRepo.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLogNotFound
	}

	stats := gps.BuildRouteStats(l.DutyStatuses, models.UnitMiles)

	points := make([]RoutePoint, 0, len(l.DutyStatuses))
	for _, ds := range l.DutyStatuses {
		if ds.Coordinates == nil {
			continue
		}
		points = append(points, RoutePoint{
			Status:     ds.Status,
			Location:   ds.Location,
			Coordinate: *ds.Coordinates,
		})
	}

	return &LogRoute{
		LogID:      l.ID,
		DriverID:   l.DriverID,
		Date:       l.Date,
		Locations:  points,
		Segments:   stats.DrivingSegments,
		RouteStats: stats,
	}, nil
}

func normalizeUnit(unit string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "":
		return models.UnitMiles, nil
	case models.UnitMiles:
		return models.UnitMiles, nil
	case models.UnitKilometers, "km":
		return models.UnitKilometers, nil
	}
	return "", fmt.Errorf("%w: unit must be miles or kilometers", ErrValidation)
}
