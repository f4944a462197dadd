package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"driverlogs/internal/gps"
	"driverlogs/internal/hos"
	"driverlogs/internal/models"
	"driverlogs/internal/repository"

	"github.com/google/uuid"
)

// A submitted day must account for 24 hours, give or take rounding slack.
const totalHoursTolerance = 0.01

const dateLayout = "2006-01-02"

type LogService struct {
	logRepo    repository.LogRepo
	driverRepo repository.DriverRepo
	geo        Geocoder
}

func NewLogService(logRepo repository.LogRepo, driverRepo repository.DriverRepo, geo Geocoder) *LogService {
	return &LogService{logRepo: logRepo, driverRepo: driverRepo, geo: geo}
}

// Create validates, geocodes, recomputes, and stores a new daily log.
func (s *LogService) Create(ctx context.Context, l models.DailyLog) (*models.DailyLog, error) {
	if err := s.validateLog(ctx, l, true); err != nil {
		return nil, err
	}
	s.autoGeocode(ctx, l.DutyStatuses)
	recompute(&l)

	l.ID = uuid.NewString()
	if err := s.logRepo.Create(ctx, l); err != nil {
		if errors.Is(err, repository.ErrDuplicateLog) {
			return nil, ErrDuplicateLog
		}
		return nil, err
	}
	return s.logRepo.GetByID(ctx, l.ID)
}

func (s *LogService) Get(ctx context.Context, id string) (*models.DailyLog, error) {
	l, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLogNotFound
	}
	return l, nil
}

// List returns one page of logs plus the total match count.
func (s *LogService) List(ctx context.Context, f LogFilter) ([]models.DailyLog, int, error) {
	all, err := s.logRepo.List(ctx, f.DriverID, f.StartDate, f.EndDate)
	if err != nil {
		return nil, 0, err
	}

	matched := all
	if f.Compliant != nil {
		matched = matched[:0:0]
		for _, l := range all {
			if l.IsCompliant != nil && *l.IsCompliant == *f.Compliant {
				matched = append(matched, l)
			}
		}
	}

	total := len(matched)
	return paginate(matched, f.Page, f.PageSize), total, nil
}

// Update replaces a log's mutable fields and recomputes derived ones.
// DriverID is never reassigned; the stored value wins.
func (s *LogService) Update(ctx context.Context, l models.DailyLog) (*models.DailyLog, error) {
	existing, err := s.logRepo.GetByID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrLogNotFound
	}
	l.DriverID = existing.DriverID
	if l.Date == "" {
		l.Date = existing.Date
	}

	if err := s.validateLog(ctx, l, false); err != nil {
		return nil, err
	}
	s.autoGeocode(ctx, l.DutyStatuses)
	recompute(&l)

	if err := s.logRepo.Update(ctx, l); err != nil {
		if errors.Is(err, repository.ErrDuplicateLog) {
			return nil, ErrDuplicateLog
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return s.logRepo.GetByID(ctx, l.ID)
}

func (s *LogService) Delete(ctx context.Context, id string) error {
	if err := s.logRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLogNotFound
		}
		return err
	}
	return nil
}

// validateLog checks the request shape. checkDriver is skipped on update,
// where the stored driver is authoritative.
func (s *LogService) validateLog(ctx context.Context, l models.DailyLog, checkDriver bool) error {
	if _, err := time.Parse(dateLayout, l.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if checkDriver {
		d, err := s.driverRepo.GetByID(ctx, l.DriverID)
		if err != nil {
			return err
		}
		if d == nil {
			return ErrDriverNotFound
		}
	}
	return ValidateDutyStatuses(l.DutyStatuses)
}

// ValidateDutyStatuses enforces the write-path constraints: a non-empty list
// of recognized statuses with in-range clock fields and coordinates, whose
// durations account for a full day.
func ValidateDutyStatuses(statuses []models.DutyStatus) error {
	if len(statuses) == 0 {
		return fmt.Errorf("%w: dutyStatuses must not be empty", ErrValidation)
	}
	for i, ds := range statuses {
		if _, ok := models.ParseDutyCategory(ds.Status); !ok {
			return fmt.Errorf("%w: dutyStatuses[%d]: unknown status %q", ErrValidation, i, ds.Status)
		}
		startHour, startMinute, endHour, endMinute := ds.Window()
		if startHour < 0 || startHour > 23 || startMinute < 0 || startMinute > 59 {
			return fmt.Errorf("%w: dutyStatuses[%d]: start time out of range", ErrValidation, i)
		}
		if endHour < 0 || endHour > 24 || endMinute < 0 || endMinute > 59 {
			return fmt.Errorf("%w: dutyStatuses[%d]: end time out of range", ErrValidation, i)
		}
		if endHour == 24 && endMinute != 0 {
			return fmt.Errorf("%w: dutyStatuses[%d]: endHour 24 requires endMinute 0", ErrValidation, i)
		}
		if ds.Coordinates != nil && !gps.InRange(ds.Coordinates.Lat, ds.Coordinates.Lng) {
			return fmt.Errorf("%w: dutyStatuses[%d]: coordinates out of range", ErrValidation, i)
		}
	}
	if total := hos.ComputeHours(statuses).Total; math.Abs(total-24.0) > totalHoursTolerance {
		return fmt.Errorf("%w: duty statuses cover %vh, expected 24h", ErrValidation, total)
	}
	return nil
}

// autoGeocode fills coordinates for statuses that name a location but carry
// none. Lookups are best effort; failures leave the status untouched.
func (s *LogService) autoGeocode(ctx context.Context, statuses []models.DutyStatus) {
	if s.geo == nil {
		return
	}
	for i := range statuses {
		if statuses[i].Location == "" || statuses[i].Coordinates != nil {
			continue
		}
		loc, err := s.geo.Geocode(ctx, statuses[i].Location)
		if err != nil || loc == nil {
			continue
		}
		statuses[i].Coordinates = &models.Coordinate{Lat: loc.Lat, Lng: loc.Lng}
		statuses[i].AutoGeocoded = true
	}
}

// recompute refreshes every derived field from the duty statuses.
func recompute(l *models.DailyLog) {
	result := hos.CheckCompliance(l.DutyStatuses)
	compliant := result.IsCompliant
	l.Hours = result.Hours
	l.IsCompliant = &compliant
	l.Violations = result.Violations

	stats := gps.BuildRouteStats(l.DutyStatuses, models.UnitMiles)
	l.RouteStats = stats
	l.TotalDrivingDistance = stats.TotalDrivingDistance
}
