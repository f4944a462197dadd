package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"driverlogs/internal/models"
	"driverlogs/internal/repository"
)

const (
	defaultStatsPeriodDays = 30
	maxStatsViolations     = 10
	maxWeeklyBuckets       = 20
	maxTopViolations       = 5
)

type StatsService struct {
	driverRepo repository.DriverRepo
	logRepo    repository.LogRepo
	now        func() time.Time
}

func NewStatsService(driverRepo repository.DriverRepo, logRepo repository.LogRepo) *StatsService {
	return &StatsService{driverRepo: driverRepo, logRepo: logRepo, now: time.Now}
}

// DriverStats aggregates one driver's logs over a window. An explicit
// start/end pair overrides the period; otherwise the period is 7, 30, or
// 90 days ending today, with anything else treated as 30.
func (s *StatsService) DriverStats(ctx context.Context, driverID string, p StatsParams) (*DriverStats, error) {
	d, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDriverNotFound
	}

	start, end, err := s.resolveWindow(p)
	if err != nil {
		return nil, err
	}

	logs, err := s.logRepo.List(ctx, driverID, start, end)
	if err != nil {
		return nil, err
	}

	stats := &DriverStats{
		DriverID:        driverID,
		StartDate:       start,
		EndDate:         end,
		TotalLogs:       len(logs),
		Violations:      []models.Violation{},
		WeeklyBreakdown: []WeeklyStats{},
	}

	weekIndex := map[string]int{}
	compliant := 0
	for _, l := range logs {
		stats.TotalDrivingHours += l.Hours.Driving
		stats.TotalOnDutyHours += l.Hours.OnDuty
		stats.TotalMiles += l.TotalDrivingDistance
		isCompliant := l.IsCompliant != nil && *l.IsCompliant
		if isCompliant {
			compliant++
		}
		for _, v := range l.Violations {
			if len(stats.Violations) < maxStatsViolations {
				stats.Violations = append(stats.Violations, v)
			}
		}

		week := isoWeekLabel(l.Date)
		if week == "" {
			continue
		}
		idx, ok := weekIndex[week]
		if !ok {
			if len(stats.WeeklyBreakdown) >= maxWeeklyBuckets {
				continue
			}
			idx = len(stats.WeeklyBreakdown)
			weekIndex[week] = idx
			stats.WeeklyBreakdown = append(stats.WeeklyBreakdown, WeeklyStats{Week: week})
		}
		w := &stats.WeeklyBreakdown[idx]
		w.Logs++
		w.DrivingHours = roundTo(w.DrivingHours+l.Hours.Driving, 2)
		w.Miles = roundTo(w.Miles+l.TotalDrivingDistance, 1)
		if isCompliant {
			w.CompliantLogs++
		}
	}

	stats.CompliantLogs = compliant
	stats.TotalDrivingHours = roundTo(stats.TotalDrivingHours, 2)
	stats.TotalOnDutyHours = roundTo(stats.TotalOnDutyHours, 2)
	stats.TotalMiles = roundTo(stats.TotalMiles, 1)
	if len(logs) > 0 {
		stats.AverageDrivingHours = roundTo(stats.TotalDrivingHours/float64(len(logs)), 2)
		stats.AverageMiles = roundTo(stats.TotalMiles/float64(len(logs)), 1)
		stats.ComplianceRate = roundTo(float64(compliant)/float64(len(logs))*100, 1)
	}
	return stats, nil
}

// DashboardStats aggregates the whole fleet.
func (s *StatsService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	drivers, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.logRepo.List(ctx, "", "", "")
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	today := now.Format(dateLayout)
	thisYear, thisWeek := now.ISOWeek()
	thisMonth := now.Format("2006-01")

	stats := &DashboardStats{
		TotalDrivers:  len(drivers),
		TotalLogs:     len(logs),
		TopViolations: []ViolationCount{},
	}

	counts := map[string]int{}
	for _, l := range logs {
		switch {
		case l.IsCompliant == nil:
			// never evaluated, counts toward neither bucket
		case *l.IsCompliant:
			stats.CompliantLogs++
		default:
			stats.ViolationLogs++
		}
		for _, v := range l.Violations {
			counts[v.Rule]++
		}

		if l.Date == today {
			stats.LogsToday++
		}
		if t, err := time.Parse(dateLayout, l.Date); err == nil {
			if y, w := t.ISOWeek(); y == thisYear && w == thisWeek {
				stats.LogsThisWeek++
			}
			if strings.HasPrefix(l.Date, thisMonth) {
				stats.LogsThisMonth++
			}
		}
	}

	evaluated := stats.CompliantLogs + stats.ViolationLogs
	if evaluated > 0 {
		stats.ComplianceRate = roundTo(float64(stats.CompliantLogs)/float64(evaluated)*100, 1)
	}

	for rule, n := range counts {
		stats.TopViolations = append(stats.TopViolations, ViolationCount{Rule: rule, Count: n})
	}
	sort.Slice(stats.TopViolations, func(i, j int) bool {
		a, b := stats.TopViolations[i], stats.TopViolations[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Rule < b.Rule
	})
	if len(stats.TopViolations) > maxTopViolations {
		stats.TopViolations = stats.TopViolations[:maxTopViolations]
	}
	return stats, nil
}

func (s *StatsService) resolveWindow(p StatsParams) (start, end string, err error) {
	if p.StartDate != "" || p.EndDate != "" {
		if _, err := time.Parse(dateLayout, p.StartDate); err != nil {
			return "", "", fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrValidation)
		}
		if _, err := time.Parse(dateLayout, p.EndDate); err != nil {
			return "", "", fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrValidation)
		}
		if p.StartDate > p.EndDate {
			return "", "", fmt.Errorf("%w: startDate must not be after endDate", ErrValidation)
		}
		return p.StartDate, p.EndDate, nil
	}

	// Unrecognized periods fall back to the default window rather than
	// failing the request.
	period := p.PeriodDays
	switch period {
	case 7, 30, 90:
	default:
		period = defaultStatsPeriodDays
	}
	endT := s.now().UTC()
	startT := endT.AddDate(0, 0, -period)
	return startT.Format(dateLayout), endT.Format(dateLayout), nil
}

// isoWeekLabel renders a date's ISO week as YYYY-WNN; empty on bad input.
func isoWeekLabel(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	y, w := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", y, w)
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
