package service

import (
	"context"
	"time"

	"driverlogs/internal/models"
	"driverlogs/internal/repository"
)

// backfillLookbackDays bounds how far back the worker scans; older logs
// are considered settled.
const backfillLookbackDays = 7

// BackfillService periodically geocodes duty statuses that name a location
// but carry no coordinates, then recomputes and saves the affected logs.
type BackfillService struct {
	logRepo repository.LogRepo
	logs    Logs
}

func NewBackfillService(logRepo repository.LogRepo, logs Logs) *BackfillService {
	return &BackfillService{logRepo: logRepo, logs: logs}
}

// Run ticks at the given interval until ctx is canceled.
func (s *BackfillService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.sweep(ctx, now)
		}
	}
}

// sweep runs one pass over recent logs. Failures on individual logs are
// skipped; the next tick retries them.
func (s *BackfillService) sweep(ctx context.Context, now time.Time) {
	from := now.UTC().AddDate(0, 0, -backfillLookbackDays).Format(dateLayout)
	logs, err := s.logRepo.List(ctx, "", from, "")
	if err != nil {
		return
	}
	for _, l := range logs {
		if !hasMissingCoordinates(l) {
			continue
		}
		// Update geocodes missing coordinates and recomputes derived fields.
		if _, err := s.logs.Update(ctx, l); err != nil {
			continue
		}
	}
}

func hasMissingCoordinates(l models.DailyLog) bool {
	for _, ds := range l.DutyStatuses {
		if ds.Location != "" && ds.Coordinates == nil {
			return true
		}
	}
	return false
}
