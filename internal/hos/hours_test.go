package hos

import (
	"testing"

	"driverlogs/internal/models"
)

func intp(v int) *int { return &v }

// status builds a duty status covering [startHour:startMinute, endHour:endMinute).
func status(s string, startHour, startMinute, endHour, endMinute int) models.DutyStatus {
	return models.DutyStatus{
		Status:      s,
		StartHour:   startHour,
		StartMinute: startMinute,
		EndHour:     intp(endHour),
		EndMinute:   intp(endMinute),
	}
}

// fullDay is a compliant 24-hour pattern: 10h rest, 3h on-duty, 11h driving.
func fullDay() []models.DutyStatus {
	return []models.DutyStatus{
		status("off-duty", 0, 0, 6, 0),
		status("on-duty", 6, 0, 7, 0),
		status("driving", 7, 0, 12, 0),
		status("on-duty", 12, 0, 13, 0),
		status("driving", 13, 0, 19, 0),
		status("on-duty", 19, 0, 20, 0),
		status("sleeper", 20, 0, 24, 0),
	}
}

func TestComputeHours_CategoryTotals(t *testing.T) {
	h := ComputeHours(fullDay())

	if h.OffDuty != 6.0 {
		t.Fatalf("offDuty = %v, want 6.0", h.OffDuty)
	}
	if h.Sleeper != 4.0 {
		t.Fatalf("sleeper = %v, want 4.0", h.Sleeper)
	}
	if h.Driving != 11.0 {
		t.Fatalf("driving = %v, want 11.0", h.Driving)
	}
	if h.OnDuty != 3.0 {
		t.Fatalf("onDuty = %v, want 3.0", h.OnDuty)
	}
	if h.Total != 24.0 {
		t.Fatalf("total = %v, want 24.0", h.Total)
	}
}

func TestComputeHours_StatusCaseInsensitive(t *testing.T) {
	h := ComputeHours([]models.DutyStatus{
		status("Driving", 0, 0, 5, 0),
		status("OFF-DUTY", 5, 0, 10, 0),
	})

	if h.Driving != 5.0 || h.OffDuty != 5.0 {
		t.Fatalf("case-insensitive parse failed: %+v", h)
	}
}

func TestComputeHours_UnknownStatusCountsTowardTotalOnly(t *testing.T) {
	h := ComputeHours([]models.DutyStatus{
		status("driving", 0, 0, 4, 0),
		status("yard-move", 4, 0, 6, 0),
	})

	if h.Driving != 4.0 {
		t.Fatalf("driving = %v, want 4.0", h.Driving)
	}
	if h.OffDuty != 0 || h.Sleeper != 0 || h.OnDuty != 0 {
		t.Fatalf("unknown status leaked into a bucket: %+v", h)
	}
	if h.Total != 6.0 {
		t.Fatalf("total = %v, want 6.0 (unknown status still counts)", h.Total)
	}
}

func TestComputeHours_MissingEndDefaultsToMidnight(t *testing.T) {
	h := ComputeHours([]models.DutyStatus{
		{Status: "off-duty", StartHour: 20}, // endHour/endMinute omitted
	})

	if h.OffDuty != 4.0 {
		t.Fatalf("offDuty = %v, want 4.0 (end defaults to 24:00)", h.OffDuty)
	}
}

func TestComputeHours_Empty(t *testing.T) {
	h := ComputeHours(nil)
	if h != (models.HoursSummary{}) {
		t.Fatalf("expected zero summary, got %+v", h)
	}
}

// Durations are rounded per event (DurationHours rounds to 2 decimals) and
// the rounded values are what accumulate, so three 20-minute driving
// intervals sum to 3×0.33 = 0.99, not a re-derived 1.0. Total accumulates
// the same per-event values independently of the buckets. Pinned behavior,
// not a bug to correct.
func TestComputeHours_AccumulatesRoundedDurations(t *testing.T) {
	h := ComputeHours([]models.DutyStatus{
		status("driving", 8, 0, 8, 20),
		status("driving", 9, 0, 9, 20),
		status("driving", 10, 0, 10, 20),
	})

	if h.Driving != 0.99 {
		t.Fatalf("driving = %v, want 0.99 (3 × rounded 0.33)", h.Driving)
	}
	if h.Total != 0.99 {
		t.Fatalf("total = %v, want 0.99", h.Total)
	}
}

func TestComputeHours_Idempotent(t *testing.T) {
	day := fullDay()
	if a, b := ComputeHours(day), ComputeHours(day); a != b {
		t.Fatalf("repeated calls differ: %+v vs %+v", a, b)
	}
}
