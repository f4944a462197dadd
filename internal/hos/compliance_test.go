package hos

import (
	"testing"

	"driverlogs/internal/models"
)

func TestCheckCompliance_CompliantFullDay(t *testing.T) {
	res := CheckCompliance(fullDay())

	if !res.IsCompliant {
		t.Fatalf("expected compliant day, got violations %v", res.Violations)
	}
	if len(res.Violations) != 0 {
		t.Fatalf("violations = %v, want none", res.Violations)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("warnings = %v, want none for an exact 24h day", res.Warnings)
	}
	if res.Hours.Total != 24.0 {
		t.Fatalf("total = %v, want 24.0", res.Hours.Total)
	}
}

func TestCheckCompliance_ViolationOrderIsFixed(t *testing.T) {
	// 15h driving: breaks the driving limit, the on-duty window, and the
	// rest minimum all at once.
	res := CheckCompliance([]models.DutyStatus{
		status("driving", 0, 0, 15, 0),
		status("off-duty", 15, 0, 24, 0),
	})

	if res.IsCompliant {
		t.Fatalf("expected non-compliant day")
	}
	if len(res.Violations) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(res.Violations), res.Violations)
	}
	wantOrder := []string{
		models.Rule11HourDrivingLimit,
		models.Rule14HourWindow,
		models.Rule10HourRest,
	}
	for i, want := range wantOrder {
		if res.Violations[i].Rule != want {
			t.Fatalf("violation[%d] = %q, want %q", i, res.Violations[i].Rule, want)
		}
	}
}

func TestCheckCompliance_WarningsDoNotAffectCompliance(t *testing.T) {
	// 23h day: under-reported but no rule broken.
	res := CheckCompliance([]models.DutyStatus{
		status("off-duty", 0, 0, 12, 0),
		status("driving", 12, 0, 23, 0),
	})

	if !res.IsCompliant {
		t.Fatalf("warnings must not affect compliance: %v", res.Violations)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Type != models.WarningTotalHoursMismatch {
		t.Fatalf("expected a single TOTAL_HOURS_MISMATCH warning, got %v", res.Warnings)
	}
}

func TestCheckCompliance_EmptyDay(t *testing.T) {
	res := CheckCompliance(nil)

	if !res.IsCompliant {
		t.Fatalf("empty day must be trivially compliant")
	}
	if res.Hours.Total != 0.0 {
		t.Fatalf("total = %v, want 0.0", res.Hours.Total)
	}
	if len(res.Violations) != 0 {
		t.Fatalf("violations = %v, want empty", res.Violations)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Type != models.WarningTotalHoursMismatch {
		t.Fatalf("expected the mismatch warning, got %v", res.Warnings)
	}
	if res.Violations == nil || res.Warnings == nil {
		t.Fatalf("violations/warnings must serialize as arrays, not null")
	}
}

func TestCheckCompliance_MismatchEqualityIsExact(t *testing.T) {
	// 23h59m = 23.98h: any deviation from 24.0, however small, warns.
	res := CheckCompliance([]models.DutyStatus{
		status("off-duty", 0, 0, 23, 59),
	})
	if len(res.Warnings) != 1 {
		t.Fatalf("expected mismatch warning for 23.98h, got %v", res.Warnings)
	}
}

func TestCheckCompliance_Idempotent(t *testing.T) {
	day := []models.DutyStatus{
		status("driving", 0, 0, 12, 0),
		status("off-duty", 12, 0, 24, 0),
	}
	a := CheckCompliance(day)
	b := CheckCompliance(day)

	if a.IsCompliant != b.IsCompliant || a.Hours != b.Hours ||
		len(a.Violations) != len(b.Violations) || len(a.Warnings) != len(b.Warnings) {
		t.Fatalf("repeated calls differ: %+v vs %+v", a, b)
	}
	for i := range a.Violations {
		if a.Violations[i] != b.Violations[i] {
			t.Fatalf("violation %d differs: %+v vs %+v", i, a.Violations[i], b.Violations[i])
		}
	}
}
