package hos

import (
	"fmt"
	"strconv"

	"driverlogs/internal/models"
)

// Rule thresholds in hours. All comparisons are strict: exactly 11.0h of
// driving or exactly 10.0h of rest is still compliant.
const (
	drivingLimitHours = 11.0
	onDutyWindowHours = 14.0
	minRestHours      = 10.0
)

// Each check recomputes the hours summary from the raw statuses. That keeps
// the three rules independent and individually testable; the recompute is a
// linear pass over a small slice.

// CheckDrivingLimit applies the 11-hour driving limit.
func CheckDrivingLimit(statuses []models.DutyStatus) (bool, []models.Violation) {
	hours := ComputeHours(statuses)

	if hours.Driving > drivingLimitHours {
		return false, []models.Violation{{
			Rule:        models.Rule11HourDrivingLimit,
			Description: fmt.Sprintf("Driving time (%sh) exceeds 11-hour limit", formatHours(hours.Driving)),
			Severity:    models.SeverityCritical,
		}}
	}

	return true, nil
}

// CheckOnDutyWindow applies the 14-hour on-duty window. Only actively
// working time counts: driving plus on-duty, never sleeper or off-duty.
func CheckOnDutyWindow(statuses []models.DutyStatus) (bool, []models.Violation) {
	hours := ComputeHours(statuses)
	onDuty := hours.Driving + hours.OnDuty

	if onDuty > onDutyWindowHours {
		return false, []models.Violation{{
			Rule:        models.Rule14HourWindow,
			Description: fmt.Sprintf("On-duty time (%sh) exceeds 14-hour window", formatHours(onDuty)),
			Severity:    models.SeverityCritical,
		}}
	}

	return true, nil
}

// CheckRestRequirement applies the 10-hour rest minimum over off-duty plus
// sleeper time.
func CheckRestRequirement(statuses []models.DutyStatus) (bool, []models.Violation) {
	hours := ComputeHours(statuses)
	rest := hours.OffDuty + hours.Sleeper

	if rest < minRestHours {
		return false, []models.Violation{{
			Rule:        models.Rule10HourRest,
			Description: fmt.Sprintf("Rest time (%sh) is less than required 10 hours", formatHours(rest)),
			Severity:    models.SeverityCritical,
		}}
	}

	return true, nil
}

// formatHours renders an hour value without trailing zeros (11.25 → "11.25",
// 12.0 → "12").
func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
