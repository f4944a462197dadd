package hos

import (
	"fmt"

	"driverlogs/internal/models"
)

// fullDayHours is compared with exact float equality: a well-formed day's
// intervals sum to exactly 24.0, anything else earns a warning.
const fullDayHours = 24.0

// CheckCompliance runs every HOS rule against the day's statuses and
// returns the combined verdict. Violations keep the fixed rule order
// (driving limit, on-duty window, rest minimum). A total other than 24.0
// adds a warning but never affects compliance; an empty day is therefore
// trivially compliant, with the mismatch warning flagging it.
func CheckCompliance(statuses []models.DutyStatus) models.ComplianceResult {
	hours := ComputeHours(statuses)

	violations := []models.Violation{}
	warnings := []models.Warning{}

	for _, check := range []func([]models.DutyStatus) (bool, []models.Violation){
		CheckDrivingLimit,
		CheckOnDutyWindow,
		CheckRestRequirement,
	} {
		if _, v := check(statuses); len(v) > 0 {
			violations = append(violations, v...)
		}
	}

	if hours.Total != fullDayHours {
		warnings = append(warnings, models.Warning{
			Type:        models.WarningTotalHoursMismatch,
			Description: fmt.Sprintf("Total hours (%sh) should equal 24 hours", formatHours(hours.Total)),
		})
	}

	return models.ComplianceResult{
		IsCompliant: len(violations) == 0,
		Hours:       hours,
		Violations:  violations,
		Warnings:    warnings,
	}
}
