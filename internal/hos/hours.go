package hos

import "driverlogs/internal/models"

// ComputeHours sums duty-interval durations per category across the given
// statuses. Unrecognized status strings are skipped for the category
// buckets but still count toward Total. Buckets accumulate the 2-decimal
// interval durations and every summary value is rounded once more after
// full accumulation; Total accumulates independently of the buckets.
func ComputeHours(statuses []models.DutyStatus) models.HoursSummary {
	var offDuty, sleeper, driving, onDuty, total float64

	buckets := map[models.DutyCategory]*float64{
		models.CategoryOffDuty: &offDuty,
		models.CategorySleeper: &sleeper,
		models.CategoryDriving: &driving,
		models.CategoryOnDuty:  &onDuty,
	}

	for _, ds := range statuses {
		d := DurationHours(ds.Window())

		if cat, ok := models.ParseDutyCategory(ds.Status); ok {
			*buckets[cat] += d
		}
		total += d
	}

	return models.HoursSummary{
		OffDuty: round2(offDuty),
		Sleeper: round2(sleeper),
		Driving: round2(driving),
		OnDuty:  round2(onDuty),
		Total:   round2(total),
	}
}
