// Package hos derives duty-hour totals from a day's duty statuses and
// evaluates the simplified FMCSA rule set against them. Every function is
// pure: input in, result out, no I/O and no shared state, so the package is
// safe to call concurrently. Input validation is the caller's job; out-of
// range values produce numerically plausible output rather than errors.
package hos

import "math"

const minutesPerDay = 24 * 60

// DurationHours returns the elapsed hours between two times of day,
// rounded to 2 decimals. endHour 24 means midnight closing the same day;
// an end before the start means the interval crosses midnight into the
// next day.
func DurationHours(startHour, startMinute, endHour, endMinute int) float64 {
	startMinutes := startHour*60 + startMinute
	endMinutes := endHour*60 + endMinute

	if endMinutes < startMinutes {
		endMinutes += minutesPerDay
	}

	return round2(float64(endMinutes-startMinutes) / 60.0)
}

// round2 rounds to 2 decimal places, halves away from zero. The rounding
// rule is uniform across the package; see DESIGN.md for the tie-break
// discussion.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
