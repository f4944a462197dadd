package models

import "strings"

// DutyCategory is the closed set of duty-status categories a driver can log.
type DutyCategory string

const (
	CategoryOffDuty DutyCategory = "off-duty"
	CategorySleeper DutyCategory = "sleeper"
	CategoryDriving DutyCategory = "driving"
	CategoryOnDuty  DutyCategory = "on-duty"
)

// String returns the canonical lowercase form of the category.
func (c DutyCategory) String() string {
	return string(c)
}

// IsValid returns true if the category is a recognized value.
func (c DutyCategory) IsValid() bool {
	switch c {
	case CategoryOffDuty, CategorySleeper, CategoryDriving, CategoryOnDuty:
		return true
	}
	return false
}

// ParseDutyCategory normalizes a raw status string (case-insensitive) into a
// DutyCategory. Unrecognized strings return ok=false; callers decide whether
// to ignore or reject them.
func ParseDutyCategory(s string) (DutyCategory, bool) {
	c := DutyCategory(strings.ToLower(strings.TrimSpace(s)))
	return c, c.IsValid()
}

// Duty status time-of-day bounds. EndHour 24 denotes end-of-day midnight.
const (
	DefaultEndHour   = 24
	DefaultEndMinute = 0
)

// DutyStatus is one logged interval of a driver's operational day.
// EndHour/EndMinute are pointers so that omitted values can be told apart
// from zero and defaulted to end-of-day midnight.
type DutyStatus struct {
	Status       string      `json:"status"`
	StartHour    int         `json:"startHour"`
	StartMinute  int         `json:"startMinute"`
	EndHour      *int        `json:"endHour,omitempty"`
	EndMinute    *int        `json:"endMinute,omitempty"`
	Location     string      `json:"location,omitempty"`
	Coordinates  *Coordinate `json:"coordinates,omitempty"`
	AutoGeocoded bool        `json:"autoGeocoded,omitempty"`
}

// Window returns the interval endpoints with absent end fields filled in
// (endHour 24, endMinute 0). This is the single normalization point for
// missing-field defaults.
func (d DutyStatus) Window() (startHour, startMinute, endHour, endMinute int) {
	startHour, startMinute = d.StartHour, d.StartMinute
	endHour, endMinute = DefaultEndHour, DefaultEndMinute
	if d.EndHour != nil {
		endHour = *d.EndHour
	}
	if d.EndMinute != nil {
		endMinute = *d.EndMinute
	}
	return startHour, startMinute, endHour, endMinute
}
