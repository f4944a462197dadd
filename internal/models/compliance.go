package models

// HOS rule identifiers reported in violations.
const (
	Rule11HourDrivingLimit = "11_HOUR_DRIVING_LIMIT"
	Rule14HourWindow       = "14_HOUR_WINDOW"
	Rule10HourRest         = "10_HOUR_REST"
)

// SeverityCritical is the only severity the simplified rule set emits.
const SeverityCritical = "critical"

// WarningTotalHoursMismatch flags a day whose intervals do not sum to 24h.
const WarningTotalHoursMismatch = "TOTAL_HOURS_MISMATCH"

// HoursSummary holds accumulated hours per duty category plus the grand
// total. Total is accumulated per event and rounded independently of the
// category buckets, so it may differ from their rounded sum by a cent.
type HoursSummary struct {
	OffDuty float64 `json:"offDuty"`
	Sleeper float64 `json:"sleeper"`
	Driving float64 `json:"driving"`
	OnDuty  float64 `json:"onDuty"`
	Total   float64 `json:"total"`
}

// Violation is a single broken HOS rule.
type Violation struct {
	Rule        string `json:"rule"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// Warning is a data-quality note that never affects compliance.
type Warning struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ComplianceResult is the verdict for one day's duty statuses.
type ComplianceResult struct {
	IsCompliant bool         `json:"isCompliant"`
	Hours       HoursSummary `json:"hours"`
	Violations  []Violation  `json:"violations"`
	Warnings    []Warning    `json:"warnings"`
}
