package models

// Frequency defines how often a habit is meant to be performed.
// The set of values is closed and mirrored by a CHECK constraint in the
// habits table.
type Frequency string

const (
	// FrequencyDaily is a habit expected once per calendar day.
	FrequencyDaily Frequency = "daily"

	// FrequencyWeekly is a habit expected once per week.
	FrequencyWeekly Frequency = "weekly"

	// FrequencyMonthly is a habit expected once per month.
	FrequencyMonthly Frequency = "monthly"
)

// Frequencies lists every accepted Frequency in presentation order.
var Frequencies = []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly}

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// PeriodDays is the length in days of one frequency period.
func (f Frequency) PeriodDays() int {
	switch f {
	case FrequencyWeekly:
		return 7
	case FrequencyMonthly:
		return 30
	default:
		return 1
	}
}

// EnergyLevel is the self-reported energy attached to a mood entry.
// An empty EnergyLevel means "not reported" and is stored as NULL.
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// EnergyLevels lists the fixed energy buckets in ascending order.
var EnergyLevels = []EnergyLevel{EnergyLow, EnergyMedium, EnergyHigh}

// Valid reports whether e is a known level. The empty level is not valid,
// callers decide separately whether "not reported" is acceptable.
func (e EnergyLevel) Valid() bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}

// Difficulty grades a challenge from the catalog.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ChallengeStatus is the lifecycle state of a user's challenge enrollment.
type ChallengeStatus string

const (
	ChallengeActive    ChallengeStatus = "active"
	ChallengeCompleted ChallengeStatus = "completed"
	ChallengeAbandoned ChallengeStatus = "abandoned"
)

// Valid reports whether s is a known enrollment status.
func (s ChallengeStatus) Valid() bool {
	switch s {
	case ChallengeActive, ChallengeCompleted, ChallengeAbandoned:
		return true
	}
	return false
}
