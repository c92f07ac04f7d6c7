package models

import (
	"strconv"
	"strings"
	"time"
)

// MoodEntry is a single mood check-in of a user.
//
// MoodLevel is kept as free text: it is expected to hold an integer on a
// 1..10 scale, but older entries may contain labels, so every numeric
// computation must tolerate non-numeric values.
type MoodEntry struct {
	EntryID          int64       `db:"entry_id" json:"entry_id"`
	UserID           int64       `db:"user_id" json:"user_id"`
	MoodLevel        string      `db:"mood_level" json:"mood_level"`
	EmotionalContext string      `db:"emotional_context" json:"emotional_context,omitempty"`
	Notes            string      `db:"notes" json:"notes,omitempty"`
	Activities       string      `db:"activities" json:"activities,omitempty"`
	EnergyLevel      EnergyLevel `db:"energy_level" json:"energy_level,omitempty"`
	Timestamp        time.Time   `db:"timestamp" json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the MoodEntry model.
func (m MoodEntry) TableName() string {
	return "mood_entries"
}

// IntLevel parses MoodLevel as an integer.
// ok is false for labels and other non-integer values.
func (m MoodEntry) IntLevel() (level int, ok bool) {
	level, err := strconv.Atoi(strings.TrimSpace(m.MoodLevel))
	if err != nil {
		return 0, false
	}
	return level, true
}

// FloatLevel parses MoodLevel as a real number, yielding 0 for
// non-numeric values.
func (m MoodEntry) FloatLevel() float64 {
	level, err := strconv.ParseFloat(strings.TrimSpace(m.MoodLevel), 64)
	if err != nil {
		return 0
	}
	return level
}

// Day returns the UTC calendar date of the entry in "2006-01-02" form.
func (m MoodEntry) Day() string {
	return m.Timestamp.UTC().Format(DateLayout)
}
