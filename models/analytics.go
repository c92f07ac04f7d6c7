package models

// OverviewStats summarizes a set of mood entries.
// Count covers every entry, the numeric fields only integer mood levels.
type OverviewStats struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Max   int     `json:"max"`
	Min   int     `json:"min"`
}

// Bucket is a labelled counter used by the distribution views.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DailyAverage is the mean mood level of one UTC calendar day.
type DailyAverage struct {
	Date    string  `json:"date"`
	Average float64 `json:"average"`
}

// HabitRate pairs an active habit with its completion rate in percent.
type HabitRate struct {
	HabitID   int64   `json:"habit_id"`
	HabitName string  `json:"habit_name"`
	Rate      float64 `json:"rate"`
}

// Dashboard is everything the overview screen shows for a user.
type Dashboard struct {
	UserID               int64          `json:"user_id"`
	Overview             OverviewStats  `json:"overview"`
	MoodDistribution     []Bucket       `json:"mood_distribution"`
	DailyMoodTrend       []DailyAverage `json:"daily_mood_trend"`
	HabitCompletion      []HabitRate    `json:"habit_completion"`
	EnergyLevels         []Bucket       `json:"energy_levels"`
	EmotionalContexts    []Bucket       `json:"emotional_contexts"`
	CompletionWindowDays int            `json:"completion_window_days"`
}
