package models

import "time"

// Habit is a recurring activity tracked by a single user.
//
// StreakCount is owned by the streak operations (increment / reset) and is
// never written by a regular habit update. A habit removed through the
// normal flow keeps its row and only flips IsActive to false.
type Habit struct {
	HabitID     int64     `db:"habit_id" json:"habit_id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	HabitName   string    `db:"habit_name" json:"habit_name"`
	Description string    `db:"description" json:"description,omitempty"`
	Category    string    `db:"category" json:"category,omitempty"`
	Frequency   Frequency `db:"frequency" json:"frequency"`
	StreakCount int       `db:"streak_count" json:"streak_count"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Habit model.
func (h Habit) TableName() string {
	return "habits"
}

// HabitCompletion is the proof that a habit was done on a calendar day.
// At most one completion exists per (HabitID, CompletionDate).
type HabitCompletion struct {
	TrackingID int64 `db:"tracking_id" json:"tracking_id"`
	HabitID    int64 `db:"habit_id" json:"habit_id"`

	// CompletionDate is the UTC calendar date in "2006-01-02" form.
	CompletionDate string    `db:"completion_date" json:"completion_date"`
	IsCompleted    bool      `db:"is_completed" json:"is_completed"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// TableName returns the name of the database table
// associated with the HabitCompletion model.
func (c HabitCompletion) TableName() string {
	return "habit_tracking"
}
