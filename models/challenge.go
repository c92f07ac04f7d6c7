package models

import "time"

// Challenge is an entry of the shared challenge catalog.
type Challenge struct {
	ChallengeID     int64      `db:"challenge_id" json:"challenge_id"`
	ChallengeName   string     `db:"challenge_name" json:"challenge_name"`
	Description     string     `db:"description" json:"description,omitempty"`
	Difficulty      Difficulty `db:"difficulty" json:"difficulty,omitempty"`
	DurationDays    int        `db:"duration_days" json:"duration_days"`
	Category        string     `db:"category" json:"category,omitempty"`
	Reward          string     `db:"reward" json:"reward,omitempty"`
	MaxParticipants int        `db:"max_participants" json:"max_participants"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`

	// StartDate and EndDate are optional calendar dates ("2006-01-02").
	StartDate string `db:"start_date" json:"start_date,omitempty"`
	EndDate   string `db:"end_date" json:"end_date,omitempty"`
}

// TableName returns the name of the database table
// associated with the Challenge model.
func (c Challenge) TableName() string {
	return "challenges"
}

// UserChallenge is the enrollment of a user in a challenge.
// A user can be enrolled in a given challenge at most once.
type UserChallenge struct {
	UserChallengeID int64           `db:"user_challenge_id" json:"user_challenge_id"`
	UserID          int64           `db:"user_id" json:"user_id"`
	ChallengeID     int64           `db:"challenge_id" json:"challenge_id"`
	Progress        int             `db:"progress" json:"progress"`
	Status          ChallengeStatus `db:"status" json:"status"`
	StartedAt       time.Time       `db:"started_at" json:"started_at"`
	CompletedAt     *time.Time      `db:"completed_at" json:"completed_at,omitempty"`

	// ChallengeName is joined from the catalog on listing.
	ChallengeName string `db:"challenge_name" json:"challenge_name,omitempty"`
}

// TableName returns the name of the database table
// associated with the UserChallenge model.
func (u UserChallenge) TableName() string {
	return "user_challenges"
}
