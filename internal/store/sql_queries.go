package store

import (
	sq "github.com/Masterminds/squirrel"
)

// builder renders dynamic queries with positional "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const (
	userColumns = `user_id, username, email, password_hash,
		COALESCE(first_name, '') AS first_name,
		COALESCE(last_name, '') AS last_name,
		created_at, updated_at`

	createUser = `INSERT INTO users (username, email, password_hash, first_name, last_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?);`

	usernameExists = `SELECT EXISTS(SELECT 1 FROM users WHERE username = ?);`

	emailExists = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?);`

	emailUsedByOther = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ? AND user_id <> ?);`

	findUserByID = `SELECT ` + userColumns + ` FROM users WHERE user_id = ?;`

	findUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = ?;`

	findUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = ?;`

	updateUserProfile = `UPDATE users
		SET first_name = ?, last_name = ?, email = ?, updated_at = ?
		WHERE user_id = ?;`

	updateUserPassword = `UPDATE users SET password_hash = ?, updated_at = ? WHERE user_id = ?;`

	deleteUser = `DELETE FROM users WHERE user_id = ?;`
)

var habitColumns = []string{
	"habit_id",
	"user_id",
	"habit_name",
	"COALESCE(description, '') AS description",
	"COALESCE(category, '') AS category",
	"frequency",
	"streak_count",
	"is_active",
	"created_at",
	"updated_at",
}

const (
	createHabit = `INSERT INTO habits (user_id, habit_name, description, category, frequency, streak_count, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 0, 1, ?, ?);`

	updateHabit = `UPDATE habits
		SET habit_name = ?, description = ?, category = ?, frequency = ?, updated_at = ?
		WHERE habit_id = ?;`

	softDeleteHabit = `UPDATE habits SET is_active = 0, updated_at = ? WHERE habit_id = ?;`

	hardDeleteHabit = `DELETE FROM habits WHERE habit_id = ?;`

	completionExists = `SELECT EXISTS(
		SELECT 1 FROM habit_tracking WHERE habit_id = ? AND completion_date = ?);`

	createCompletion = `INSERT INTO habit_tracking (habit_id, completion_date, is_completed, created_at)
		VALUES (?, ?, 1, ?);`

	incrementStreak = `UPDATE habits SET streak_count = streak_count + 1, updated_at = ? WHERE habit_id = ?;`

	resetStreak = `UPDATE habits SET streak_count = 0, updated_at = ? WHERE habit_id = ?;`

	countCompletions = `SELECT COUNT(*) FROM habit_tracking
		WHERE habit_id = ? AND is_completed = 1 AND completion_date BETWEEN ? AND ?;`
)

var completionColumns = []string{"tracking_id", "habit_id", "completion_date", "is_completed", "created_at"}

var moodColumns = []string{
	"entry_id",
	"user_id",
	"mood_level",
	"COALESCE(emotional_context, '') AS emotional_context",
	"COALESCE(notes, '') AS notes",
	"COALESCE(activities, '') AS activities",
	"COALESCE(energy_level, '') AS energy_level",
	"timestamp",
}

const (
	createMoodEntry = `INSERT INTO mood_entries (user_id, mood_level, emotional_context, notes, activities, energy_level, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?);`

	updateMoodEntry = `UPDATE mood_entries
		SET mood_level = ?, emotional_context = ?, notes = ?, activities = ?, energy_level = ?
		WHERE entry_id = ?;`

	deleteMoodEntry = `DELETE FROM mood_entries WHERE entry_id = ?;`

	// non-numeric levels cast to 0, as SQLite does
	averageMood = `SELECT AVG(CAST(mood_level AS REAL)) FROM mood_entries
		WHERE user_id = ? AND timestamp >= ? AND timestamp <= ?;`

	countMoodEntries = `SELECT COUNT(*) FROM mood_entries
		WHERE user_id = ? AND timestamp >= ? AND timestamp <= ?;`

	mostCommonMood = `SELECT mood_level FROM mood_entries
		WHERE user_id = ? AND timestamp >= ? AND timestamp <= ?
		GROUP BY mood_level
		ORDER BY COUNT(*) DESC, mood_level ASC
		LIMIT 1;`
)

var challengeColumns = []string{
	"challenge_id",
	"challenge_name",
	"COALESCE(description, '') AS description",
	"COALESCE(difficulty, '') AS difficulty",
	"duration_days",
	"COALESCE(category, '') AS category",
	"COALESCE(reward, '') AS reward",
	"max_participants",
	"created_at",
	"COALESCE(start_date, '') AS start_date",
	"COALESCE(end_date, '') AS end_date",
}

const (
	createChallenge = `INSERT INTO challenges (challenge_name, description, difficulty, duration_days, category, reward, max_participants, created_at, start_date, end_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	challengeCapacity = `SELECT max_participants FROM challenges WHERE challenge_id = ?;`

	enrollmentExists = `SELECT EXISTS(SELECT 1 FROM user_challenges WHERE user_id = ? AND challenge_id = ?);`

	countParticipants = `SELECT COUNT(*) FROM user_challenges WHERE challenge_id = ? AND status <> 'abandoned';`

	enrollUser = `INSERT INTO user_challenges (user_id, challenge_id, progress, status, started_at)
		VALUES (?, ?, 0, 'active', ?);`

	updateChallengeProgress = `UPDATE user_challenges
		SET progress = ?, status = ?, completed_at = ?
		WHERE user_id = ? AND challenge_id = ?;`
)

var userChallengeColumns = []string{
	"uc.user_challenge_id AS user_challenge_id",
	"uc.user_id AS user_id",
	"uc.challenge_id AS challenge_id",
	"uc.progress AS progress",
	"uc.status AS status",
	"uc.started_at AS started_at",
	"uc.completed_at AS completed_at",
	"c.challenge_name AS challenge_name",
}

// selectUserChallenges is the base of every enrollment read.
func selectUserChallenges() sq.SelectBuilder {
	return builder.Select(userChallengeColumns...).
		From("user_challenges uc").
		Join("challenges c ON c.challenge_id = uc.challenge_id")
}
