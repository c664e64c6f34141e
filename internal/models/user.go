package models

// User is the persistent account record, keyed by email.
// The password hash is never serialized.
type User struct {
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"`
	XP           int     `json:"xp"`
	QuizzesTaken int     `json:"quizzes_taken"`
	Accuracy     float64 `json:"accuracy"`
	Streak       int     `json:"streak"`
}

// LeaderboardEntry is a user's public progress row plus its 1-based rank
// after sorting by XP descending.
type LeaderboardEntry struct {
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	XP           int     `json:"xp"`
	QuizzesTaken int     `json:"quizzes_taken"`
	Accuracy     float64 `json:"accuracy"`
	Streak       int     `json:"streak"`
	Rank         int     `json:"rank"`
}
