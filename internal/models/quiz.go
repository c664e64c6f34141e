package models

import "time"

// Question is one generated multiple-choice question.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Quiz is the ephemeral payload returned by quiz generation.
// It is never persisted.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// QuizAttempt is a single append-only log entry recorded after a quiz
// submission.
type QuizAttempt struct {
	ID         string    `json:"id"`
	Email      string    `json:"-"`
	Difficulty string    `json:"difficulty"`
	Score      int       `json:"score"`
	XPGain     int       `json:"xp_gain"`
	OccurredAt time.Time `json:"occurred_at"`
}
