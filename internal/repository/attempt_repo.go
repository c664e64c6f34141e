package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"quizforge/internal/models"

	"github.com/google/uuid"
)

type AttemptSQLite struct {
	db *sql.DB
}

func NewAttemptSQLite(db *sql.DB) *AttemptSQLite {
	return &AttemptSQLite{db: db}
}

var _ Attempts = (*AttemptSQLite)(nil)

const insertAttemptSQL = `
	INSERT INTO quiz_attempts (id, email, occurred_at, difficulty, score, xp_gain)
	VALUES (?, ?, ?, ?, ?, ?)
`

// Append inserts one attempt. If ID or OccurredAt are empty, they're set.
func (r *AttemptSQLite) Append(ctx context.Context, a models.QuizAttempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now().UTC()
	} else {
		a.OccurredAt = a.OccurredAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertAttemptSQL,
		a.ID, a.Email, a.OccurredAt, strings.ToLower(strings.TrimSpace(a.Difficulty)), a.Score, a.XPGain)
	if err != nil {
		return fmt.Errorf("insert attempt %q: %w", a.ID, err)
	}
	return nil
}

// ListByEmail returns one user's attempts newest-first, optionally bounded by
// [from, to] (inclusive; zero time means unbounded).
func (r *AttemptSQLite) ListByEmail(ctx context.Context, email string, from, to time.Time) ([]models.QuizAttempt, error) {
	conds := []string{"email = ?"}
	args := []any{email}

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}

	q := `SELECT id, email, occurred_at, difficulty, score, xp_gain FROM quiz_attempts` +
		" WHERE " + strings.Join(conds, " AND ") +
		" ORDER BY occurred_at DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select attempts for %q: %w", email, err)
	}
	defer rows.Close()

	attempts := make([]models.QuizAttempt, 0, 16)
	for rows.Next() {
		var a models.QuizAttempt
		if err := rows.Scan(&a.ID, &a.Email, &a.OccurredAt, &a.Difficulty, &a.Score, &a.XPGain); err != nil {
			return nil, fmt.Errorf("scan attempt row: %w", err)
		}
		a.OccurredAt = a.OccurredAt.UTC()
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempt rows: %w", err)
	}
	return attempts, nil
}
