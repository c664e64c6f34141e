package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"quizforge/internal/models"
)

// ErrDuplicateEmail maps the sqlite unique-constraint violation so callers
// don't inspect driver error strings.
var ErrDuplicateEmail = errors.New("email already registered")

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

var _ Users = (*UserSQLite)(nil)

// COALESCE applies the documented default (0) for rows written before the
// progress columns existed; defaulting lives here at the store boundary, not
// in handlers.
const (
	insertUserSQL = `
		INSERT INTO users (email, username, password_hash, xp, quizzes_taken, accuracy, streak)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	selectUserByEmailSQL = `
		SELECT email, username, password_hash,
		       COALESCE(xp, 0), COALESCE(quizzes_taken, 0), COALESCE(accuracy, 0), COALESCE(streak, 0)
		FROM users WHERE email = ?
	`

	updateProgressSQL = `
		UPDATE users SET xp = ?, quizzes_taken = ?, accuracy = ? WHERE email = ?
	`

	selectAllUsersSQL = `
		SELECT email, username,
		       COALESCE(xp, 0), COALESCE(quizzes_taken, 0), COALESCE(accuracy, 0), COALESCE(streak, 0)
		FROM users ORDER BY rowid
	`
)

// Create inserts a new account row.
func (r *UserSQLite) Create(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.Email, u.Username, u.PasswordHash, u.XP, u.QuizzesTaken, u.Accuracy, u.Streak)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByEmailSQL, email).Scan(
		&u.Email, &u.Username, &u.PasswordHash,
		&u.XP, &u.QuizzesTaken, &u.Accuracy, &u.Streak)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return &u, nil
}

// UpdateProgress writes the three progress fields for one user.
func (r *UserSQLite) UpdateProgress(ctx context.Context, email string, xp, quizzesTaken int, accuracy float64) error {
	res, err := r.db.ExecContext(ctx, updateProgressSQL, xp, quizzesTaken, accuracy, email)
	if err != nil {
		return fmt.Errorf("update progress for %q: %w", email, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListAll returns every user in store order (rowid), without password hashes.
func (r *UserSQLite) ListAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectAllUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select all users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Email, &u.Username, &u.XP, &u.QuizzesTaken, &u.Accuracy, &u.Streak); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}
