package repository

import (
	"context"
	"database/sql"
	"time"

	"quizforge/internal/models"
	dbinit "quizforge/internal/repository/db"
)

// Users is the account store, keyed by unique email.
type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProgress(ctx context.Context, email string, xp, quizzesTaken int, accuracy float64) error
	ListAll(ctx context.Context) ([]models.User, error)
}

// Attempts is the append-only quiz submission log.
type Attempts interface {
	Append(ctx context.Context, a models.QuizAttempt) error
	ListByEmail(ctx context.Context, email string, from, to time.Time) ([]models.QuizAttempt, error)
}

type Repository struct {
	Users    Users
	Attempts Attempts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserSQLite(db),
		Attempts: NewAttemptSQLite(db),
	}
}

// InitDB re-exported so main wires through a single repository entry point.
func InitDB(path string) (*sql.DB, error) {
	return dbinit.InitDB(path)
}
