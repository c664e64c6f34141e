package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"quizforge/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockAttemptRepo(t *testing.T) (*AttemptSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewAttemptSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestAttemptSQLite_Append(t *testing.T) {
	t.Run("fills id and timestamp when empty", func(t *testing.T) {
		repo, mock, cleanup := newMockAttemptRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(insertAttemptSQL)).
			WithArgs(sqlmock.AnyArg(), "a@b.c", sqlmock.AnyArg(), "medium", 8, 70).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Append(context.Background(), models.QuizAttempt{
			Email:      "a@b.c",
			Difficulty: "Medium",
			Score:      8,
			XPGain:     70,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exec error is wrapped", func(t *testing.T) {
		repo, mock, cleanup := newMockAttemptRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(insertAttemptSQL)).
			WillReturnError(errors.New("disk full"))

		err := repo.Append(context.Background(), models.QuizAttempt{ID: "x1", Email: "a@b.c"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestAttemptSQLite_ListByEmail(t *testing.T) {
	occurred := time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)
	cols := []string{"id", "email", "occurred_at", "difficulty", "score", "xp_gain"}

	t.Run("no bounds", func(t *testing.T) {
		repo, mock, cleanup := newMockAttemptRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows(cols).
			AddRow("a2", "a@b.c", occurred.Add(time.Hour), "hard", 9, 100).
			AddRow("a1", "a@b.c", occurred, "easy", 3, 50)
		mock.ExpectQuery("SELECT id, email, occurred_at, difficulty, score, xp_gain FROM quiz_attempts WHERE email = \\? ORDER BY occurred_at DESC").
			WithArgs("a@b.c").
			WillReturnRows(rows)

		attempts, err := repo.ListByEmail(context.Background(), "a@b.c", time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(attempts) != 2 || attempts[0].ID != "a2" {
			t.Fatalf("unexpected attempts: %+v", attempts)
		}
	})

	t.Run("both bounds", func(t *testing.T) {
		repo, mock, cleanup := newMockAttemptRepo(t)
		defer cleanup()

		from := occurred.Add(-24 * time.Hour)
		to := occurred.Add(24 * time.Hour)

		mock.ExpectQuery("SELECT .+ FROM quiz_attempts WHERE email = \\? AND occurred_at >= \\? AND occurred_at <= \\? ORDER BY occurred_at DESC").
			WithArgs("a@b.c", from, to).
			WillReturnRows(sqlmock.NewRows(cols))

		attempts, err := repo.ListByEmail(context.Background(), "a@b.c", from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(attempts) != 0 {
			t.Fatalf("expected no attempts, got %d", len(attempts))
		}
	})
}
