package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"quizforge/internal/models"
	"quizforge/internal/repository"

	"github.com/google/uuid"
)

// XP reward per difficulty tier. Unrecognized tiers fall back to the easy
// reward, matching the lookup the clients rely on.
const (
	xpEasy   = 50
	xpMedium = 70
	xpHard   = 100
)

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// ProgressService owns the running XP/accuracy totals and the attempt history.
type ProgressService struct {
	users    repository.Users
	attempts repository.Attempts
}

func NewProgressService(users repository.Users, attempts repository.Attempts) *ProgressService {
	return &ProgressService{users: users, attempts: attempts}
}

// rewardFor maps a difficulty tier to its XP gain, case-insensitively.
func rewardFor(difficulty string) int {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case "medium":
		return xpMedium
	case "hard":
		return xpHard
	default:
		return xpEasy
	}
}

// SubmitResult applies one quiz result to the caller's record and returns the
// new XP total. Accuracy is an incremental mean over per-quiz scores:
// (old_accuracy*old_quizzes + score) / (old_quizzes+1). The read-modify-write
// is not serialized per user; concurrent submissions are last-write-wins.
func (s *ProgressService) SubmitResult(ctx context.Context, email, difficulty string, score int) (int, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if u == nil {
		return 0, ErrUserNotFound
	}

	xpGain := rewardFor(difficulty)
	newXP := u.XP + xpGain
	newQuizzes := u.QuizzesTaken + 1
	newAccuracy := (u.Accuracy*float64(u.QuizzesTaken) + float64(score)) / float64(newQuizzes)

	if err := s.users.UpdateProgress(ctx, email, newXP, newQuizzes, newAccuracy); err != nil {
		return 0, err
	}

	// The attempt log is best-effort; the XP update already landed.
	_ = s.attempts.Append(ctx, models.QuizAttempt{
		ID:         uuid.NewString(),
		Email:      email,
		Difficulty: difficulty,
		Score:      score,
		XPGain:     xpGain,
		OccurredAt: time.Now().UTC(),
	})

	return newXP, nil
}

// Profile returns the caller's own record with store-level defaults applied.
func (s *ProgressService) Profile(ctx context.Context, email string) (models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrUserNotFound
	}
	return *u, nil
}

// History lists the caller's attempts newest-first within the filter window.
func (s *ProgressService) History(ctx context.Context, email string, f AttemptFilter) ([]models.QuizAttempt, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, errInvalidTimeRange
	}
	return s.attempts.ListByEmail(ctx, email, from, to)
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
