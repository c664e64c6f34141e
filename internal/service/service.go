package service

import (
	"context"
	"time"

	"quizforge/internal/genai"
	"quizforge/internal/models"
	"quizforge/internal/repository"
)

// Identity is the verified claim set carried by a bearer token.
type Identity struct {
	Email    string
	Username string
}

// AttemptFilter bounds a history query; zero times mean unbounded.
type AttemptFilter struct {
	From time.Time // inclusive
	To   time.Time // inclusive
}

type Authorization interface {
	SignUp(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (Identity, error)
}

// QuizGen turns a topic/difficulty/count request into generated questions.
type QuizGen interface {
	Generate(ctx context.Context, topic, difficulty string, numQuestions int) (models.Quiz, error)
}

// Progress covers per-user XP accounting, the profile view, and the attempt
// history.
type Progress interface {
	SubmitResult(ctx context.Context, email, difficulty string, score int) (int, error)
	Profile(ctx context.Context, email string) (models.User, error)
	History(ctx context.Context, email string, f AttemptFilter) ([]models.QuizAttempt, error)
}

// Leaderboard exposes the ranked standings of all users.
type Leaderboard interface {
	Standings(ctx context.Context) ([]models.LeaderboardEntry, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	QuizGen
	Progress
	Leaderboard
}

func NewService(repos *repository.Repository, gen genai.TextGenerator, jwtSecret string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, jwtSecret),
		QuizGen:       NewQuizService(gen),
		Progress:      NewProgressService(repos.Users, repos.Attempts),
		Leaderboard:   NewLeaderboardService(repos.Users),
	}
}
