package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"quizforge/internal/models"
	"quizforge/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpErr  error
	loginToken string
	loginErr   error
	parseIdent service.Identity
	parseErr   error

	lastSignUpUsername string
	lastSignUpEmail    string
	lastSignUpPassword string
	lastLoginEmail     string
	lastLoginPassword  string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, email, password string) error {
	m.lastSignUpUsername = username
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpErr
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (string, error) {
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (service.Identity, error) {
	m.lastParseToken = token
	return m.parseIdent, m.parseErr
}

type mockQuizGen struct {
	quiz models.Quiz
	err  error

	lastTopic      string
	lastDifficulty string
	lastCount      int
}

func (m *mockQuizGen) Generate(ctx context.Context, topic, difficulty string, numQuestions int) (models.Quiz, error) {
	m.lastTopic = topic
	m.lastDifficulty = difficulty
	m.lastCount = numQuestions
	return m.quiz, m.err
}

type mockProgress struct {
	submitXP  int
	submitErr error

	profileUser models.User
	profileErr  error

	historyResp []models.QuizAttempt
	historyErr  error

	lastSubmitEmail      string
	lastSubmitDifficulty string
	lastSubmitScore      int
	lastProfileEmail     string
	lastHistoryEmail     string
	lastHistoryFrom      time.Time
	lastHistoryTo        time.Time
}

func (m *mockProgress) SubmitResult(ctx context.Context, email, difficulty string, score int) (int, error) {
	m.lastSubmitEmail = email
	m.lastSubmitDifficulty = difficulty
	m.lastSubmitScore = score
	return m.submitXP, m.submitErr
}

func (m *mockProgress) Profile(ctx context.Context, email string) (models.User, error) {
	m.lastProfileEmail = email
	return m.profileUser, m.profileErr
}

func (m *mockProgress) History(ctx context.Context, email string, f service.AttemptFilter) ([]models.QuizAttempt, error) {
	m.lastHistoryEmail = email
	m.lastHistoryFrom = f.From
	m.lastHistoryTo = f.To
	return m.historyResp, m.historyErr
}

type mockLeaderboard struct {
	entries []models.LeaderboardEntry
	err     error
}

func (m *mockLeaderboard) Standings(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return m.entries, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// formRequest builds an application/x-www-form-urlencoded POST.
func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
