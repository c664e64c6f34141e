package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quizforge/internal/models"
	"quizforge/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows. Handlers map these to soft failures.
var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrInvalidToken  = errors.New("invalid token")
)

// AuthService handles signup, login, and token parsing.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

func NewAuthService(users repository.Users, signingKey string) *AuthService {
	return &AuthService{users: users, signingKey: []byte(signingKey)}
}

// Claims is the JWT payload. Tokens carry no expiry: once issued they stay
// valid until the signing key changes. Known limitation, kept as-is.
type Claims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	Username string `json:"username"`
}

// SignUp hashes the password and creates the account. Returns ErrEmailTaken
// if the email already has a record; the unique constraint on email backs up
// the existence check if two signups race.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) error {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	err = s.users.Create(ctx, models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return ErrEmailTaken
	}
	return err
}

// Login validates credentials and returns a signed token embedding email and
// username.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrWrongPassword
	}

	return s.issueToken(u.Email, u.Username)
}

// ParseToken verifies the signature and returns the embedded identity.
// Verification is signature-only; no expiry claim is set or checked.
func (s *AuthService) ParseToken(accessToken string) (Identity, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	return Identity{Email: claims.Email, Username: claims.Username}, nil
}

func (s *AuthService) issueToken(email, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email:    email,
		Username: username,
	})
	return token.SignedString(s.signingKey)
}

func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
