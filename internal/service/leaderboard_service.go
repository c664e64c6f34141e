package service

import (
	"context"
	"sort"

	"quizforge/internal/models"
	"quizforge/internal/repository"
)

// LeaderboardService ranks every user by XP.
type LeaderboardService struct {
	users repository.Users
}

func NewLeaderboardService(users repository.Users) *LeaderboardService {
	return &LeaderboardService{users: users}
}

// Standings returns all users sorted descending by XP with a 1-based rank.
// The sort is stable, so ties keep their store read order.
func (s *LeaderboardService) Standings(ctx context.Context) ([]models.LeaderboardEntry, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, models.LeaderboardEntry{
			Email:        u.Email,
			Username:     u.Username,
			XP:           u.XP,
			QuizzesTaken: u.QuizzesTaken,
			Accuracy:     u.Accuracy,
			Streak:       u.Streak,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].XP > entries[j].XP
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
