package service

import (
	"context"
	"errors"
	"testing"

	"quizforge/internal/models"
)

func TestLeaderboardService_SortsDescendingWithRanks(t *testing.T) {
	users := &mockUserRepo{
		ListAllFn: func() ([]models.User, error) {
			return []models.User{
				{Email: "c@x", Username: "carol", XP: 50},
				{Email: "a@x", Username: "alice", XP: 200, QuizzesTaken: 3, Accuracy: 7.5},
				{Email: "b@x", Username: "bob", XP: 120},
			}, nil
		},
	}
	svc := NewLeaderboardService(users)

	entries, err := svc.Standings(context.Background())
	if err != nil {
		t.Fatalf("Standings: %v", err)
	}

	wantOrder := []string{"alice", "bob", "carol"}
	if len(entries) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d", len(wantOrder), len(entries))
	}
	for i, want := range wantOrder {
		if entries[i].Username != want {
			t.Errorf("position %d: got %q, want %q", i, entries[i].Username, want)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("position %d: rank %d, want %d", i, entries[i].Rank, i+1)
		}
	}
	if entries[0].Accuracy != 7.5 || entries[0].QuizzesTaken != 3 {
		t.Errorf("progress fields not carried over: %+v", entries[0])
	}
}

func TestLeaderboardService_TiesKeepReadOrder(t *testing.T) {
	users := &mockUserRepo{
		ListAllFn: func() ([]models.User, error) {
			return []models.User{
				{Email: "first@x", Username: "first", XP: 100},
				{Email: "second@x", Username: "second", XP: 100},
				{Email: "third@x", Username: "third", XP: 100},
			}, nil
		},
	}
	svc := NewLeaderboardService(users)

	entries, err := svc.Standings(context.Background())
	if err != nil {
		t.Fatalf("Standings: %v", err)
	}
	for i, want := range []string{"first", "second", "third"} {
		if entries[i].Username != want {
			t.Fatalf("tie order broken at %d: got %q", i, entries[i].Username)
		}
	}
}

func TestLeaderboardService_EmptyStore(t *testing.T) {
	users := &mockUserRepo{
		ListAllFn: func() ([]models.User, error) { return nil, nil },
	}
	entries, err := NewLeaderboardService(users).Standings(context.Background())
	if err != nil {
		t.Fatalf("Standings: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty standings, got %d entries", len(entries))
	}
}

func TestLeaderboardService_RepoError(t *testing.T) {
	wantErr := errors.New("db down")
	users := &mockUserRepo{
		ListAllFn: func() ([]models.User, error) { return nil, wantErr },
	}
	if _, err := NewLeaderboardService(users).Standings(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
