package service

import (
	"context"
	"errors"
	"testing"

	"github.com/anotoria/Zenith-AI/internal/repository"
)

func TestApiKeyServiceLimit(t *testing.T) {
	t.Parallel()

	s := NewApiKeyService(repository.NewApiKeyRepository())
	ctx := context.Background()

	for i := 0; i < maxKeysPerUser; i++ {
		if err := s.Create(ctx, "u1"); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	if err := s.Create(ctx, "u1"); !errors.Is(err, ErrAPIKeyLimit) {
		t.Fatalf("expected ErrAPIKeyLimit, got %v", err)
	}

	// The limit is per user.
	if err := s.Create(ctx, "u2"); err != nil {
		t.Fatalf("create for another user: %v", err)
	}
}

func TestApiKeyServiceGetUserID(t *testing.T) {
	t.Parallel()

	s := NewApiKeyService(repository.NewApiKeyRepository())
	ctx := context.Background()

	if err := s.Create(ctx, "u1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	keys, err := s.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("expected 1 key, got %d", len(keys))
	}

	userID, err := s.GetUserID(ctx, keys[0].ApiKey)
	if err != nil {
		t.Fatalf("get user id: %v", err)
	}
	if userID != "u1" {
		t.Fatalf("expected u1, got %s", userID)
	}

	if _, err := s.GetUserID(ctx, "not-a-key"); !errors.Is(err, ErrAPIKeyNotFound) {
		t.Fatalf("expected ErrAPIKeyNotFound, got %v", err)
	}
}

func TestApiKeyServiceRemoveOwnership(t *testing.T) {
	t.Parallel()

	s := NewApiKeyService(repository.NewApiKeyRepository())
	ctx := context.Background()

	if err := s.Create(ctx, "u1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	keys, _ := s.List(ctx, "u1")

	// Another user cannot remove someone else's key.
	if err := s.RemoveAPIKey(ctx, "u2", keys[0].ID); !errors.Is(err, ErrAPIKeyNotFound) {
		t.Fatalf("expected ErrAPIKeyNotFound, got %v", err)
	}

	if err := s.RemoveAPIKey(ctx, "u1", keys[0].ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	remaining, _ := s.List(ctx, "u1")
	if len(remaining) != 0 {
		t.Fatalf("expected no keys left, got %d", len(remaining))
	}
}
