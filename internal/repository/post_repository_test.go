package repository

import (
	"context"
	"testing"
	"time"

	"github.com/anotoria/Zenith-AI/internal/models"
)

func at(day int) time.Time {
	return time.Date(2025, time.March, day, 10, 0, 0, 0, time.UTC)
}

func TestPostRepositoryInsertKeepsSortOrder(t *testing.T) {
	t.Parallel()

	r := NewPostRepository(nil)
	ctx := context.Background()

	for _, p := range []models.ScheduledPost{
		{ID: "p3", ScheduledAt: at(15)},
		{ID: "p1", ScheduledAt: at(5)},
		{ID: "p2", ScheduledAt: at(10)},
	} {
		post := p
		if err := r.Insert(ctx, &post); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	posts, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"p1", "p2", "p3"}
	for i, id := range want {
		if posts[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, posts[i].ID)
		}
	}
}

func TestPostRepositoryEqualTimestampsKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	r := NewPostRepository(nil)
	ctx := context.Background()

	same := at(7)
	r.Insert(ctx, &models.ScheduledPost{ID: "first", ScheduledAt: same})
	r.Insert(ctx, &models.ScheduledPost{ID: "second", ScheduledAt: same})
	r.Insert(ctx, &models.ScheduledPost{ID: "third", ScheduledAt: same})

	posts, _ := r.List(ctx)
	want := []string{"first", "second", "third"}
	for i, id := range want {
		if posts[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, posts[i].ID)
		}
	}
}

func TestPostRepositoryReplaceResorts(t *testing.T) {
	t.Parallel()

	r := NewPostRepository([]models.ScheduledPost{
		{ID: "p1", ScheduledAt: at(5)},
		{ID: "p2", ScheduledAt: at(10)},
	})
	ctx := context.Background()

	// Move p1 past p2; the order must follow.
	if err := r.Replace(ctx, "p1", &models.ScheduledPost{ID: "p1", ScheduledAt: at(20)}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	posts, _ := r.List(ctx)
	if posts[0].ID != "p2" || posts[1].ID != "p1" {
		t.Fatalf("expected p2 then p1, got %s then %s", posts[0].ID, posts[1].ID)
	}
}

func TestPostRepositoryUpdateStatus(t *testing.T) {
	t.Parallel()

	r := NewPostRepository([]models.ScheduledPost{
		{ID: "p1", ScheduledAt: at(5), Status: models.PostStatusScheduled},
	})
	ctx := context.Background()

	if err := r.UpdateStatus(ctx, "p1", models.PostStatusPublished); err != nil {
		t.Fatalf("update status: %v", err)
	}

	got, ok, _ := r.GetByID(ctx, "p1")
	if !ok {
		t.Fatal("expected post to exist")
	}
	if got.Status != models.PostStatusPublished {
		t.Fatalf("expected status %s, got %s", models.PostStatusPublished, got.Status)
	}
}
