package service

import (
	"context"
	"testing"
	"time"

	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/notify"
	"github.com/anotoria/Zenith-AI/internal/repository"
	"github.com/anotoria/Zenith-AI/internal/transfer"
)

func TestUpdatePostRescheduleEnqueuesNewTask(t *testing.T) {
	t.Parallel()

	pr := repository.NewPostRepository([]models.ScheduledPost{{
		ID:          "p1",
		Platform:    models.PlatformFacebook,
		Content:     "hello",
		ScheduledAt: time.Date(2025, time.June, 3, 10, 0, 0, 0, time.UTC),
		Status:      models.PostStatusScheduled,
	}})
	q := &recordingEnqueuer{}
	s := NewPostService(pr, q, notify.New(notify.DefaultTTL))

	post, err := s.UpdatePost(context.Background(), &transfer.PostUpdate{
		ID:            "p1",
		ScheduledTime: "2025-06-05T10:00",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC)
	if !post.ScheduledAt.Equal(want) {
		t.Fatalf("expected send time %v, got %v", want, post.ScheduledAt)
	}

	if len(q.posts) != 1 {
		t.Fatalf("expected a fresh publish task after reschedule, got %d", len(q.posts))
	}
	if !q.posts[0].ScheduledAt.Equal(want) {
		t.Fatalf("enqueued task must carry the new send time, got %v", q.posts[0].ScheduledAt)
	}
}

func TestUpdatePostContentOnlyDoesNotEnqueue(t *testing.T) {
	t.Parallel()

	pr := repository.NewPostRepository([]models.ScheduledPost{{
		ID:          "p1",
		Platform:    models.PlatformFacebook,
		Content:     "hello",
		ScheduledAt: time.Date(2025, time.June, 3, 10, 0, 0, 0, time.UTC),
		Status:      models.PostStatusScheduled,
	}})
	q := &recordingEnqueuer{}
	s := NewPostService(pr, q, notify.New(notify.DefaultTTL))

	post, err := s.UpdatePost(context.Background(), &transfer.PostUpdate{
		ID:      "p1",
		Content: "edited",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if post.Content != "edited" {
		t.Fatalf("expected edited content, got %q", post.Content)
	}

	if len(q.posts) != 0 {
		t.Fatalf("content edit must not enqueue, got %d tasks", len(q.posts))
	}
}
