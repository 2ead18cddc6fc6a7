package queue

import (
	"context"
	"testing"
	"time"

	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/notify"
	"github.com/anotoria/Zenith-AI/internal/repository"
)

type stubPublisher struct {
	calls int
}

func (p *stubPublisher) PublishToPage(ctx context.Context, fb *models.FacebookConfig, content, imageURL string) (string, error) {
	p.calls++
	return "graph-post-id", nil
}

func (p *stubPublisher) RefreshPageToken(ctx context.Context, fb *models.FacebookConfig) (*models.FacebookConfig, error) {
	return fb, nil
}

func newPublishFixture(post models.ScheduledPost) (*Queue, *stubPublisher, repository.PostRepository) {
	pr := repository.NewPostRepository([]models.ScheduledPost{post})
	sp := repository.NewSocialProfileRepository([]models.SocialProfile{{
		ID:          "sp_fb",
		Platform:    models.PlatformFacebook,
		IsConnected: true,
		Facebook:    &models.FacebookConfig{SelectedPageID: "page123"},
	}})
	fb := &stubPublisher{}
	q := NewQueue(pr, sp, fb, notify.New(notify.DefaultTTL))
	return q, fb, pr
}

func TestPublishPostPublishesDuePost(t *testing.T) {
	t.Parallel()

	sendTime := time.Date(2025, time.June, 3, 10, 0, 0, 0, time.UTC)
	q, fb, pr := newPublishFixture(models.ScheduledPost{
		ID:          "p1",
		Platform:    models.PlatformFacebook,
		Content:     "hello",
		ScheduledAt: sendTime,
		Status:      models.PostStatusScheduled,
	})

	if err := q.PublishPost(context.Background(), "p1", sendTime); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if fb.calls != 1 {
		t.Fatalf("expected 1 publish call, got %d", fb.calls)
	}
	post, _, _ := pr.GetByID(context.Background(), "p1")
	if post.Status != models.PostStatusPublished {
		t.Fatalf("expected published status, got %s", post.Status)
	}
}

func TestPublishPostSkipsRescheduledPost(t *testing.T) {
	t.Parallel()

	originalTime := time.Date(2025, time.June, 3, 10, 0, 0, 0, time.UTC)
	q, fb, pr := newPublishFixture(models.ScheduledPost{
		ID:          "p1",
		Platform:    models.PlatformFacebook,
		Content:     "hello",
		ScheduledAt: originalTime,
		Status:      models.PostStatusScheduled,
	})

	// Push the post out by two days; the task enqueued for the original
	// send time is now stale.
	moved, _, _ := pr.GetByID(context.Background(), "p1")
	moved.ScheduledAt = originalTime.Add(48 * time.Hour)
	if err := pr.Replace(context.Background(), "p1", moved); err != nil {
		t.Fatalf("replace: %v", err)
	}

	if err := q.PublishPost(context.Background(), "p1", originalTime); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if fb.calls != 0 {
		t.Fatalf("stale task must not publish, got %d calls", fb.calls)
	}
	post, _, _ := pr.GetByID(context.Background(), "p1")
	if post.Status != models.PostStatusScheduled {
		t.Fatalf("post must stay scheduled, got %s", post.Status)
	}
}

func TestPublishPostSkipsAlreadyPublished(t *testing.T) {
	t.Parallel()

	sendTime := time.Date(2025, time.June, 3, 10, 0, 0, 0, time.UTC)
	q, fb, _ := newPublishFixture(models.ScheduledPost{
		ID:          "p1",
		Platform:    models.PlatformFacebook,
		ScheduledAt: sendTime,
		Status:      models.PostStatusPublished,
	})

	if err := q.PublishPost(context.Background(), "p1", sendTime); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if fb.calls != 0 {
		t.Fatalf("published post must not publish again, got %d calls", fb.calls)
	}
}
