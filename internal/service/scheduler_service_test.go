package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/notify"
	"github.com/anotoria/Zenith-AI/internal/repository"
)

type recordingEnqueuer struct {
	posts  []*models.ScheduledPost
	delays []time.Duration
	err    error
}

func (e *recordingEnqueuer) EnqueuePublish(post *models.ScheduledPost, delay time.Duration) error {
	e.posts = append(e.posts, post)
	e.delays = append(e.delays, delay)
	return e.err
}

func curatedArticle() models.Article {
	return models.Article{
		ID:              "a1",
		Title:           "Launch announcement",
		Copies:          []models.Copy{{ID: "c1", Text: "We shipped it #launch"}},
		Images:          []models.ArticleImage{{ID: "img1", URL: "https://cdn.example.com/img1.png"}},
		SelectedCopyID:  "c1",
		SelectedImageID: "img1",
	}
}

func newSchedulerFixture(article models.Article, q PostEnqueuer) (*schedulerService, repository.ArticleRepository, repository.PostRepository, *notify.Notifier) {
	ar := repository.NewArticleRepository([]models.Article{article})
	pr := repository.NewPostRepository(nil)
	n := notify.New(notify.DefaultTTL)

	s := &schedulerService{
		ar:  ar,
		pr:  pr,
		q:   q,
		n:   n,
		rng: rand.New(rand.NewSource(42)),
		now: func() time.Time { return time.Date(2025, time.June, 1, 12, 30, 45, 0, time.UTC) },
	}
	return s, ar, pr, n
}

func TestSchedulePostCreatesScheduledPost(t *testing.T) {
	t.Parallel()

	q := &recordingEnqueuer{}
	s, ar, pr, n := newSchedulerFixture(curatedArticle(), q)

	post, err := s.SchedulePost(context.Background(), "a1")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if post.Content != "We shipped it #launch" {
		t.Fatalf("expected selected copy text, got %q", post.Content)
	}
	if post.ImageURL != "https://cdn.example.com/img1.png" {
		t.Fatalf("expected selected image url, got %q", post.ImageURL)
	}
	if post.Status != models.PostStatusScheduled {
		t.Fatalf("expected scheduled status, got %s", post.Status)
	}
	if post.ArticleID != "a1" {
		t.Fatal("post must reference the source article")
	}

	stored, ok, _ := pr.GetByID(context.Background(), post.ID)
	if !ok {
		t.Fatal("expected post in the repository")
	}
	if !stored.ScheduledAt.Equal(post.ScheduledAt) {
		t.Fatal("stored post must carry the computed send time")
	}

	article, _, _ := ar.GetByID(context.Background(), "a1")
	if !article.IsScheduled {
		t.Fatal("article must be marked scheduled")
	}

	if len(q.posts) != 1 || q.posts[0].ID != post.ID {
		t.Fatalf("expected one enqueued publish task, got %d", len(q.posts))
	}

	if _, ok := n.Current(); !ok {
		t.Fatal("expected a success notification")
	}
}

func TestSchedulePostSendTimeBounds(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 1, 12, 30, 45, 123, time.UTC)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		got := randomSendTime(now, rng)

		days := int(got.Sub(now).Hours() / 24)
		if days < 0 || days > 7 {
			t.Fatalf("send time %v outside the 1-7 day window", got)
		}
		if got.Hour() < 9 || got.Hour() > 20 {
			t.Fatalf("send hour %d outside 09:00-20:00", got.Hour())
		}
		if got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
			t.Fatalf("send time %v must be a whole hour", got)
		}
		if !got.After(now.Truncate(24 * time.Hour)) {
			t.Fatalf("send time %v is not in the future", got)
		}
	}
}

func TestSchedulePostRequiresSelections(t *testing.T) {
	t.Parallel()

	article := curatedArticle()
	article.SelectedImageID = ""

	s, _, pr, n := newSchedulerFixture(article, nil)

	_, err := s.SchedulePost(context.Background(), "a1")
	if !errors.Is(err, ErrIncompleteSelection) {
		t.Fatalf("expected ErrIncompleteSelection, got %v", err)
	}

	posts, _ := pr.List(context.Background())
	if len(posts) != 0 {
		t.Fatal("no post may be created without a full selection")
	}

	cur, ok := n.Current()
	if !ok || cur.Severity != notify.SeverityError {
		t.Fatalf("expected error notification, got %+v", cur)
	}
}

func TestSchedulePostDanglingSelection(t *testing.T) {
	t.Parallel()

	article := curatedArticle()
	article.SelectedCopyID = "gone"

	s, _, _, _ := newSchedulerFixture(article, nil)

	_, err := s.SchedulePost(context.Background(), "a1")
	if !errors.Is(err, ErrSelectionNotFound) {
		t.Fatalf("expected ErrSelectionNotFound, got %v", err)
	}
}

func TestSchedulePostUnknownArticle(t *testing.T) {
	t.Parallel()

	s, _, _, _ := newSchedulerFixture(curatedArticle(), nil)

	_, err := s.SchedulePost(context.Background(), "nope")
	if !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestSchedulePostSurvivesEnqueueFailure(t *testing.T) {
	t.Parallel()

	q := &recordingEnqueuer{err: errors.New("redis down")}
	s, ar, pr, _ := newSchedulerFixture(curatedArticle(), q)

	post, err := s.SchedulePost(context.Background(), "a1")
	if err != nil {
		t.Fatalf("schedule must succeed despite enqueue failure, got %v", err)
	}

	if _, ok, _ := pr.GetByID(context.Background(), post.ID); !ok {
		t.Fatal("expected the post to be stored")
	}
	article, _, _ := ar.GetByID(context.Background(), "a1")
	if !article.IsScheduled {
		t.Fatal("article must still be marked scheduled")
	}
}
