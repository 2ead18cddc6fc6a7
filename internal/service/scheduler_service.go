package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/notify"
	"github.com/anotoria/Zenith-AI/internal/repository"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// SchedulerService turns a curated article (copy and image picked by a
// human) into a scheduled post with a randomized future send time.
type SchedulerService interface {
	SchedulePost(ctx context.Context, articleID string) (*models.ScheduledPost, error)
}

// PostEnqueuer hands a scheduled post to the delayed-publish queue.
type PostEnqueuer interface {
	EnqueuePublish(post *models.ScheduledPost, delay time.Duration) error
}

type schedulerService struct {
	ar  repository.ArticleRepository
	pr  repository.PostRepository
	q   PostEnqueuer
	n   *notify.Notifier
	rng *rand.Rand
	now func() time.Time
}

// NewSchedulerService builds the scheduler. q may be nil when no queue
// backend is configured; scheduling still works, publication just never
// fires on its own.
func NewSchedulerService(
	ar repository.ArticleRepository,
	pr repository.PostRepository,
	q PostEnqueuer,
	n *notify.Notifier,
	rng *rand.Rand) SchedulerService {
	return &schedulerService{
		ar:  ar,
		pr:  pr,
		q:   q,
		n:   n,
		rng: rng,
		now: time.Now,
	}
}

func (s *schedulerService) SchedulePost(ctx context.Context, articleID string) (*models.ScheduledPost, error) {
	article, ok, err := s.ar.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrArticleNotFound
	}

	if article.SelectedCopyID == "" || article.SelectedImageID == "" {
		s.n.Error("Select a copy and an image before scheduling.")
		return nil, ErrIncompleteSelection
	}

	var selectedCopy *models.Copy
	for i := range article.Copies {
		if article.Copies[i].ID == article.SelectedCopyID {
			selectedCopy = &article.Copies[i]
			break
		}
	}
	var selectedImage *models.ArticleImage
	for i := range article.Images {
		if article.Images[i].ID == article.SelectedImageID {
			selectedImage = &article.Images[i]
			break
		}
	}
	if selectedCopy == nil || selectedImage == nil {
		s.n.Error("The selected copy or image no longer exists.")
		return nil, ErrSelectionNotFound
	}

	postID, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	scheduledAt := randomSendTime(s.now(), s.rng)

	post := models.ScheduledPost{
		ID:          postID,
		Platform:    models.PlatformFacebook,
		Content:     selectedCopy.Text,
		MediaType:   models.MediaTypeImage,
		ImageURL:    selectedImage.URL,
		ScheduledAt: scheduledAt,
		Status:      models.PostStatusScheduled,
		ArticleID:   article.ID,
	}

	if err := s.pr.Insert(ctx, &post); err != nil {
		return nil, err
	}

	article.IsScheduled = true
	if err := s.ar.Replace(ctx, article.ID, article); err != nil {
		return nil, err
	}

	if s.q != nil {
		if err := s.q.EnqueuePublish(&post, time.Until(scheduledAt)); err != nil {
			// Scheduling already happened; the queue is best effort.
			slog.Error("unable to enqueue publish task", "post_id", post.ID, "error", err)
		}
	}

	s.n.Success(fmt.Sprintf("Post automatically scheduled for %s!", scheduledAt.Format("Jan 2, 2006 at 15:04")))
	return &post, nil
}

// randomSendTime spreads posts over the coming week: now plus 1-7 days,
// at a whole hour between 09:00 and 20:00.
func randomSendTime(now time.Time, rng *rand.Rand) time.Time {
	days := rng.Intn(7) + 1
	hour := rng.Intn(12) + 9

	d := now.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
}
