package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/notify"
	"github.com/anotoria/Zenith-AI/internal/repository"
	"github.com/anotoria/Zenith-AI/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// PostService is the planner: manual creation and editing of scheduled
// posts.
type PostService interface {
	CreatePost(ctx context.Context, pc *transfer.PostCreation) (*models.ScheduledPost, error)
	UpdatePost(ctx context.Context, pu *transfer.PostUpdate) (*models.ScheduledPost, error)
	List(ctx context.Context) ([]*models.ScheduledPost, error)
}

const scheduledTimeLayout = "2006-01-02T15:04"

type postService struct {
	pr repository.PostRepository
	q  PostEnqueuer
	n  *notify.Notifier
}

func NewPostService(pr repository.PostRepository, q PostEnqueuer, n *notify.Notifier) PostService {
	return &postService{
		pr: pr,
		q:  q,
		n:  n,
	}
}

func (s *postService) CreatePost(ctx context.Context, pc *transfer.PostCreation) (*models.ScheduledPost, error) {
	if pc == nil {
		err := errors.New("post creation data is nil")
		slog.Error(err.Error())
		return nil, err
	}
	if pc.Content == "" {
		err := errors.New("content cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}

	scheduledTime, err := time.Parse(scheduledTimeLayout, pc.ScheduledTime)
	if err != nil {
		err = fmt.Errorf("invalid scheduled time format: %w", err)
		slog.Error(err.Error())
		return nil, err
	}

	platform := pc.Platform
	if platform == "" {
		platform = models.PlatformFacebook
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	post := models.ScheduledPost{
		ID:          id,
		Platform:    platform,
		Content:     pc.Content,
		ScheduledAt: scheduledTime,
		Status:      models.PostStatusScheduled,
		ArticleID:   pc.ArticleID,
	}
	if pc.ImageURL != "" {
		post.MediaType = models.MediaTypeImage
		post.ImageURL = pc.ImageURL
	}

	if err := s.pr.Insert(ctx, &post); err != nil {
		return nil, err
	}

	if s.q != nil {
		delay := time.Until(scheduledTime)
		if delay < 0 {
			delay = 0
		}
		if err := s.q.EnqueuePublish(&post, delay); err != nil {
			slog.Error("unable to enqueue publish task", "post_id", post.ID, "error", err)
		}
	}

	s.n.Success("Post created successfully!")
	return &post, nil
}

func (s *postService) UpdatePost(ctx context.Context, pu *transfer.PostUpdate) (*models.ScheduledPost, error) {
	if pu == nil || pu.ID == "" {
		err := errors.New("post id is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	post, ok, err := s.pr.GetByID(ctx, pu.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		err = errors.New("post doesn't exist")
		slog.Info(err.Error())
		return nil, err
	}

	if pu.Content != "" {
		post.Content = pu.Content
	}
	if pu.Status != "" {
		post.Status = pu.Status
	}
	rescheduled := false
	if pu.ScheduledTime != "" {
		scheduledTime, err := time.Parse(scheduledTimeLayout, pu.ScheduledTime)
		if err != nil {
			return nil, fmt.Errorf("invalid scheduled time format: %w", err)
		}
		rescheduled = !scheduledTime.Equal(post.ScheduledAt)
		post.ScheduledAt = scheduledTime
	}

	if err := s.pr.Replace(ctx, post.ID, post); err != nil {
		return nil, err
	}

	// A reschedule needs its own task; the one enqueued for the old send
	// time no longer matches the post and will be skipped by the worker.
	if rescheduled && post.Status == models.PostStatusScheduled && s.q != nil {
		delay := time.Until(post.ScheduledAt)
		if delay < 0 {
			delay = 0
		}
		if err := s.q.EnqueuePublish(post, delay); err != nil {
			slog.Error("unable to enqueue publish task", "post_id", post.ID, "error", err)
		}
	}

	s.n.Success("Post updated.")
	return post, nil
}

func (s *postService) List(ctx context.Context) ([]*models.ScheduledPost, error) {
	return s.pr.List(ctx)
}
