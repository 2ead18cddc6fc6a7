package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/notify"
	"github.com/anotoria/Zenith-AI/internal/repository"
	"github.com/anotoria/Zenith-AI/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// SyncService runs one "check blog, auto-generate, auto-publish" cycle,
// triggered by an explicit user action.
type SyncService interface {
	RunSync(ctx context.Context) (*transfer.SyncResult, error)
}

const (
	// Fallback copy when the generator returns nothing.
	defaultAutoCopy = "Check out our new article!"

	autoPostImageURL = "https://picsum.photos/seed/tech/800/600"

	generationTimeout = 30 * time.Second
)

type syncService struct {
	ar  repository.ArticleRepository
	pr  repository.PostRepository
	sp  repository.SocialProfileRepository
	gen ContentGenerator
	n   *notify.Notifier
	now func() time.Time

	// Guards against re-triggering while a cycle is outstanding.
	inFlight atomic.Bool
}

func NewSyncService(
	ar repository.ArticleRepository,
	pr repository.PostRepository,
	sp repository.SocialProfileRepository,
	gen ContentGenerator,
	n *notify.Notifier) SyncService {
	return &syncService{
		ar:  ar,
		pr:  pr,
		sp:  sp,
		gen: gen,
		n:   n,
		now: time.Now,
	}
}

func (s *syncService) RunSync(ctx context.Context) (*transfer.SyncResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSyncInFlight
	}
	defer s.inFlight.Store(false)

	// Both gates run before any mutation.
	wp, ok, err := s.sp.GetByPlatform(ctx, models.PlatformWordpress)
	if err != nil {
		return nil, err
	}
	if !ok || !wp.IsConnected {
		s.n.Error("Connect your WordPress blog in Settings first.")
		return nil, ErrSourceNotConnected
	}

	fb, ok, err := s.sp.GetByPlatform(ctx, models.PlatformFacebook)
	if err != nil {
		return nil, err
	}
	if !ok || !fb.IsConnected || fb.Facebook == nil || fb.Facebook.SelectedPageID == "" {
		s.n.Error("Connect Facebook and select a Page in Settings to enable auto publishing.")
		return nil, ErrDestinationNotConfigured
	}

	now := s.now()

	articleID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}

	// Detection is simulated: a fetch against the blog would go here.
	article := models.Article{
		ID:             articleID,
		Title:          fmt.Sprintf("The Impact of AI on Digital Marketing in %d - New Analysis", now.Year()),
		CreatedAt:      now,
		IsGenerating:   true,
		AutoPostStatus: models.AutoPostStatusPending,
	}

	if err := s.ar.Insert(ctx, &article); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}

	result, err := s.autoPublish(ctx, &article, fb)
	if err != nil {
		slog.Error("sync cycle failed", "article_id", article.ID, "error", err)
		s.markFailed(ctx, article)
		s.n.Error("Something went wrong during automatic sync.")
		return nil, fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}

	s.n.Success(fmt.Sprintf("New article detected and posted automatically to page %s!", fb.Facebook.SelectedPageName))
	return result, nil
}

func (s *syncService) autoPublish(ctx context.Context, article *models.Article, fb *models.SocialProfile) (*transfer.SyncResult, error) {
	genCtx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	copies, err := s.gen.Generate(genCtx, article.Title)
	if err != nil {
		return nil, err
	}

	bestCopy := defaultAutoCopy
	if len(copies) > 0 {
		bestCopy = copies[0].Text
	}

	postID, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	post := models.ScheduledPost{
		ID:          postID,
		Platform:    models.PlatformFacebook,
		Content:     bestCopy,
		MediaType:   models.MediaTypeImage,
		ImageURL:    autoPostImageURL,
		ScheduledAt: s.now(),
		Status:      models.PostStatusPublished,
		ArticleID:   article.ID,
	}

	if err := s.pr.Insert(ctx, &post); err != nil {
		return nil, err
	}

	updated := *article
	updated.IsGenerating = false
	updated.Copies = copies
	updated.AutoPostStatus = models.AutoPostStatusSuccess
	updated.AutoPostedAt = s.now()
	updated.AutoPostPlatform = models.PlatformFacebook

	if err := s.ar.Replace(ctx, article.ID, &updated); err != nil {
		return nil, err
	}

	return &transfer.SyncResult{
		ArticleID: article.ID,
		PostID:    post.ID,
		PageName:  fb.Facebook.SelectedPageName,
	}, nil
}

// markFailed settles the article inserted at the start of the cycle so a
// failed sync never leaves a dangling pending record.
func (s *syncService) markFailed(ctx context.Context, article models.Article) {
	article.IsGenerating = false
	article.AutoPostStatus = models.AutoPostStatusFailed
	if err := s.ar.Replace(ctx, article.ID, &article); err != nil {
		slog.Error("unable to mark article failed", "article_id", article.ID, "error", err)
	}
}
