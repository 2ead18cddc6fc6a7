package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/repository"
	"github.com/anotoria/Zenith-AI/internal/service"
)

// TokenRefreshJob keeps page access tokens alive: any connected Facebook
// profile whose token expires within the next 30 minutes gets a long-lived
// token exchange.
type TokenRefreshJob struct {
	sp repository.SocialProfileRepository
	fb service.FacebookService
}

func NewTokenRefreshJob(sp repository.SocialProfileRepository, fb service.FacebookService) *TokenRefreshJob {
	return &TokenRefreshJob{
		sp: sp,
		fb: fb,
	}
}

func (j *TokenRefreshJob) RefreshTokens() {
	ctx := context.Background()

	profiles, err := j.sp.List(ctx)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	cutoff := time.Now().Add(30 * time.Minute)

	var wg sync.WaitGroup

	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for _, profile := range profiles {
		if profile.Platform != models.PlatformFacebook || !profile.IsConnected {
			continue
		}
		if profile.Facebook == nil || profile.Facebook.AccessToken == "" {
			continue
		}
		if profile.Facebook.TokenExpiresAt.After(cutoff) {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(profile *models.SocialProfile) {
			defer wg.Done()
			defer func() { <-semaphore }()

			refreshed, err := j.fb.RefreshPageToken(ctx, profile.Facebook)
			if err != nil {
				slog.Info("Unable to refresh Facebook page token", "profile_id", profile.ID)
				return
			}

			profile.Facebook = refreshed
			if err := j.sp.Update(ctx, profile); err != nil {
				slog.Info(err.Error())
			}
		}(profile)
	}

	wg.Wait()
}
