package service

import (
	"context"
	"errors"
	"log/slog"

	config "github.com/anotoria/Zenith-AI/configs"
	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/notify"
	"github.com/anotoria/Zenith-AI/internal/repository"
	"github.com/anotoria/Zenith-AI/internal/transfer"
	"github.com/anotoria/Zenith-AI/pkg/utils"
)

// ProfileService owns all social-profile mutation. Settings views read
// from here and write back through here, so the sync gates always see the
// current configuration.
type ProfileService interface {
	List(ctx context.Context) ([]*models.SocialProfile, error)
	ToggleConnection(ctx context.Context, profileID string) (*models.SocialProfile, error)
	UpdateFacebookConfig(ctx context.Context, fc *transfer.FacebookConfigUpdate) error
	UpdateWordpressConfig(ctx context.Context, wc *transfer.WordpressConfigUpdate) error
}

type profileService struct {
	cfg config.Config
	sp  repository.SocialProfileRepository
	n   *notify.Notifier
}

func NewProfileService(cfg config.Config, sp repository.SocialProfileRepository, n *notify.Notifier) ProfileService {
	return &profileService{
		cfg: cfg,
		sp:  sp,
		n:   n,
	}
}

func (s *profileService) List(ctx context.Context) ([]*models.SocialProfile, error) {
	return s.sp.List(ctx)
}

func (s *profileService) ToggleConnection(ctx context.Context, profileID string) (*models.SocialProfile, error) {
	profile, ok, err := s.sp.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		err = errors.New("social profile doesn't exist")
		slog.Info(err.Error())
		return nil, err
	}

	if err := s.sp.SetConnected(ctx, profileID, !profile.IsConnected); err != nil {
		return nil, err
	}

	profile.IsConnected = !profile.IsConnected
	return profile, nil
}

func (s *profileService) UpdateFacebookConfig(ctx context.Context, fc *transfer.FacebookConfigUpdate) error {
	profile, ok, err := s.sp.GetByID(ctx, fc.ProfileID)
	if err != nil {
		return err
	}
	if !ok || profile.Platform != models.PlatformFacebook {
		err = errors.New("facebook profile doesn't exist")
		slog.Info(err.Error())
		return err
	}

	if profile.Facebook == nil {
		profile.Facebook = &models.FacebookConfig{}
	}
	profile.Facebook.SelectedPageID = fc.SelectedPageID
	profile.Facebook.SelectedPageName = fc.SelectedPageName

	if fc.AccessToken != "" {
		// Page tokens never sit in memory in the clear.
		encrypted, err := utils.Encrypt([]byte(fc.AccessToken), utils.DeriveKey(s.cfg.SecretKey))
		if err != nil {
			return err
		}
		profile.Facebook.AccessToken = encrypted
	}

	if err := s.sp.Update(ctx, profile); err != nil {
		return err
	}

	s.n.Success("Integration settings saved successfully!")
	return nil
}

func (s *profileService) UpdateWordpressConfig(ctx context.Context, wc *transfer.WordpressConfigUpdate) error {
	profile, ok, err := s.sp.GetByID(ctx, wc.ProfileID)
	if err != nil {
		return err
	}
	if !ok || profile.Platform != models.PlatformWordpress {
		err = errors.New("wordpress profile doesn't exist")
		slog.Info(err.Error())
		return err
	}

	profile.Wordpress = &models.WordpressConfig{SiteURL: wc.SiteURL}

	if err := s.sp.Update(ctx, profile); err != nil {
		return err
	}

	s.n.Success("Integration settings saved successfully!")
	return nil
}
