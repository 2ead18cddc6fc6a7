package service

import (
	"context"
	"errors"
	"log/slog"

	config "github.com/anotoria/Zenith-AI/configs"
	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/repository"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type AuthService interface {
	LoginCallback(ctx context.Context, code string) (string, error)
}

type authService struct {
	cfg config.Config
	u   repository.UserRepository
}

func NewAuthService(cfg config.Config, u repository.UserRepository) AuthService {
	return &authService{
		cfg: cfg,
		u:   u,
	}
}

func (s *authService) LoginCallback(ctx context.Context, code string) (string, error) {
	if code == "" {
		err := errors.New("code is empty")
		slog.Info(err.Error())
		return "", err
	}

	oauth2Config := &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		RedirectURL:  s.cfg.GoogleRedirectURI,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}

	if oauth2Config.ClientID == "" || oauth2Config.ClientSecret == "" {
		err := errors.New("oauth2 configuration is incomplete")
		slog.Info(err.Error())
		return "", err
	}

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	client := oauth2Config.Client(ctx, token)
	oauthService, err := goauth2.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	userInfo, err := oauthService.Userinfo.Get().Do()
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return s.upsertGoogleUser(ctx, userInfo)
}

// upsertGoogleUser resolves a Google identity to a user id. An existing
// user with a matching email is linked, keeping their permissions; only
// an unknown email creates a new record.
func (s *authService) upsertGoogleUser(ctx context.Context, userInfo *goauth2.Userinfo) (string, error) {
	user, isExist, err := s.u.GetByEmail(ctx, userInfo.Email)
	if err != nil {
		return "", err
	}

	if !isExist {
		userID, err := s.u.Create(ctx, &models.User{
			GoogleID: userInfo.Id,
			Email:    userInfo.Email,
			Name:     userInfo.Name,
			Avatar:   userInfo.Picture,
			IsActive: true,
		})
		if err != nil {
			slog.Info(err.Error())
			return "", err
		}
		return userID, nil
	}

	if user.GoogleID == "" {
		user.GoogleID = userInfo.Id
		if user.Avatar == "" {
			user.Avatar = userInfo.Picture
		}
		if err := s.u.Update(ctx, user); err != nil {
			slog.Info(err.Error())
			return "", err
		}
	}

	return user.ID, nil
}
