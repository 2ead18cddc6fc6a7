package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	config "github.com/anotoria/Zenith-AI/configs"
	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/transfer"
	"github.com/anotoria/Zenith-AI/pkg/utils"
)

const graphAPIBase = "https://graph.facebook.com/v19.0"

// FacebookService talks to the Graph API on behalf of the connected page.
type FacebookService interface {
	PublishToPage(ctx context.Context, fb *models.FacebookConfig, content, imageURL string) (string, error)
	RefreshPageToken(ctx context.Context, fb *models.FacebookConfig) (*models.FacebookConfig, error)
}

type facebookService struct {
	cfg        config.Config
	httpClient *http.Client
}

func NewFacebookService(cfg config.Config) FacebookService {
	return &facebookService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// PublishToPage posts to the page feed, or to the photos edge when an
// image is attached. Returns the Graph post id.
func (s *facebookService) PublishToPage(ctx context.Context, fb *models.FacebookConfig, content, imageURL string) (string, error) {
	if fb == nil || fb.SelectedPageID == "" {
		return "", ErrDestinationNotConfigured
	}

	token, err := s.pageToken(fb)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/%s/feed", graphAPIBase, fb.SelectedPageID)
	form := url.Values{}
	form.Set("message", content)
	form.Set("access_token", token)
	form.Set("published", "true")

	if imageURL != "" {
		endpoint = fmt.Sprintf("%s/%s/photos", graphAPIBase, fb.SelectedPageID)
		form.Set("url", imageURL)
		form.Set("caption", content)
		form.Del("message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	defer resp.Body.Close()

	var postResp transfer.FacebookPostResponse
	if err := json.NewDecoder(resp.Body).Decode(&postResp); err != nil {
		return "", fmt.Errorf("decode graph response: %w", err)
	}
	if postResp.Error != nil {
		slog.Info(postResp.Error.Message)
		return "", errors.New(postResp.Error.Message)
	}

	return postResp.ID, nil
}

// RefreshPageToken exchanges the current token for a fresh long-lived one.
func (s *facebookService) RefreshPageToken(ctx context.Context, fb *models.FacebookConfig) (*models.FacebookConfig, error) {
	if fb == nil {
		return nil, ErrDestinationNotConfigured
	}

	token, err := s.pageToken(fb)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("grant_type", "fb_exchange_token")
	params.Set("client_id", s.cfg.FacebookAppID)
	params.Set("client_secret", s.cfg.FacebookAppSecret)
	params.Set("fb_exchange_token", token)

	endpoint := fmt.Sprintf("%s/oauth/access_token?%s", graphAPIBase, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	var tokenResp transfer.FacebookTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if tokenResp.Error != nil {
		slog.Info(tokenResp.Error.Message)
		return nil, errors.New(tokenResp.Error.Message)
	}

	encrypted, err := utils.Encrypt([]byte(tokenResp.AccessToken), utils.DeriveKey(s.cfg.SecretKey))
	if err != nil {
		return nil, err
	}

	updated := *fb
	updated.AccessToken = encrypted
	updated.TokenExpiresAt = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	return &updated, nil
}

func (s *facebookService) pageToken(fb *models.FacebookConfig) (string, error) {
	if fb.AccessToken == "" {
		return "", errors.New("facebook page has no access token")
	}
	plain, err := utils.Decrypt(fb.AccessToken, utils.DeriveKey(s.cfg.SecretKey))
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
