package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/repository"
	"github.com/anotoria/Zenith-AI/pkg/utils"
)

const maxKeysPerUser = 5

type ApiKeyService interface {
	Create(ctx context.Context, userID string) error
	List(ctx context.Context, userID string) ([]*models.ApiKey, error)
	GetUserID(ctx context.Context, apiKey string) (string, error)
	RemoveAPIKey(ctx context.Context, userID, keyID string) error
}

type apiKeyService struct {
	k repository.ApiKeyRepository
}

func NewApiKeyService(k repository.ApiKeyRepository) ApiKeyService {
	return &apiKeyService{
		k: k,
	}
}

func (s *apiKeyService) Create(ctx context.Context, userID string) error {
	keys, err := s.k.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if len(keys) >= maxKeysPerUser {
		slog.Info("api key limit reached", "user_id", userID)
		return fmt.Errorf("%w: only %d API keys can be created", ErrAPIKeyLimit, maxKeysPerUser)
	}

	key, err := utils.GenerateRandomKey(16)
	if err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("error generating API key")
	}

	apiKey := &models.ApiKey{
		UserID: userID,
		ApiKey: key,
	}

	_, err = s.k.Create(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("error saving API key")
	}
	return nil
}

func (s *apiKeyService) GetUserID(ctx context.Context, apiKey string) (string, error) {
	userID, isExist, err := s.k.GetByKey(ctx, apiKey)
	if err != nil {
		return "", err
	}

	if !isExist {
		return "", ErrAPIKeyNotFound
	}

	return userID, nil
}

func (s *apiKeyService) List(ctx context.Context, userID string) ([]*models.ApiKey, error) {
	apiKeys, err := s.k.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting API keys")
	}
	return apiKeys, nil
}

// RemoveAPIKey deletes a key, but only when it belongs to the caller.
func (s *apiKeyService) RemoveAPIKey(ctx context.Context, userID, keyID string) error {
	if userID == "" || keyID == "" {
		return ErrAPIKeyNotFound
	}

	isValid, err := s.k.CheckByUserID(ctx, keyID, userID)
	if err != nil {
		return err
	}

	if !isValid {
		slog.Info("api key does not belong to user", "key_id", keyID, "user_id", userID)
		return ErrAPIKeyNotFound
	}

	return s.k.Remove(ctx, keyID)
}
