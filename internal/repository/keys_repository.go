package repository

import (
	"context"
	"sync"
	"time"

	"github.com/anotoria/Zenith-AI/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type ApiKeyRepository interface {
	Create(ctx context.Context, key *models.ApiKey) (string, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.ApiKey, error)
	GetByKey(ctx context.Context, apiKey string) (string, bool, error)
	CheckByUserID(ctx context.Context, keyID, userID string) (bool, error)
	Remove(ctx context.Context, id string) error
}

type apiKeyRepository struct {
	mu   sync.RWMutex
	keys []models.ApiKey
}

func NewApiKeyRepository() ApiKeyRepository {
	return &apiKeyRepository{}
}

func (r *apiKeyRepository) Create(ctx context.Context, key *models.ApiKey) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := *key
	k.ID = id
	k.CreatedAt = time.Now()
	r.keys = append(r.keys, k)
	return id, nil
}

func (r *apiKeyRepository) GetByUserID(ctx context.Context, userID string) ([]*models.ApiKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.ApiKey
	for i := range r.keys {
		if r.keys[i].UserID == userID {
			k := r.keys[i]
			out = append(out, &k)
		}
	}
	return out, nil
}

func (r *apiKeyRepository) GetByKey(ctx context.Context, apiKey string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.keys {
		if r.keys[i].ApiKey == apiKey {
			return r.keys[i].UserID, true, nil
		}
	}
	return "", false, nil
}

func (r *apiKeyRepository) CheckByUserID(ctx context.Context, keyID, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.keys {
		if r.keys[i].ID == keyID && r.keys[i].UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *apiKeyRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.keys {
		if r.keys[i].ID == id {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			return nil
		}
	}
	return nil
}
