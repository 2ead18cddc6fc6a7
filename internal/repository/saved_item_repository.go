package repository

import (
	"context"
	"sync"

	"github.com/anotoria/Zenith-AI/internal/models"
)

type SavedItemRepository interface {
	// Insert prepends, newest first.
	Insert(ctx context.Context, item *models.SavedItem) error
	ListByUser(ctx context.Context, userID string) ([]*models.SavedItem, error)
}

type savedItemRepository struct {
	mu    sync.RWMutex
	items []models.SavedItem
}

func NewSavedItemRepository() SavedItemRepository {
	return &savedItemRepository{}
}

func (r *savedItemRepository) Insert(ctx context.Context, item *models.SavedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]models.SavedItem{*item}, r.items...)
	return nil
}

func (r *savedItemRepository) ListByUser(ctx context.Context, userID string) ([]*models.SavedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.SavedItem
	for i := range r.items {
		if r.items[i].UserID == userID {
			it := r.items[i]
			out = append(out, &it)
		}
	}
	return out, nil
}
