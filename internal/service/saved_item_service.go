package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/notify"
	"github.com/anotoria/Zenith-AI/internal/repository"
	"github.com/anotoria/Zenith-AI/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type SavedItemService interface {
	Save(ctx context.Context, userID string, sc *transfer.SavedItemCreation) (*models.SavedItem, error)
	ListByUser(ctx context.Context, userID string) ([]*models.SavedItem, error)
}

type savedItemService struct {
	si repository.SavedItemRepository
	n  *notify.Notifier
}

func NewSavedItemService(si repository.SavedItemRepository, n *notify.Notifier) SavedItemService {
	return &savedItemService{
		si: si,
		n:  n,
	}
}

func (s *savedItemService) Save(ctx context.Context, userID string, sc *transfer.SavedItemCreation) (*models.SavedItem, error) {
	if sc == nil || sc.Content == "" {
		err := errors.New("item content cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	item := models.SavedItem{
		ID:          id,
		UserID:      userID,
		Type:        sc.Type,
		Content:     sc.Content,
		Prompt:      sc.Prompt,
		Description: sc.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.si.Insert(ctx, &item); err != nil {
		return nil, err
	}

	s.n.Success("Item saved to your library!")
	return &item, nil
}

func (s *savedItemService) ListByUser(ctx context.Context, userID string) ([]*models.SavedItem, error) {
	return s.si.ListByUser(ctx, userID)
}
