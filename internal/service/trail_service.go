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

type TrailService interface {
	SaveTrail(ctx context.Context, tu *transfer.TrailUpsert) (*models.LearningTrail, error)
	List(ctx context.Context) ([]*models.LearningTrail, error)
}

type trailService struct {
	tr repository.TrailRepository
	n  *notify.Notifier
}

func NewTrailService(tr repository.TrailRepository, n *notify.Notifier) TrailService {
	return &trailService{
		tr: tr,
		n:  n,
	}
}

func (s *trailService) SaveTrail(ctx context.Context, tu *transfer.TrailUpsert) (*models.LearningTrail, error) {
	if tu == nil || tu.Title == "" {
		err := errors.New("trail title cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}

	id := tu.ID
	if id == "" {
		var err error
		id, err = gonanoid.New()
		if err != nil {
			return nil, err
		}
	}

	trail := models.LearningTrail{
		ID:          id,
		Title:       tu.Title,
		Description: tu.Description,
		UpdatedAt:   time.Now(),
	}
	for _, step := range tu.Steps {
		stepID := step.ID
		if stepID == "" {
			var err error
			stepID, err = gonanoid.New()
			if err != nil {
				return nil, err
			}
		}
		trail.Steps = append(trail.Steps, models.TrailStep{
			ID:    stepID,
			Title: step.Title,
			URL:   step.URL,
		})
	}

	if err := s.tr.Upsert(ctx, &trail); err != nil {
		return nil, err
	}

	s.n.Success("Trail saved successfully!")
	return &trail, nil
}

func (s *trailService) List(ctx context.Context) ([]*models.LearningTrail, error) {
	return s.tr.List(ctx)
}
