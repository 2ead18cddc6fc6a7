package repository

import (
	"context"
	"sync"

	"github.com/anotoria/Zenith-AI/internal/models"
)

type TrailRepository interface {
	// Upsert replaces the trail with a matching id or appends a new one.
	Upsert(ctx context.Context, trail *models.LearningTrail) error
	GetByID(ctx context.Context, id string) (*models.LearningTrail, bool, error)
	List(ctx context.Context) ([]*models.LearningTrail, error)
}

type trailRepository struct {
	mu     sync.RWMutex
	trails []models.LearningTrail
}

func NewTrailRepository(seed []models.LearningTrail) TrailRepository {
	r := &trailRepository{}
	r.trails = append(r.trails, seed...)
	return r
}

func (r *trailRepository) Upsert(ctx context.Context, trail *models.LearningTrail) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := cloneTrail(trail)
	for i := range r.trails {
		if r.trails[i].ID == trail.ID {
			r.trails[i] = t
			return nil
		}
	}
	r.trails = append(r.trails, t)
	return nil
}

func (r *trailRepository) GetByID(ctx context.Context, id string) (*models.LearningTrail, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.trails {
		if r.trails[i].ID == id {
			t := cloneTrail(&r.trails[i])
			return &t, true, nil
		}
	}
	return nil, false, nil
}

func (r *trailRepository) List(ctx context.Context) ([]*models.LearningTrail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.LearningTrail, 0, len(r.trails))
	for i := range r.trails {
		t := cloneTrail(&r.trails[i])
		out = append(out, &t)
	}
	return out, nil
}

func cloneTrail(t *models.LearningTrail) models.LearningTrail {
	c := *t
	if t.Steps != nil {
		c.Steps = append([]models.TrailStep(nil), t.Steps...)
	}
	return c
}
