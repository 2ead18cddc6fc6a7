package repository

import (
	"context"
	"sync"

	"github.com/anotoria/Zenith-AI/internal/models"
)

// SocialProfileRepository is the single mutation path for platform
// integrations. Settings edits must land here, never in view-local copies.
type SocialProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.SocialProfile, bool, error)
	GetByPlatform(ctx context.Context, platform string) (*models.SocialProfile, bool, error)
	List(ctx context.Context) ([]*models.SocialProfile, error)
	SetConnected(ctx context.Context, id string, connected bool) error
	Update(ctx context.Context, profile *models.SocialProfile) error
}

type socialProfileRepository struct {
	mu       sync.RWMutex
	profiles []models.SocialProfile
}

func NewSocialProfileRepository(seed []models.SocialProfile) SocialProfileRepository {
	r := &socialProfileRepository{}
	r.profiles = append(r.profiles, seed...)
	return r
}

func (r *socialProfileRepository) GetByID(ctx context.Context, id string) (*models.SocialProfile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.profiles {
		if r.profiles[i].ID == id {
			p := cloneProfile(&r.profiles[i])
			return &p, true, nil
		}
	}
	return nil, false, nil
}

func (r *socialProfileRepository) GetByPlatform(ctx context.Context, platform string) (*models.SocialProfile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.profiles {
		if r.profiles[i].Platform == platform {
			p := cloneProfile(&r.profiles[i])
			return &p, true, nil
		}
	}
	return nil, false, nil
}

func (r *socialProfileRepository) List(ctx context.Context) ([]*models.SocialProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.SocialProfile, 0, len(r.profiles))
	for i := range r.profiles {
		p := cloneProfile(&r.profiles[i])
		out = append(out, &p)
	}
	return out, nil
}

func (r *socialProfileRepository) SetConnected(ctx context.Context, id string, connected bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.profiles {
		if r.profiles[i].ID == id {
			r.profiles[i].IsConnected = connected
			return nil
		}
	}
	return nil
}

func (r *socialProfileRepository) Update(ctx context.Context, profile *models.SocialProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.profiles {
		if r.profiles[i].ID == profile.ID {
			r.profiles[i] = cloneProfile(profile)
			return nil
		}
	}
	return nil
}

func cloneProfile(p *models.SocialProfile) models.SocialProfile {
	c := *p
	if p.Facebook != nil {
		fb := *p.Facebook
		c.Facebook = &fb
	}
	if p.Wordpress != nil {
		wp := *p.Wordpress
		c.Wordpress = &wp
	}
	return c
}
