package repository

import (
	"context"
	"sync"
	"time"

	"github.com/anotoria/Zenith-AI/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, bool, error)
	GetByEmail(ctx context.Context, email string) (*models.User, bool, error)
	Create(ctx context.Context, user *models.User) (string, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]*models.User, error)
}

type userRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewUserRepository(seed []models.User) UserRepository {
	r := &userRepository{}
	r.users = append(r.users, seed...)
	return r
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, true, nil
		}
	}
	return nil, false, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, true, nil
		}
	}
	return nil, false, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u := *user
	u.ID = id
	u.CreatedAt = time.Now()
	r.users = append(r.users, u)
	return id, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.User, 0, len(r.users))
	for i := range r.users {
		u := r.users[i]
		out = append(out, &u)
	}
	return out, nil
}
