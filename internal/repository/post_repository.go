package repository

import (
	"context"
	"sync"

	"github.com/anotoria/Zenith-AI/internal/models"
)

type PostRepository interface {
	// Insert places the post so the collection stays sorted ascending by
	// ScheduledAt. Posts with equal timestamps keep insertion order.
	Insert(ctx context.Context, post *models.ScheduledPost) error
	// Replace swaps the post with the given id; no-op when absent.
	Replace(ctx context.Context, id string, post *models.ScheduledPost) error
	GetByID(ctx context.Context, id string) (*models.ScheduledPost, bool, error)
	List(ctx context.Context) ([]*models.ScheduledPost, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type postRepository struct {
	mu    sync.RWMutex
	posts []models.ScheduledPost
}

func NewPostRepository(seed []models.ScheduledPost) PostRepository {
	r := &postRepository{}
	for i := range seed {
		r.insertSorted(seed[i])
	}
	return r
}

func (r *postRepository) insertSorted(post models.ScheduledPost) {
	idx := len(r.posts)
	for i := range r.posts {
		if r.posts[i].ScheduledAt.After(post.ScheduledAt) {
			idx = i
			break
		}
	}
	r.posts = append(r.posts, models.ScheduledPost{})
	copy(r.posts[idx+1:], r.posts[idx:])
	r.posts[idx] = post
}

func (r *postRepository) Insert(ctx context.Context, post *models.ScheduledPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.insertSorted(*post)
	return nil
}

func (r *postRepository) Replace(ctx context.Context, id string, post *models.ScheduledPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			// Re-insert so a changed ScheduledAt keeps the collection sorted.
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			r.insertSorted(*post)
			return nil
		}
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.ScheduledPost, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			p := r.posts[i]
			return &p, true, nil
		}
	}
	return nil, false, nil
}

func (r *postRepository) List(ctx context.Context) ([]*models.ScheduledPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.ScheduledPost, 0, len(r.posts))
	for i := range r.posts {
		p := r.posts[i]
		out = append(out, &p)
	}
	return out, nil
}

func (r *postRepository) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts[i].Status = status
			return nil
		}
	}
	return nil
}
