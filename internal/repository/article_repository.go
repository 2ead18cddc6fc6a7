package repository

import (
	"context"
	"sync"

	"github.com/anotoria/Zenith-AI/internal/models"
)

type ArticleRepository interface {
	// Insert prepends the article, keeping the list most-recent-first.
	Insert(ctx context.Context, article *models.Article) error
	// Replace swaps the article with the given id for the new value.
	// It is a no-op when the id is absent.
	Replace(ctx context.Context, id string, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, bool, error)
	List(ctx context.Context) ([]*models.Article, error)
	ListAutoPosted(ctx context.Context) ([]*models.Article, error)
}

type articleRepository struct {
	mu       sync.RWMutex
	articles []models.Article
}

func NewArticleRepository(seed []models.Article) ArticleRepository {
	r := &articleRepository{}
	r.articles = append(r.articles, seed...)
	return r
}

func (r *articleRepository) Insert(ctx context.Context, article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.articles = append([]models.Article{cloneArticle(article)}, r.articles...)
	return nil
}

func (r *articleRepository) Replace(ctx context.Context, id string, article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.articles {
		if r.articles[i].ID == id {
			r.articles[i] = cloneArticle(article)
			return nil
		}
	}
	return nil
}

func (r *articleRepository) GetByID(ctx context.Context, id string) (*models.Article, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.articles {
		if r.articles[i].ID == id {
			a := cloneArticle(&r.articles[i])
			return &a, true, nil
		}
	}
	return nil, false, nil
}

func (r *articleRepository) List(ctx context.Context) ([]*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Article, 0, len(r.articles))
	for i := range r.articles {
		a := cloneArticle(&r.articles[i])
		out = append(out, &a)
	}
	return out, nil
}

func (r *articleRepository) ListAutoPosted(ctx context.Context) ([]*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Article
	for i := range r.articles {
		if r.articles[i].AutoPostStatus == "" || r.articles[i].AutoPostStatus == models.AutoPostStatusPending {
			continue
		}
		a := cloneArticle(&r.articles[i])
		out = append(out, &a)
	}
	return out, nil
}

// cloneArticle copies the struct and its slices so callers never alias
// repository-owned memory.
func cloneArticle(a *models.Article) models.Article {
	c := *a
	if a.Copies != nil {
		c.Copies = append([]models.Copy(nil), a.Copies...)
	}
	if a.Images != nil {
		c.Images = append([]models.ArticleImage(nil), a.Images...)
	}
	return c
}
