package repository

import (
	"context"
	"testing"

	"github.com/anotoria/Zenith-AI/internal/models"
)

func TestArticleRepositoryInsertPrepends(t *testing.T) {
	t.Parallel()

	r := NewArticleRepository(nil)
	ctx := context.Background()

	if err := r.Insert(ctx, &models.Article{ID: "a1", Title: "first"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := r.Insert(ctx, &models.Article{ID: "a2", Title: "second"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	articles, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].ID != "a2" || articles[1].ID != "a1" {
		t.Fatalf("expected newest first, got %s then %s", articles[0].ID, articles[1].ID)
	}
}

func TestArticleRepositoryReplace(t *testing.T) {
	t.Parallel()

	r := NewArticleRepository([]models.Article{{ID: "a1", Title: "old"}})
	ctx := context.Background()

	updated := &models.Article{ID: "a1", Title: "new", AutoPostStatus: models.AutoPostStatusSuccess}
	if err := r.Replace(ctx, "a1", updated); err != nil {
		t.Fatalf("replace: %v", err)
	}
	// Replacing twice with the same value must not change the outcome.
	if err := r.Replace(ctx, "a1", updated); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, ok, err := r.GetByID(ctx, "a1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected article to exist")
	}
	if got.Title != "new" || got.AutoPostStatus != models.AutoPostStatusSuccess {
		t.Fatalf("unexpected article after replace: %+v", got)
	}

	articles, _ := r.List(ctx)
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
}

func TestArticleRepositoryReplaceAbsentIsNoop(t *testing.T) {
	t.Parallel()

	r := NewArticleRepository([]models.Article{{ID: "a1", Title: "keep"}})
	ctx := context.Background()

	if err := r.Replace(ctx, "missing", &models.Article{ID: "missing"}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	articles, _ := r.List(ctx)
	if len(articles) != 1 || articles[0].ID != "a1" {
		t.Fatalf("expected repository unchanged, got %+v", articles)
	}

	if _, ok, _ := r.GetByID(ctx, "missing"); ok {
		t.Fatal("absent id must stay absent")
	}
}

func TestArticleRepositoryReturnsCopies(t *testing.T) {
	t.Parallel()

	r := NewArticleRepository([]models.Article{{
		ID:     "a1",
		Copies: []models.Copy{{ID: "c1", Text: "original"}},
	}})
	ctx := context.Background()

	got, _, _ := r.GetByID(ctx, "a1")
	got.Copies[0].Text = "mutated"
	got.Title = "mutated"

	fresh, _, _ := r.GetByID(ctx, "a1")
	if fresh.Copies[0].Text != "original" || fresh.Title != "" {
		t.Fatalf("caller mutation leaked into repository: %+v", fresh)
	}
}

func TestArticleRepositoryListAutoPosted(t *testing.T) {
	t.Parallel()

	r := NewArticleRepository([]models.Article{
		{ID: "a1", AutoPostStatus: models.AutoPostStatusSuccess},
		{ID: "a2", AutoPostStatus: models.AutoPostStatusPending},
		{ID: "a3"},
		{ID: "a4", AutoPostStatus: models.AutoPostStatusFailed},
	})

	got, err := r.ListAutoPosted(context.Background())
	if err != nil {
		t.Fatalf("list auto posted: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 settled articles, got %d", len(got))
	}
	if got[0].ID != "a1" || got[1].ID != "a4" {
		t.Fatalf("unexpected articles: %s, %s", got[0].ID, got[1].ID)
	}
}
