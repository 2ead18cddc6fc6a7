package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"

	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/anotoria/Zenith-AI/internal/repository"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type ArticleService interface {
	List(ctx context.Context) ([]*models.Article, error)
	AutoPostHistory(ctx context.Context) ([]*models.Article, error)
	GenerateCopies(ctx context.Context, articleID string) (*models.Article, error)
	SelectCopy(ctx context.Context, articleID, copyID string) error
	SelectImage(ctx context.Context, articleID, imageID string) error
	UploadImages(ctx context.Context, articleID string, files []*multipart.FileHeader) (*models.Article, error)
}

type articleService struct {
	ar  repository.ArticleRepository
	gen ContentGenerator
	r2  R2Service
}

func NewArticleService(ar repository.ArticleRepository, gen ContentGenerator, r2 R2Service) ArticleService {
	return &articleService{
		ar:  ar,
		gen: gen,
		r2:  r2,
	}
}

func (s *articleService) List(ctx context.Context) ([]*models.Article, error) {
	return s.ar.List(ctx)
}

func (s *articleService) AutoPostHistory(ctx context.Context) ([]*models.Article, error) {
	return s.ar.ListAutoPosted(ctx)
}

// GenerateCopies re-runs the content generator for an existing article and
// replaces its candidate list.
func (s *articleService) GenerateCopies(ctx context.Context, articleID string) (*models.Article, error) {
	article, ok, err := s.ar.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrArticleNotFound
	}

	article.IsGenerating = true
	if err := s.ar.Replace(ctx, article.ID, article); err != nil {
		return nil, err
	}

	copies, err := s.gen.Generate(ctx, article.Title)

	article.IsGenerating = false
	if err != nil {
		if rerr := s.ar.Replace(ctx, article.ID, article); rerr != nil {
			slog.Error("unable to clear generating flag", "article_id", article.ID, "error", rerr)
		}
		return nil, err
	}

	article.Copies = copies
	article.SelectedCopyID = ""
	if err := s.ar.Replace(ctx, article.ID, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) SelectCopy(ctx context.Context, articleID, copyID string) error {
	article, ok, err := s.ar.GetByID(ctx, articleID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrArticleNotFound
	}

	found := false
	for i := range article.Copies {
		if article.Copies[i].ID == copyID {
			found = true
			break
		}
	}
	if !found {
		return ErrSelectionNotFound
	}

	article.SelectedCopyID = copyID
	return s.ar.Replace(ctx, article.ID, article)
}

func (s *articleService) SelectImage(ctx context.Context, articleID, imageID string) error {
	article, ok, err := s.ar.GetByID(ctx, articleID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrArticleNotFound
	}

	found := false
	for i := range article.Images {
		if article.Images[i].ID == imageID {
			found = true
			break
		}
	}
	if !found {
		return ErrSelectionNotFound
	}

	article.SelectedImageID = imageID
	return s.ar.Replace(ctx, article.ID, article)
}

// UploadImages sniffs, stores and attaches image candidates for an article.
func (s *articleService) UploadImages(ctx context.Context, articleID string, files []*multipart.FileHeader) (*models.Article, error) {
	if len(files) == 0 {
		return nil, errors.New("no files provided")
	}

	article, ok, err := s.ar.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrArticleNotFound
	}

	allowedTypes := map[string]struct{}{
		"jpeg": {}, "jpg": {}, "png": {}, "webp": {},
	}

	for _, file := range files {
		fileContent, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("error opening file: %w", err)
		}

		fileBytes, err := io.ReadAll(fileContent)
		fileContent.Close()
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %w", err)
		}

		fileType, err := filetype.Match(fileBytes)
		if err != nil || fileType == types.Unknown {
			return nil, fmt.Errorf("unsupported file type: %w", err)
		}
		if _, ok := allowedTypes[fileType.Extension]; !ok {
			return nil, fmt.Errorf("file type %s is not allowed", fileType.Extension)
		}

		key, err := gonanoid.New()
		if err != nil {
			return nil, err
		}

		fileURL, err := s.r2.Upload(ctx, key, fileBytes, fileType.MIME.Value)
		if err != nil {
			return nil, fmt.Errorf("error uploading file: %w", err)
		}

		article.Images = append(article.Images, models.ArticleImage{ID: key, URL: fileURL})
	}

	if err := s.ar.Replace(ctx, article.ID, article); err != nil {
		return nil, err
	}

	return article, nil
}
