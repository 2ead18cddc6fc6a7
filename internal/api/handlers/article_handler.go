package handlers

import (
	"errors"
	"log/slog"

	"github.com/anotoria/Zenith-AI/internal/service"
	"github.com/anotoria/Zenith-AI/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type ArticleHandler struct {
	s     service.ArticleService
	sync  service.SyncService
	sched service.SchedulerService
}

func NewArticleHandler(s service.ArticleService, sync service.SyncService, sched service.SchedulerService) *ArticleHandler {
	return &ArticleHandler{s: s, sync: sync, sched: sched}
}

func (h *ArticleHandler) ListArticles(c *fiber.Ctx) error {
	if c.QueryBool("auto", false) {
		articles, err := h.s.AutoPostHistory(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unable to list auto-posted articles",
			})
		}
		return c.Status(fiber.StatusOK).JSON(articles)
	}

	articles, err := h.s.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list articles",
		})
	}
	return c.Status(fiber.StatusOK).JSON(articles)
}

// SyncAndAutoPost runs one sync cycle: detect a new blog article, generate
// copy, publish to the configured page.
func (h *ArticleHandler) SyncAndAutoPost(c *fiber.Ctx) error {
	result, err := h.sync.RunSync(c.Context())
	if err != nil {
		return c.Status(syncStatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func syncStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrSourceNotConnected),
		errors.Is(err, service.ErrDestinationNotConfigured):
		return fiber.StatusPreconditionFailed
	case errors.Is(err, service.ErrSyncInFlight):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// SchedulePost turns a curated article into a scheduled post.
func (h *ArticleHandler) SchedulePost(c *fiber.Ctx) error {
	articleID := c.Params("id")

	post, err := h.sched.SchedulePost(c.Context(), articleID)
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrIncompleteSelection), errors.Is(err, service.ErrSelectionNotFound):
			status = fiber.StatusUnprocessableEntity
		case errors.Is(err, service.ErrArticleNotFound):
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *ArticleHandler) GenerateCopies(c *fiber.Ctx) error {
	articleID := c.Params("id")

	article, err := h.s.GenerateCopies(c.Context(), articleID)
	if err != nil {
		slog.Error(err.Error())
		status := fiber.StatusInternalServerError
		if errors.Is(err, service.ErrArticleNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"error": "Unable to generate copies",
		})
	}

	return c.Status(fiber.StatusOK).JSON(article)
}

func (h *ArticleHandler) SelectCopy(c *fiber.Ctx) error {
	articleID := c.Params("id")

	var selection transfer.CopySelection
	if err := c.BodyParser(&selection); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	if err := h.s.SelectCopy(c.Context(), articleID, selection.CopyID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *ArticleHandler) SelectImage(c *fiber.Ctx) error {
	articleID := c.Params("id")

	var selection transfer.ImageSelection
	if err := c.BodyParser(&selection); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	if err := h.s.SelectImage(c.Context(), articleID, selection.ImageID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *ArticleHandler) UploadImages(c *fiber.Ctx) error {
	articleID := c.Params("id")

	form, err := c.MultipartForm()
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse form",
		})
	}

	files := form.File["files"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No files selected",
		})
	}

	article, err := h.s.UploadImages(c.Context(), articleID, files)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(article)
}
