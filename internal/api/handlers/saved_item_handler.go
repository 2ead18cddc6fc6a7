package handlers

import (
	"github.com/anotoria/Zenith-AI/internal/service"
	"github.com/anotoria/Zenith-AI/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type SavedItemHandler struct {
	s service.SavedItemService
}

func NewSavedItemHandler(service service.SavedItemService) *SavedItemHandler {
	return &SavedItemHandler{s: service}
}

func (h *SavedItemHandler) ListItems(c *fiber.Ctx) error {
	userID := GetUserID(c)

	items, err := h.s.ListByUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list saved items",
		})
	}

	return c.Status(fiber.StatusOK).JSON(items)
}

func (h *SavedItemHandler) SaveItem(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var sc transfer.SavedItemCreation
	if err := c.BodyParser(&sc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	item, err := h.s.Save(c.Context(), userID, &sc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(item)
}
