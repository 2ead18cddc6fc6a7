package handlers

import (
	"github.com/anotoria/Zenith-AI/internal/service"
	"github.com/anotoria/Zenith-AI/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type TrailHandler struct {
	s service.TrailService
}

func NewTrailHandler(service service.TrailService) *TrailHandler {
	return &TrailHandler{s: service}
}

func (h *TrailHandler) ListTrails(c *fiber.Ctx) error {
	trails, err := h.s.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list trails",
		})
	}

	return c.Status(fiber.StatusOK).JSON(trails)
}

func (h *TrailHandler) SaveTrail(c *fiber.Ctx) error {
	var tu transfer.TrailUpsert
	if err := c.BodyParser(&tu); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	trail, err := h.s.SaveTrail(c.Context(), &tu)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(trail)
}
