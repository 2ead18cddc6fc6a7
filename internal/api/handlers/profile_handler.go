package handlers

import (
	"github.com/anotoria/Zenith-AI/internal/service"
	"github.com/anotoria/Zenith-AI/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

// ProfileHandler exposes the social integrations (Settings view).
type ProfileHandler struct {
	s service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{s: service}
}

func (h *ProfileHandler) ListProfiles(c *fiber.Ctx) error {
	profiles, err := h.s.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list social profiles",
		})
	}

	return c.Status(fiber.StatusOK).JSON(profiles)
}

func (h *ProfileHandler) ToggleConnection(c *fiber.Ctx) error {
	var toggle transfer.ConnectionToggle
	if err := c.BodyParser(&toggle); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	profile, err := h.s.ToggleConnection(c.Context(), toggle.ProfileID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *ProfileHandler) UpdateFacebookConfig(c *fiber.Ctx) error {
	var fc transfer.FacebookConfigUpdate
	if err := c.BodyParser(&fc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	if err := h.s.UpdateFacebookConfig(c.Context(), &fc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *ProfileHandler) UpdateWordpressConfig(c *fiber.Ctx) error {
	var wc transfer.WordpressConfigUpdate
	if err := c.BodyParser(&wc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	if err := h.s.UpdateWordpressConfig(c.Context(), &wc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
