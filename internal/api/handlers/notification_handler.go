package handlers

import (
	"github.com/anotoria/Zenith-AI/internal/notify"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	n *notify.Notifier
}

func NewNotificationHandler(notifier *notify.Notifier) *NotificationHandler {
	return &NotificationHandler{n: notifier}
}

func (h *NotificationHandler) GetNotification(c *fiber.Ctx) error {
	current, ok := h.n.Current()
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(fiber.StatusOK).JSON(current)
}
