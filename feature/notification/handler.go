package notification

import (
	"github.com/avensia/inriver-bynder/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the notification intake.
type Handler struct {
	worker *Worker
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(worker *Worker, logger *zap.Logger) *Handler {
	return &Handler{worker: worker, logger: logger}
}

// RegisterRoutes registers the notification routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/notifications", h.HandleNotification)
}

// HandleNotification decodes and processes one push message.
func (h *Handler) HandleNotification(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	n, err := Parse(c.Body())
	if err != nil {
		l.Warn("Rejected notification", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := h.worker.Process(c.Context(), n)
	if err != nil {
		l.Error("Notification processing failed", zap.String("subject", n.Subject), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}
