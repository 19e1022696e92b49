package sync

import (
	"github.com/avensia/inriver-bynder/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the sync feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/runs", h.HandleRun)
	group.Post("/assets/:id", h.HandleReconcileAsset)
}

type runRequest struct {
	Force bool `json:"force"`
}

// HandleRun triggers one engine pass and returns its summary.
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req runRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	summary, err := h.service.Run(c.Context(), req.Force)
	if err != nil {
		l.Error("Sync run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}

// HandleReconcileAsset reconciles a single asset by id.
func (h *Handler) HandleReconcileAsset(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	outcome, err := h.service.ReconcileAsset(c.Context(), c.Params("id"))
	if err != nil {
		l.Error("Asset reconcile failed", zap.String("asset_id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(outcome)
}
