package tradezone

import (
	"strconv"

	"catalog-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for Tradezone reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the tradezone routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/tradezone")
	group.Post("/reconcile", h.HandleReconcile)
}

// HandleReconcile runs the configured reconciliation and returns its summary.
// @Summary Run Tradezone reconciliation
// @Description Reconciles the configured Tradezone catalog and writes the updated, skipped and no_markup exports. Concurrent calls share one run.
// @Tags tradezone
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} reconcile.Summary "Run summary"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /tradezone/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summary, shared, err := h.service.Trigger(c.Context())
	if err != nil {
		l.Error("Tradezone reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set("X-Run-Shared", strconv.FormatBool(shared))
	return c.JSON(summary)
}
