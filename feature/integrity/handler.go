package integrity

import (
	"catalog-manager/core/logger"
	"catalog-manager/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/sources", h.HandleSourcesCheck)
	group.Get("/bucket", h.HandleBucketCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks every configured source and the export bucket.
// @Tags integrity
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	sources := h.service.CheckSources(ctx)
	report["sources"] = sources
	report["healthy"] = checks.Healthy(sources)

	if bucket, err := h.service.CheckBucket(ctx, false); err != nil {
		report["bucket"] = map[string]interface{}{"status": "error", "error": err.Error()}
		report["healthy"] = false
	} else {
		report["bucket"] = bucket
		if bucket.Status == checks.BucketMissing {
			report["healthy"] = false
		}
	}

	return c.JSON(report)
}

// HandleSourcesCheck checks the configured sources.
// @Summary Check Sources
// @Description Reads every configured source and reports missing data or columns.
// @Tags integrity
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} checks.SourceReport "Source Reports"
// @Router /integrity/sources [get]
func (h *Handler) HandleSourcesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	reports := h.service.CheckSources(c.Context())
	for _, r := range reports {
		if r.Status != checks.StatusOK {
			l.Warn("Source check failed",
				zap.String("source", r.Name),
				zap.String("status", r.Status),
				zap.Strings("missing_columns", r.MissingColumns),
			)
		}
	}

	return c.JSON(reports)
}

// HandleBucketCheck checks and optionally creates the export bucket.
// @Summary Check Bucket
// @Description Checks if the storage bucket exists. Optionally creates it.
// @Tags integrity
// @Produce json
// @Security ApiKeyAuth
// @Param fix query boolean false "Create the bucket if missing"
// @Success 200 {object} checks.BucketReport "Bucket Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/bucket [get]
func (h *Handler) HandleBucketCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckBucket(c.Context(), fix)
	if err != nil {
		l.Error("Bucket check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}
