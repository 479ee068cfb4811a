package handlers

import (
	"fintracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// Summary godoc
// @Summary Dashboard summary
// @Description Totals, category breakdowns, monthly trend, budget statuses, goal progress, upcoming subscriptions and insights, recomputed from the current snapshot
// @Tags reports
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	summary, err := h.reportService.Summary(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to build summary", zap.Error(err))
		return serviceError(c, err, "Failed to build summary")
	}

	return c.JSON(summary)
}
