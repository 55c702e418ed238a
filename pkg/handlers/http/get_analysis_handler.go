package http

import (
	app "github.com/euisuk-chung/gemini-hak-creator-hub/pkg/app/analysis"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getAnalysisHandler struct {
	logger  *logrus.Logger
	service *app.Service
}

func NewGetAnalysisHandler(logger *logrus.Logger, service *app.Service) Handler {
	return &getAnalysisHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Retrieve a stored analysis by ID
// @Description Returns a previously stored analysis report
// @Tags Analyses
// @Produce json
// @Param analysis_id path string true "Analysis ID"
// @Success 200 {object} analysis.StoredResult "Stored analysis"
// @Failure 404 {object} map[string]interface{} "Analysis not found"
// @Router /api/v1/analyses/{analysis_id} [get]
func (h *getAnalysisHandler) Handle(c *fiber.Ctx) error {
	analysisID := c.Params("analysis_id")
	if _, err := uuid.Parse(analysisID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid analysis_id format"})
	}

	stored, err := h.service.GetResult(c.Context(), analysisID)
	if err != nil {
		h.logger.WithError(err).WithField("analysis_id", analysisID).Error("failed to get analysis")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(stored)
}
