package http

import (
	app "github.com/euisuk-chung/gemini-hak-creator-hub/pkg/app/analysis"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/infra/youtube"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type analyzeVideoRequest struct {
	VideoURL string `json:"videoUrl"`
}

type analyzeVideoHandler struct {
	logger  *logrus.Logger
	service *app.Service
}

func NewAnalyzeVideoHandler(logger *logrus.Logger, service *app.Service) Handler {
	return &analyzeVideoHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Analyze the comments of a YouTube video
// @Description Runs the full toxicity analysis pipeline and stores the report
// @Tags Analyses
// @Accept json
// @Produce json
// @Param request body analyzeVideoRequest true "Video URL or ID"
// @Success 201 {object} analysis.StoredResult "Stored analysis"
// @Failure 400 {object} map[string]interface{} "Invalid video URL"
// @Failure 422 {object} map[string]interface{} "Video has no comments"
// @Failure 429 {object} map[string]interface{} "Quota or rate limit exceeded"
// @Router /api/v1/analyses [post]
func (h *analyzeVideoHandler) Handle(c *fiber.Ctx) error {
	var req analyzeVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.VideoURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "videoUrl is required"})
	}

	videoID, err := youtube.ExtractVideoID(req.VideoURL)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid youtube video url or id"})
	}

	h.logger.WithFields(logrus.Fields{
		"video_id": videoID,
		"method":   c.Method(),
		"path":     c.Path(),
	}).Info("analysis request received")

	stored, err := h.service.AnalyzeVideo(c.Context(), videoID)
	if err != nil {
		h.logger.WithError(err).WithField("video_id", videoID).Error("analysis failed")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(stored)
}
