package http

import (
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/prescreen"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type prescreenRequest struct {
	Texts []string `json:"texts"`
}

type prescreenResponse struct {
	Verdicts []prescreen.Verdict `json:"verdicts"`
}

type prescreenHandler struct {
	logger *logrus.Logger
	scorer *prescreen.Scorer
}

func NewPrescreenHandler(logger *logrus.Logger, scorer *prescreen.Scorer) Handler {
	return &prescreenHandler{
		logger: logger,
		scorer: scorer,
	}
}

// Handle @Summary Rule-only toxicity estimate
// @Description Scores texts with the deterministic rule stage, without calling the contextual classifier
// @Tags Prescreen
// @Accept json
// @Produce json
// @Param request body prescreenRequest true "Texts to score"
// @Success 200 {object} prescreenResponse "Per-text verdicts in input order"
// @Failure 400 {object} map[string]interface{} "Empty input"
// @Router /api/v1/prescreen [post]
func (h *prescreenHandler) Handle(c *fiber.Ctx) error {
	var req prescreenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if len(req.Texts) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "texts is required"})
	}

	verdicts := make([]prescreen.Verdict, 0, len(req.Texts))
	for _, text := range req.Texts {
		verdicts = append(verdicts, h.scorer.Score(text))
	}

	return c.Status(fiber.StatusOK).JSON(prescreenResponse{Verdicts: verdicts})
}
