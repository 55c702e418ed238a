package http

import (
	"errors"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/infra/youtube"
	"github.com/gofiber/fiber/v2"
)

// statusForError maps pipeline error kinds to HTTP statuses. Anything
// unrecognized is a 500.
func statusForError(err error) int {
	switch {
	case domain.IsNotFoundError(err):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNoComments):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRateLimitExceeded),
		errors.Is(err, youtube.ErrQuotaExceeded):
		return fiber.StatusTooManyRequests
	case errors.Is(err, domain.ErrClassifierUnavailable),
		domain.IsMalformedResponseError(err):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
}
