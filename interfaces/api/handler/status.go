// interfaces/api/handler/status.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/driftchat/gofiber-dm-api/domain/service"
)

// statusForError maps the service error taxonomy onto HTTP status codes so
// clients can tell "already sent" from a generic failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrSelfRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotAuthorized),
		errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrRequestNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrRequestExists),
		errors.Is(err, service.ErrAlreadyFriends),
		errors.Is(err, service.ErrRequestProcessed),
		errors.Is(err, service.ErrEmailTaken):
		return fiber.StatusConflict
	default:
		// Store failures and the like: retryable server error.
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}
