// interfaces/api/handler/presence_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/service"
)

type PresenceHandler struct {
	presenceService service.PresenceService
}

func NewPresenceHandler(presenceService service.PresenceService) *PresenceHandler {
	return &PresenceHandler{presenceService: presenceService}
}

// GetPresence serves the online flag and last-seen time from the Redis mirror
// for clients polling over HTTP instead of holding a connection.
func (h *PresenceHandler) GetPresence(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return errorResponse(c, service.ErrInvalidInput)
	}

	online, err := h.presenceService.IsUserOnline(userID)
	if err != nil {
		return errorResponse(c, err)
	}

	lastSeen, err := h.presenceService.LastSeen(userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user_id":   userID.String(),
			"online":    online,
			"last_seen": lastSeen,
		},
	})
}
