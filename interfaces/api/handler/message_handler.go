// interfaces/api/handler/message_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/dto"
	"github.com/driftchat/gofiber-dm-api/domain/service"
	"github.com/driftchat/gofiber-dm-api/interfaces/api/middleware"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// GetThread returns the chronological two-party thread with the given user.
func (h *MessageHandler) GetThread(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	withUserID, err := uuid.Parse(c.Params("withUserId"))
	if err != nil {
		return errorResponse(c, service.ErrInvalidInput)
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	messages, total, err := h.messageService.Thread(userID, withUserID, limit, offset)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    messages,
		"total":   total,
	})
}

// Send is the request/response fallback for clients without an open
// connection. Same pipeline as the real-time path, live push included.
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var input service.SendMessageInput
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, service.ErrInvalidInput)
	}

	message, err := h.messageService.Send(userID, input)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.ToMessageAck(message),
	})
}

type markReadRequest struct {
	WithUserID uuid.UUID `json:"with_user_id"`
}

// MarkRead bulk-marks everything from the given sender as read.
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var req markReadRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, service.ErrInvalidInput)
	}

	updated, err := h.messageService.MarkRead(userID, req.WithUserID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"updated": updated,
		},
	})
}
