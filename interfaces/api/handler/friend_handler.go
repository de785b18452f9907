// interfaces/api/handler/friend_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/dto"
	"github.com/driftchat/gofiber-dm-api/domain/service"
	"github.com/driftchat/gofiber-dm-api/interfaces/api/middleware"
)

type FriendHandler struct {
	friendService service.FriendService
}

func NewFriendHandler(friendService service.FriendService) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

// GetFriends returns the authenticated user's friend list.
func (h *FriendHandler) GetFriends(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	friends, err := h.friendService.ListFriends(userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.ToUserSummaries(friends),
	})
}

// GetRequests returns pending requests, incoming and outgoing.
func (h *FriendHandler) GetRequests(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	incoming, outgoing, err := h.friendService.ListRequests(userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"incoming": dto.ToFriendRequestResponses(incoming),
			"outgoing": dto.ToFriendRequestResponses(outgoing),
		},
	})
}

type sendRequestRequest struct {
	ToUserID uuid.UUID `json:"to_user_id"`
}

// SendRequest creates a friend request and notifies the recipient if online.
func (h *FriendHandler) SendRequest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var req sendRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, service.ErrInvalidInput)
	}

	request, err := h.friendService.SendRequest(userID, req.ToUserID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.ToFriendRequestResponse(request),
	})
}

type actOnRequestRequest struct {
	RequestID uuid.UUID `json:"request_id"`
	Action    string    `json:"action"`
}

// ActOnRequest accepts or rejects a pending request addressed to the caller.
func (h *FriendHandler) ActOnRequest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var req actOnRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, service.ErrInvalidInput)
	}
	if req.RequestID == uuid.Nil {
		return errorResponse(c, service.ErrInvalidInput)
	}

	request, err := h.friendService.ActOnRequest(req.RequestID, userID, req.Action)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.ToFriendRequestResponse(request),
	})
}

// Unfriend removes the friendship and reports how many request rows the purge
// removed.
func (h *FriendHandler) Unfriend(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	friendID, err := uuid.Parse(c.Params("friendId"))
	if err != nil {
		return errorResponse(c, service.ErrInvalidInput)
	}

	purged, err := h.friendService.Unfriend(userID, friendID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"purged_requests": purged,
		},
	})
}
