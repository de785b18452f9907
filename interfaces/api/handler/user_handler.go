// interfaces/api/handler/user_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driftchat/gofiber-dm-api/domain/dto"
	"github.com/driftchat/gofiber-dm-api/domain/service"
	"github.com/driftchat/gofiber-dm-api/interfaces/api/middleware"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.ToUserSummary(user),
	})
}

type updateProfileRequest struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, service.ErrInvalidInput)
	}

	user, err := h.userService.UpdateProfile(userID, req.Name, req.AvatarURL)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.ToUserSummary(user),
	})
}

func (h *UserHandler) Search(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	users, err := h.userService.Search(c.Query("q"), userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.ToUserSummaries(users),
	})
}
