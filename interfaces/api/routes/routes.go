// interfaces/api/routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driftchat/gofiber-dm-api/interfaces/api/handler"
	"github.com/driftchat/gofiber-dm-api/interfaces/api/middleware"
)

// SetupRoutes mounts every request/response endpoint of the application.
func SetupRoutes(
	app *fiber.App,
	auth *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	friendHandler *handler.FriendHandler,
	messageHandler *handler.MessageHandler,
	presenceHandler *handler.PresenceHandler,
) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "API is running",
		})
	})

	SetupAuthRoutes(api, authHandler)
	SetupUserRoutes(api, auth, userHandler)
	SetupFriendRoutes(api, auth, friendHandler)
	SetupMessageRoutes(api, auth, messageHandler)
	SetupPresenceRoutes(api, auth, presenceHandler)
}
