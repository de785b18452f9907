// interfaces/api/routes/message_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driftchat/gofiber-dm-api/interfaces/api/handler"
	"github.com/driftchat/gofiber-dm-api/interfaces/api/middleware"
)

// SetupMessageRoutes mounts the message endpoints.
func SetupMessageRoutes(router fiber.Router, auth *middleware.AuthMiddleware, messageHandler *handler.MessageHandler) {
	messages := router.Group("/messages")
	messages.Use(auth.Protected())

	messages.Get("/thread/:withUserId", messageHandler.GetThread)
	messages.Post("/send", messageHandler.Send)
	messages.Post("/read", messageHandler.MarkRead)
}
