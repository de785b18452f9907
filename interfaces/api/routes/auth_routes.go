// interfaces/api/routes/auth_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driftchat/gofiber-dm-api/interfaces/api/handler"
)

// SetupAuthRoutes mounts the public authentication endpoints.
func SetupAuthRoutes(router fiber.Router, authHandler *handler.AuthHandler) {
	auth := router.Group("/auth")

	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
}
