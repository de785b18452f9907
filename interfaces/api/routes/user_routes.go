// interfaces/api/routes/user_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driftchat/gofiber-dm-api/interfaces/api/handler"
	"github.com/driftchat/gofiber-dm-api/interfaces/api/middleware"
)

// SetupUserRoutes mounts profile and user search endpoints.
func SetupUserRoutes(router fiber.Router, auth *middleware.AuthMiddleware, userHandler *handler.UserHandler) {
	users := router.Group("/users")
	users.Use(auth.Protected())

	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.UpdateMe)
	users.Get("/search", userHandler.Search)
}
