// interfaces/api/routes/presence_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driftchat/gofiber-dm-api/interfaces/api/handler"
	"github.com/driftchat/gofiber-dm-api/interfaces/api/middleware"
)

// SetupPresenceRoutes mounts the presence polling endpoint.
func SetupPresenceRoutes(router fiber.Router, auth *middleware.AuthMiddleware, presenceHandler *handler.PresenceHandler) {
	presence := router.Group("/presence")
	presence.Use(auth.Protected())

	presence.Get("/:userId", presenceHandler.GetPresence)
}
