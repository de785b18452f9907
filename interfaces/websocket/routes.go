// interfaces/websocket/routes.go
package websocket

import (
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/driftchat/gofiber-dm-api/domain/service"
)

// RegisterWebSocketRoutes mounts the upgrade endpoint. The bearer credential
// comes from the handshake (token query param or Authorization header) and is
// verified before the upgrade; a missing or bad credential refuses the
// connection with 401 and no registry side effects.
func RegisterWebSocketRoutes(app *fiber.App, hub *Hub, authService service.AuthService) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		token := c.Query("token")
		if token == "" {
			token = strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "missing token",
			})
		}

		userID, err := authService.VerifyToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "invalid token",
			})
		}

		c.Locals("userID", userID)
		return c.Next()
	})

	app.Get("/ws", websocket.New(hub.HandleConnection))
}
