// interfaces/api/routes/friend_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driftchat/gofiber-dm-api/interfaces/api/handler"
	"github.com/driftchat/gofiber-dm-api/interfaces/api/middleware"
)

// SetupFriendRoutes mounts the friendship endpoints. These mirror the
// real-time friend operations for clients without an open connection.
func SetupFriendRoutes(router fiber.Router, auth *middleware.AuthMiddleware, friendHandler *handler.FriendHandler) {
	friends := router.Group("/friends")
	friends.Use(auth.Protected())

	// Friend list
	friends.Get("/", friendHandler.GetFriends)

	// Pending requests, incoming and outgoing
	friends.Get("/requests", friendHandler.GetRequests)

	// Send a friend request
	friends.Post("/request", friendHandler.SendRequest)

	// Accept or reject a request addressed to the caller
	friends.Post("/request/action", friendHandler.ActOnRequest)

	// Remove a friend and purge all request rows for the pair
	friends.Delete("/:friendId", friendHandler.Unfriend)
}
