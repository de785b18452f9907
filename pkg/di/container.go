// pkg/di/container.go
package di

import (
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/driftchat/gofiber-dm-api/application/serviceimpl"
	"github.com/driftchat/gofiber-dm-api/domain/port"
	"github.com/driftchat/gofiber-dm-api/domain/repository"
	"github.com/driftchat/gofiber-dm-api/domain/service"
	"github.com/driftchat/gofiber-dm-api/infrastructure/adapter"
	"github.com/driftchat/gofiber-dm-api/infrastructure/persistence/postgres"
	"github.com/driftchat/gofiber-dm-api/infrastructure/presence"
	"github.com/driftchat/gofiber-dm-api/interfaces/api/handler"
	"github.com/driftchat/gofiber-dm-api/interfaces/api/middleware"
	"github.com/driftchat/gofiber-dm-api/interfaces/websocket"
)

// Container holds all application dependencies.
type Container struct {
	// Repositories
	UserRepo          repository.UserRepository
	FriendRequestRepo repository.FriendRequestRepository
	MessageRepo       repository.MessageRepository

	// WebSocket components
	WebSocketHub *websocket.Hub
	Notifier     port.Notifier

	// Services
	AuthService     service.AuthService
	UserService     service.UserService
	FriendService   service.FriendService
	MessageService  service.MessageService
	PresenceService service.PresenceService

	// Handlers
	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	FriendHandler   *handler.FriendHandler
	MessageHandler  *handler.MessageHandler
	PresenceHandler *handler.PresenceHandler

	// Middleware
	AuthMiddleware *middleware.AuthMiddleware

	RedisClient *redis.Client
}

// NewContainer wires the whole dependency graph. The hub is created first and
// the services that push through it are injected afterwards via setters,
// because services need the notifier and the notifier wraps the hub.
func NewContainer(db *gorm.DB, redisClient *redis.Client, jwtSecret string) *Container {
	container := &Container{RedisClient: redisClient}

	// Repositories
	container.UserRepo = postgres.NewUserRepository(db)
	container.FriendRequestRepo = postgres.NewFriendRequestRepository(db)
	container.MessageRepo = postgres.NewMessageRepository(db)

	// Hub and the one-way notification capability over it
	container.WebSocketHub = websocket.NewHub()
	container.Notifier = adapter.NewNotifierAdapter(container.WebSocketHub)

	// Services
	container.AuthService = serviceimpl.NewAuthService(container.UserRepo, jwtSecret)
	container.UserService = serviceimpl.NewUserService(container.UserRepo)
	container.FriendService = serviceimpl.NewFriendService(
		container.FriendRequestRepo,
		container.UserRepo,
		container.Notifier,
	)
	container.MessageService = serviceimpl.NewMessageService(
		container.MessageRepo,
		container.Notifier,
	)
	container.PresenceService = presence.NewRedisPresenceService(redisClient)

	// Close the cycle: the hub's inbound handlers call back into services.
	container.WebSocketHub.SetMessageService(container.MessageService)
	container.WebSocketHub.SetPresenceService(container.PresenceService)

	// Handlers and middleware
	container.AuthMiddleware = middleware.NewAuthMiddleware(container.AuthService)
	container.AuthHandler = handler.NewAuthHandler(container.AuthService)
	container.UserHandler = handler.NewUserHandler(container.UserService)
	container.FriendHandler = handler.NewFriendHandler(container.FriendService)
	container.MessageHandler = handler.NewMessageHandler(container.MessageService)
	container.PresenceHandler = handler.NewPresenceHandler(container.PresenceService)

	return container
}
