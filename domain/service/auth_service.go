// domain/service/auth_service.go
package service

import (
	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/models"
)

type AuthService interface {
	Register(name, email, password string) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)

	// VerifyToken turns a presented bearer credential into a stable user id.
	// Both the HTTP middleware and the websocket handshake go through this.
	VerifyToken(token string) (uuid.UUID, error)
}
