// domain/service/user_service.go
package service

import (
	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/models"
)

type UserService interface {
	GetProfile(userID uuid.UUID) (*models.User, error)
	UpdateProfile(userID uuid.UUID, name, avatarURL *string) (*models.User, error)
	Search(query string, excludeID uuid.UUID) ([]*models.User, error)
}
