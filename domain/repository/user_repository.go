// domain/repository/user_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/models"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uuid.UUID) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error

	// Search matches name or email by substring, excluding the searching user.
	Search(query string, excludeID uuid.UUID, limit int) ([]*models.User, error)

	// Friend-set reads. The friendship edges themselves are mutated through
	// FriendRequestRepository so the two directions stay in one transaction.
	Friends(userID uuid.UUID) ([]*models.User, error)
	AreFriends(userID, friendID uuid.UUID) (bool, error)
}
