// application/serviceimpl/user_service.go
package serviceimpl

import (
	"strings"

	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/models"
	"github.com/driftchat/gofiber-dm-api/domain/repository"
	"github.com/driftchat/gofiber-dm-api/domain/service"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) service.UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, service.ErrUserNotFound
	}
	return user, nil
}

func (s *userService) UpdateProfile(userID uuid.UUID, name, avatarURL *string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, service.ErrUserNotFound
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, service.ErrInvalidInput
		}
		user.Name = trimmed
	}
	if avatarURL != nil {
		user.AvatarURL = *avatarURL
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Search(query string, excludeID uuid.UUID) ([]*models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*models.User{}, nil
	}
	return s.userRepo.Search(query, excludeID, 20)
}
