// domain/dto/user_dto.go
package dto

import (
	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/models"
)

// UserSummary is the expanded form of a user reference at the API boundary.
// Core logic only ever sees ids; handlers normalize to this one shape instead
// of sometimes returning bare ids and sometimes embedded objects.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

func ToUserSummary(user *models.User) *UserSummary {
	if user == nil {
		return nil
	}
	return &UserSummary{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	}
}

func ToUserSummaries(users []*models.User) []*UserSummary {
	summaries := make([]*UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, ToUserSummary(user))
	}
	return summaries
}
