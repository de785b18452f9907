// domain/dto/friend_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/models"
)

// FriendRequestResponse is a friend request with both parties expanded.
type FriendRequestResponse struct {
	ID        uuid.UUID    `json:"id"`
	From      *UserSummary `json:"from"`
	To        *UserSummary `json:"to"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func ToFriendRequestResponse(request *models.FriendRequest) *FriendRequestResponse {
	if request == nil {
		return nil
	}
	resp := &FriendRequestResponse{
		ID:        request.ID,
		From:      ToUserSummary(request.From),
		To:        ToUserSummary(request.To),
		Status:    request.Status,
		CreatedAt: request.CreatedAt,
		UpdatedAt: request.UpdatedAt,
	}
	// Fall back to bare ids when the association was not loaded.
	if resp.From == nil {
		resp.From = &UserSummary{ID: request.FromID}
	}
	if resp.To == nil {
		resp.To = &UserSummary{ID: request.ToID}
	}
	return resp
}

func ToFriendRequestResponses(requests []*models.FriendRequest) []*FriendRequestResponse {
	responses := make([]*FriendRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, ToFriendRequestResponse(request))
	}
	return responses
}
