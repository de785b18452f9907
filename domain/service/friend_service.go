// domain/service/friend_service.go
package service

import (
	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/models"
)

// Friend request actions.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

type FriendService interface {
	// SendRequest creates a pending request from fromID to toID and notifies
	// the recipient if online. Fails with ErrSelfRequest, ErrAlreadyFriends,
	// or ErrRequestExists; a duplicate racing past the pre-checks is caught by
	// the store's uniqueness constraint and still surfaces as ErrRequestExists.
	SendRequest(fromID, toID uuid.UUID) (*models.FriendRequest, error)

	// ListRequests returns pending requests addressed to the user and pending
	// requests the user sent.
	ListRequests(userID uuid.UUID) (incoming, outgoing []*models.FriendRequest, err error)

	// ActOnRequest accepts or rejects a pending request. Only the recipient
	// may act (ErrNotAuthorized otherwise). Accepting makes the friendship
	// mutual in a single transaction and notifies the requester if online.
	ActOnRequest(requestID, actorID uuid.UUID, action string) (*models.FriendRequest, error)

	// Unfriend removes the mutual friendship and purges every request row
	// between the pair so a fresh request is not blocked by a stale one.
	// Idempotent; returns the number of purged request rows.
	Unfriend(userID, friendID uuid.UUID) (int64, error)

	ListFriends(userID uuid.UUID) ([]*models.User, error)
}
