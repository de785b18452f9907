// domain/repository/friend_request_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/models"
)

type FriendRequestRepository interface {
	Create(request *models.FriendRequest) error
	FindByID(id uuid.UUID) (*models.FriendRequest, error)

	// FindPending returns the pending request for the ordered (from, to) pair,
	// or nil when none exists.
	FindPending(fromID, toID uuid.UUID) (*models.FriendRequest, error)

	// PendingForUser returns pending requests addressed to the user (incoming)
	// and pending requests the user sent (outgoing), with From/To expanded.
	PendingForUser(userID uuid.UUID) (incoming, outgoing []*models.FriendRequest, err error)

	// Accept marks the request accepted, inserts both directions of the
	// friendship edge, and resolves any reverse pending request between the
	// same pair, all in one transaction.
	Accept(request *models.FriendRequest) error

	UpdateStatus(id uuid.UUID, status string) error

	// PurgePair removes both friendship edges and deletes every request row
	// between the unordered pair in one transaction. Returns the number of
	// request rows deleted.
	PurgePair(userID, friendID uuid.UUID) (int64, error)
}
