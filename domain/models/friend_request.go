// domain/models/friend_request.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequest statuses. A request is created pending and transitions once to
// accepted or rejected; rows of any status are purged when the pair unfriends.
const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestRejected = "rejected"
)

// FriendRequest - a directed friend request between two users. A partial
// unique index on (from_id, to_id) where status = 'pending' is the hard
// backstop against duplicate pending requests (see database.CreateIndices).
type FriendRequest struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FromID    uuid.UUID `json:"from_id" gorm:"type:uuid;not null;index:idx_friend_requests_pair"`
	ToID      uuid.UUID `json:"to_id" gorm:"type:uuid;not null;index:idx_friend_requests_pair"`
	Status    string    `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	From *User `json:"from,omitempty" gorm:"foreignkey:FromID"`
	To   *User `json:"to,omitempty" gorm:"foreignkey:ToID"`
}

// TableName - table name in the database
func (FriendRequest) TableName() string {
	return "friend_requests"
}
