// domain/repository/message_repository.go
package repository

import (
	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/models"
)

type MessageRepository interface {
	Create(message *models.Message) error
	MarkDelivered(id uuid.UUID) error

	// Thread returns the two-party conversation in chronological order
	// (oldest first) plus the total row count for paging.
	Thread(userID, withUserID uuid.UUID, limit, offset int) ([]*models.Message, int64, error)

	// MarkThreadRead flips read=true on every unread message from fromID to
	// toID and returns how many rows changed.
	MarkThreadRead(fromID, toID uuid.UUID) (int64, error)
}
