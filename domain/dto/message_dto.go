// domain/dto/message_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/models"
)

// MessageAck is what the sender gets back from a send: proof the server
// accepted and persisted the message, not that the recipient saw it.
type MessageAck struct {
	ID        uuid.UUID `json:"id"`
	Delivered bool      `json:"delivered"`
	CreatedAt time.Time `json:"created_at"`
}

func ToMessageAck(message *models.Message) *MessageAck {
	return &MessageAck{
		ID:        message.ID,
		Delivered: message.Delivered,
		CreatedAt: message.CreatedAt,
	}
}
