// domain/service/message_service.go
package service

import (
	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/models"
)

// SendMessageInput is the payload of a send: text or an audio reference.
type SendMessageInput struct {
	To            uuid.UUID `json:"to"`
	Body          string    `json:"body,omitempty"`
	AudioURL      string    `json:"audio_url,omitempty"`
	AudioDuration int       `json:"audio_duration,omitempty"`
}

type MessageService interface {
	// Send persists the message, then best-effort pushes it to the recipient's
	// live connection; delivered reflects whether the recipient was online at
	// that instant. The returned message is the acknowledgment source — it is
	// produced whether or not the push happened.
	Send(fromID uuid.UUID, input SendMessageInput) (*models.Message, error)

	// MarkRead flips read=true on every unread message from senderID to
	// readerID and notifies the sender if online.
	MarkRead(readerID, senderID uuid.UUID) (int64, error)

	Thread(userID, withUserID uuid.UUID, limit, offset int) ([]*models.Message, int64, error)
}
