// application/serviceimpl/message_service.go
package serviceimpl

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/models"
	"github.com/driftchat/gofiber-dm-api/domain/port"
	"github.com/driftchat/gofiber-dm-api/domain/repository"
	"github.com/driftchat/gofiber-dm-api/domain/service"
)

type messageService struct {
	messageRepo repository.MessageRepository
	notifier    port.Notifier
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	notifier port.Notifier,
) service.MessageService {
	return &messageService{
		messageRepo: messageRepo,
		notifier:    notifier,
	}
}

// Send persists first, then attempts the live push. The delivered flag is
// decided by a single presence lookup at this instant and never re-evaluated:
// a message sent while the recipient is offline stays delivered=false even
// after they fetch it later.
func (s *messageService) Send(fromID uuid.UUID, input service.SendMessageInput) (*models.Message, error) {
	if input.To == uuid.Nil {
		return nil, service.ErrInvalidInput
	}
	hasText := strings.TrimSpace(input.Body) != ""
	hasAudio := input.AudioURL != ""
	if !hasText && !hasAudio {
		return nil, service.ErrInvalidInput
	}

	message := &models.Message{
		ID:            uuid.New(),
		FromID:        fromID,
		ToID:          input.To,
		Body:          input.Body,
		AudioURL:      input.AudioURL,
		AudioDuration: input.AudioDuration,
		Delivered:     false,
		CreatedAt:     time.Now(),
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	// Best-effort push. A true return means the registry had a connection for
	// the recipient, not that the client process received anything.
	if s.notifier.NotifyUser(input.To, port.EventMessageNew, message) {
		message.Delivered = true
		if err := s.messageRepo.MarkDelivered(message.ID); err != nil {
			// The message is persisted and was pushed; losing the flag update
			// is not worth failing the send for.
			log.Printf("mark delivered %s: %v", message.ID, err)
		}
	}

	return message, nil
}

// MarkRead is a coarse pairwise operation: every unread message from senderID
// to readerID flips at once. There are no per-message read receipts.
func (s *messageService) MarkRead(readerID, senderID uuid.UUID) (int64, error) {
	if senderID == uuid.Nil {
		return 0, service.ErrInvalidInput
	}

	updated, err := s.messageRepo.MarkThreadRead(senderID, readerID)
	if err != nil {
		return 0, err
	}

	s.notifier.NotifyUser(senderID, port.EventMessageRead, map[string]interface{}{
		"by": readerID.String(),
	})

	return updated, nil
}

func (s *messageService) Thread(userID, withUserID uuid.UUID, limit, offset int) ([]*models.Message, int64, error) {
	if withUserID == uuid.Nil {
		return nil, 0, service.ErrInvalidInput
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.messageRepo.Thread(userID, withUserID, limit, offset)
}
