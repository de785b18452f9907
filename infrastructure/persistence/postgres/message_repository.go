// infrastructure/persistence/postgres/message_repository.go
package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driftchat/gofiber-dm-api/domain/models"
	"github.com/driftchat/gofiber-dm-api/domain/repository"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	return r.db.Create(message).Error
}

func (r *messageRepository) MarkDelivered(id uuid.UUID) error {
	return r.db.Model(&models.Message{}).
		Where("id = ?", id).
		Update("delivered", true).Error
}

// Thread fetches the newest page first, then reverses to chronological order.
func (r *messageRepository) Thread(userID, withUserID uuid.UUID, limit, offset int) ([]*models.Message, int64, error) {
	pair := r.db.Model(&models.Message{}).Where(
		"(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)",
		userID, withUserID, withUserID, userID,
	)

	var count int64
	if err := pair.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var messages []*models.Message
	if err := r.db.Where(
		"(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)",
		userID, withUserID, withUserID, userID,
	).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, count, nil
}

func (r *messageRepository) MarkThreadRead(fromID, toID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Message{}).
		Where("from_id = ? AND to_id = ? AND read = ?", fromID, toID, false).
		Update("read", true)
	return result.RowsAffected, result.Error
}
