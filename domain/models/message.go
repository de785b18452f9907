// domain/models/message.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Message - a direct message between two users. The payload is either text
// (Body) or a reference to a stored audio asset (AudioURL + AudioDuration).
//
// Delivered means the server handed the message to the recipient's live
// connection at send time; it is evaluated once and never re-checked, so a
// message sent to an offline recipient keeps delivered=false even after the
// recipient fetches it later. Read is flipped in bulk by the recipient.
type Message struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FromID        uuid.UUID `json:"from_id" gorm:"type:uuid;not null;index:idx_messages_thread"`
	ToID          uuid.UUID `json:"to_id" gorm:"type:uuid;not null;index:idx_messages_thread"`
	Body          string    `json:"body,omitempty" gorm:"type:text"`
	AudioURL      string    `json:"audio_url,omitempty" gorm:"type:text"`
	AudioDuration int       `json:"audio_duration,omitempty" gorm:"default:0"` // seconds
	Delivered     bool      `json:"delivered" gorm:"default:false"`
	Read          bool      `json:"read" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now();index:idx_messages_thread"`

	// Associations
	From *User `json:"from,omitempty" gorm:"foreignkey:FromID"`
	To   *User `json:"to,omitempty" gorm:"foreignkey:ToID"`
}

// TableName - table name in the database
func (Message) TableName() string {
	return "messages"
}
