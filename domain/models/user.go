// domain/models/user.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// User - an account in the system. The friends association is mutated only by
// the friendship service; every other field belongs to the account endpoints.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string    `json:"name" gorm:"type:varchar(100);not null"`
	Email        string    `json:"email" gorm:"type:varchar(255);not null;unique"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"`
	AvatarURL    string    `json:"avatar_url,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	Friends []*User `json:"friends,omitempty" gorm:"many2many:user_friends"`
}

// TableName - table name in the database
func (User) TableName() string {
	return "users"
}
