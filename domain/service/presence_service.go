// domain/service/presence_service.go
package service

import (
	"time"

	"github.com/google/uuid"
)

// PresenceService mirrors online state into Redis for the REST presence
// endpoint. The in-memory hub registry stays authoritative for delivery
// decisions; this mirror only backs polling clients and last-seen display.
type PresenceService interface {
	SetUserOnline(userID uuid.UUID) error
	SetUserOffline(userID uuid.UUID) error
	IsUserOnline(userID uuid.UUID) (bool, error)
	LastSeen(userID uuid.UUID) (*time.Time, error)
}
