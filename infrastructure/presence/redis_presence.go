// infrastructure/presence/redis_presence.go
package presence

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/service"
)

const (
	onlineKeyPrefix   = "presence:online:"
	lastSeenKeyPrefix = "presence:last_seen:"

	// Online keys expire on their own so a crashed process cannot leave users
	// permanently "online" in the mirror; the hub refreshes nothing, it just
	// sets on register and deletes on unregister.
	onlineTTL = 24 * time.Hour
)

type redisPresenceService struct {
	client *redis.Client
}

func NewRedisPresenceService(client *redis.Client) service.PresenceService {
	return &redisPresenceService{client: client}
}

func (s *redisPresenceService) SetUserOnline(userID uuid.UUID) error {
	ctx := context.Background()
	return s.client.Set(ctx, onlineKeyPrefix+userID.String(), "1", onlineTTL).Err()
}

func (s *redisPresenceService) SetUserOffline(userID uuid.UUID) error {
	ctx := context.Background()
	now := time.Now().UTC().Format(time.RFC3339)
	if err := s.client.Set(ctx, lastSeenKeyPrefix+userID.String(), now, 0).Err(); err != nil {
		return err
	}
	return s.client.Del(ctx, onlineKeyPrefix+userID.String()).Err()
}

func (s *redisPresenceService) IsUserOnline(userID uuid.UUID) (bool, error) {
	ctx := context.Background()
	_, err := s.client.Get(ctx, onlineKeyPrefix+userID.String()).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *redisPresenceService) LastSeen(userID uuid.UUID) (*time.Time, error) {
	ctx := context.Background()
	value, err := s.client.Get(ctx, lastSeenKeyPrefix+userID.String()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	lastSeen, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &lastSeen, nil
}
