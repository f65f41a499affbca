// File: utils/session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chime/config"
	"chime/models"

	"github.com/go-redis/redis/v8"
)

const WebSessionPrefix = "webSession:"

// SessionStore resolves a session ID to the session blob the identity service
// wrote, or (nil, nil) when no such session exists.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.WebSession, error)
}

// RedisSessionStore implements SessionStore on the shared session Redis DB.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

// Get retrieves a web session from Redis. A hit refreshes the TTL so active
// sessions keep sliding forward, matching the identity service's cookie age.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.WebSession, error) {
	data, err := s.client.Get(ctx, WebSessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch web session: %w", err)
	}

	var session models.WebSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal web session: %w", err)
	}

	ttl := time.Duration(config.AppConfig.SessionTTLDays) * 24 * time.Hour
	_ = s.client.Expire(ctx, WebSessionPrefix+sessionID, ttl).Err()

	return &session, nil
}
