package shared

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound indicates an unknown or expired session token.
var ErrSessionNotFound = errors.New("session not found")

// SessionManager issues and resolves bearer-token sessions backed by Redis.
type SessionManager struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionManager constructs a SessionManager.
func NewSessionManager(client *redis.Client, ttl time.Duration) *SessionManager {
	return &SessionManager{client: client, ttl: ttl}
}

// Issue creates a session for identity and returns the opaque token.
func (sm *SessionManager) Issue(ctx context.Context, id Identity) (string, error) {
	payload, err := json.Marshal(id)
	if err != nil {
		return "", err
	}
	token := uuid.NewString()
	if err := sm.client.Set(ctx, sm.redisKey(token), payload, sm.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Resolve looks up the identity for token, refreshing its TTL.
func (sm *SessionManager) Resolve(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrSessionNotFound
	}
	payload, err := sm.client.Get(ctx, sm.redisKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Identity{}, ErrSessionNotFound
		}
		return Identity{}, fmt.Errorf("load session: %w", err)
	}

	var id Identity
	if err := json.Unmarshal(payload, &id); err != nil {
		return Identity{}, fmt.Errorf("decode session: %w", err)
	}

	_ = sm.client.Expire(ctx, sm.redisKey(token), sm.ttl).Err()
	return id, nil
}

// Destroy removes the session for token.
func (sm *SessionManager) Destroy(ctx context.Context, token string) error {
	if err := sm.client.Del(ctx, sm.redisKey(token)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

func (sm *SessionManager) redisKey(token string) string {
	return "session:" + token
}
