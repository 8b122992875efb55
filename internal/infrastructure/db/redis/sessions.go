package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionTTL = 7 * 24 * time.Hour

// SessionRegistry records the provider-side sessions opened by sign-in.
// The API's own credential is stateless; this registry exists only so
// SignOut has something to invalidate, mirroring what a hosted auth
// provider tracks internally.
// Key format: session:<user_id>
type SessionRegistry struct {
	client *redis.Client
}

// NewSessionRegistry creates a SessionRegistry wrapping the given Redis client.
func NewSessionRegistry(client *redis.Client) *SessionRegistry {
	return &SessionRegistry{client: client}
}

// Record notes that the user has an open provider session (expires
// after sessionTTL so abandoned sessions do not accumulate).
func (s *SessionRegistry) Record(ctx context.Context, userID string) error {
	if err := s.client.Set(ctx, s.key(userID), time.Now().UTC().Format(time.RFC3339), sessionTTL).Err(); err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

// Revoke drops the user's provider session. Missing keys are not an
// error: revoking an already-expired session is a no-op.
func (s *SessionRegistry) Revoke(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *SessionRegistry) key(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}
