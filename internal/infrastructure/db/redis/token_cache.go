package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenCache stores the last session token issued to each user.
// Key format: session:<user_id>. The entry expires with the token itself,
// so the cache can never outlive a token's validity.
type TokenCache struct {
	client *redis.Client
}

// NewTokenCache creates a TokenCache wrapping the given Redis client.
func NewTokenCache(client *redis.Client) *TokenCache {
	return &TokenCache{client: client}
}

// Store records the user's current session token with the given TTL.
func (c *TokenCache) Store(ctx context.Context, userID, token string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("cache token: %w", err)
	}
	return nil
}

func (c *TokenCache) key(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}
