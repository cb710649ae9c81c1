package ports

import (
	"context"
	"time"
)

// TokenCache caches the last session token issued to a user. Writes are
// best-effort: a cache failure must never fail a login.
type TokenCache interface {
	Store(ctx context.Context, userID, token string, ttl time.Duration) error
}
