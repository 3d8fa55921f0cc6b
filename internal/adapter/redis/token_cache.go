package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenCache keeps the most recently issued credential per email so an
// admin deleting a user can invalidate it. Purely best-effort: callers
// treat failures as warnings.
type TokenCache struct {
	client *redis.Client
}

func NewTokenCache(client *redis.Client) *TokenCache {
	return &TokenCache{client: client}
}

func (c *TokenCache) Cache(ctx context.Context, email, token string, ttl time.Duration) error {
	return c.client.Set(ctx, "token:"+email, token, ttl).Err()
}

func (c *TokenCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, "token:"+email).Err()
}
