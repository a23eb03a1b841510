package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the part of go-redis the response cache needs: plain string
// reads and writes with expiry, a liveness check and Close
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}
