package responsecache

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokelookup/internal/errors"
	redisclient "github.com/KirkDiggler/pokelookup/internal/redis"
)

const (
	responseKeyPrefix = "pokelookup:response:"

	errKeyEmpty = "cache key cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis response cache
type RedisConfig struct {
	Client redisclient.Client
	// TTL defaults to DefaultTTL when zero
	TTL time.Duration
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

// NewRedis creates a new Redis-backed response cache
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	body, err := r.client.Get(ctx, GetKey(input.Key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no cached response for %s", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get cached response for %s", input.Key)
	}

	return &GetOutput{Body: body}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	if err := r.client.Set(ctx, GetKey(input.Key), input.Body, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to cache response for %s", input.Key)
	}

	return &SetOutput{}, nil
}

func (r *redisRepository) Close() error {
	return r.client.Close()
}

// GetKey returns the Redis key for a cached response
// Exposed for testing purposes
func GetKey(url string) string {
	return responseKeyPrefix + url
}
