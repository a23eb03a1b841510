// Package testutils provides utilities for testing, including Redis test helpers
// and PokeAPI fixture builders
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokelookup/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	client, mr := CreateTestRedisServer(t)
	return client, mr.Close
}

// CreateTestRedisServer creates an in-memory Redis client and returns the
// backing server so tests can inspect keys or fast-forward TTLs. The server
// is closed when the test ends.
func CreateTestRedisServer(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")
	t.Cleanup(mr.Close)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
