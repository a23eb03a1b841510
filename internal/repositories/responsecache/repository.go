// Package responsecache stores raw PokeAPI response bodies keyed by URL
package responsecache

//go:generate mockgen -destination=mock/mock_repository.go -package=responsecachemock github.com/KirkDiggler/pokelookup/internal/repositories/responsecache Repository

import (
	"context"
	"time"
)

// DefaultTTL is how long a cached response is served before it is refetched
const DefaultTTL = 7 * 24 * time.Hour

// Repository defines the interface for response body persistence
type Repository interface {
	// Get retrieves the body stored under a key
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.NotFound if nothing is stored or the entry expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set stores a body under a key, replacing any previous entry
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.Internal for storage failures
	Set(ctx context.Context, input SetInput) (*SetOutput, error)

	// Close releases the underlying storage handle
	Close() error
}

// GetInput defines the input for getting a cached response
type GetInput struct {
	Key string
}

// GetOutput defines the output for getting a cached response
type GetOutput struct {
	Body []byte
}

// SetInput defines the input for caching a response
type SetInput struct {
	Key  string
	Body []byte
}

// SetOutput defines the output for caching a response
type SetOutput struct{}
