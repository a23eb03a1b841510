// Package idgen generates the request ids the gRPC server returns with
// every lookup
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// Sequential yields prefix_1, prefix_2, ... so tests can predict ids
type Sequential struct {
	prefix string
	n      atomic.Uint64
}

// NewSequential creates a Sequential generator
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// Generate returns the next id
func (g *Sequential) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.n.Add(1), 10))
}

// UUID yields prefix_<random uuid>
type UUID struct {
	prefix string
}

// NewUUID creates a UUID generator
func NewUUID(prefix string) *UUID {
	return &UUID{prefix: prefix}
}

// Generate returns a new random id
func (g *UUID) Generate() string {
	return withPrefix(g.prefix, uuid.NewString())
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
