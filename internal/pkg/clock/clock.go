// Package clock supplies the current time to the response cache so that
// expiry can be tested
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/pokelookup/internal/pkg/clock Clock

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

// Now returns the current wall clock time
func (System) Now() time.Time {
	return time.Now()
}

// New returns the wall clock
func New() Clock {
	return System{}
}

// Fixed always reports the same instant
type Fixed time.Time

// Now returns the fixed instant
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
