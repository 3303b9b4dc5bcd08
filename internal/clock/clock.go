// Package clock provides an injectable time source so timer-driven behavior
// can be tested without real wall-clock waits.
package clock

import "time"

// Clock abstracts the functions of the time package used by the engine.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that fires once d has elapsed.
	After(d time.Duration) <-chan time.Time
}

// DefaultClock delegates to the time package.
type DefaultClock struct{}

// NewDefaultClock returns a Clock backed by real time.
func NewDefaultClock() Clock {
	return &DefaultClock{}
}

// Now returns the current wall-clock time.
func (DefaultClock) Now() time.Time {
	return time.Now()
}

// After returns time.After(d).
func (DefaultClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
