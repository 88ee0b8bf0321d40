// Package clock abstracts time for components that stamp chat turns or
// simulate remote latency, keeping tests deterministic.
package clock

import (
	"time"
)

// Clock is an interface that abstracts the functionality for measuring and displaying time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Sleep pauses the current goroutine for at least the duration d. A negative or zero duration causes Sleep to return immediately.
	Sleep(duration time.Duration)
}

type clock struct{}

// New creates a new instance of Clock.
func New() Clock {
	return clock{}
}

func (clock) Now() time.Time {
	return time.Now()
}

func (clock) Sleep(duration time.Duration) {
	time.Sleep(duration)
}

// Fixed returns a Clock pinned to a single instant with no-op sleeps.
// Intended for tests.
func Fixed(at time.Time) Clock {
	return fixed{at: at}
}

type fixed struct{ at time.Time }

func (f fixed) Now() time.Time             { return f.at }
func (fixed) Sleep(duration time.Duration) {}
