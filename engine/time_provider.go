package engine

import (
	"time"

	"github.com/lixenwraith/mole-strike/core"
)

// TimeProvider supplies the current time
type TimeProvider interface {
	Now() time.Time
}

// Timer is a handle to one pending callback
type Timer interface {
	// Stop prevents the callback from firing, false if it already fired or was stopped
	Stop() bool
}

// Clock reads time and schedules one-shot callbacks
// Callbacks may run on any goroutine; receivers serialize them with their own lock
type Clock interface {
	TimeProvider
	AfterFunc(d time.Duration, fn func()) Timer
}

// RealClock is backed by the runtime timer heap with monotonic readings
type RealClock struct{}

// NewRealClock creates a wall clock
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current time with monotonic clock reading
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// AfterFunc runs fn on its own goroutine after d, with crash recovery
func (c *RealClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, func() {
		defer core.Recover()
		fn()
	})
}
