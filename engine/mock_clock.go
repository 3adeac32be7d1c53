package engine

import (
	"sync"
	"time"
)

// MockClock provides a controllable time source and timer queue for testing
// Timers fire only inside Advance, in deadline order, on the caller's goroutine
type MockClock struct {
	mu      sync.Mutex
	now     time.Time
	nextSeq uint64
	timers  []*mockTimer
}

type mockTimer struct {
	clock   *MockClock
	at      time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// Stop cancels a timer that has not fired yet
func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	t.clock.remove(t)
	return true
}

// NewMockClock creates a new mock clock with the given start time
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the current mocked time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc queues fn to fire once mocked time reaches now+d
func (c *MockClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < 0 {
		d = 0
	}
	t := &mockTimer{clock: c, at: c.now.Add(d), seq: c.nextSeq, fn: fn}
	c.nextSeq++
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward by d, firing every timer that falls due on the way
// Timers armed by a firing callback are honored if they fall inside the window
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()
	c.AdvanceTo(target)
}

// AdvanceTo moves time forward to target, firing due timers in order
func (c *MockClock) AdvanceTo(target time.Time) {
	for {
		c.mu.Lock()
		next := c.earliest()
		if next == nil || next.at.After(target) {
			if target.After(c.now) {
				c.now = target
			}
			c.mu.Unlock()
			return
		}
		if next.at.After(c.now) {
			c.now = next.at
		}
		next.fired = true
		c.remove(next)
		c.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of timers waiting to fire
func (c *MockClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// NextDeadline returns the earliest pending deadline, false when the queue is empty
func (c *MockClock) NextDeadline() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t := c.earliest(); t != nil {
		return t.at, true
	}
	return time.Time{}, false
}

func (c *MockClock) earliest() *mockTimer {
	var best *mockTimer
	for _, t := range c.timers {
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (c *MockClock) remove(t *mockTimer) {
	for i, x := range c.timers {
		if x == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}
