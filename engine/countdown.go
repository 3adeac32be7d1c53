package engine

import (
	"sync"
	"time"
)

// Countdown arms a repeating tick on a Clock with drift correction
// All methods must be called with lock held; tick callbacks acquire it themselves
type Countdown struct {
	clock    Clock
	lock     sync.Locker
	interval time.Duration

	pending  Timer
	gen      uint64
	deadline time.Time // Next tick deadline for drift correction
	ticks    uint64
}

// NewCountdown creates a stopped countdown ticking every interval
func NewCountdown(clock Clock, lock sync.Locker, interval time.Duration) *Countdown {
	return &Countdown{
		clock:    clock,
		lock:     lock,
		interval: interval,
	}
}

// Start begins ticking; tick runs once per interval and returns false to stop the chain
func (c *Countdown) Start(tick func() bool) {
	c.Cancel()
	c.ticks = 0
	c.deadline = c.clock.Now().Add(c.interval)
	c.armAt(c.deadline, tick)
}

// Cancel stops the chain, a tick that already fired but waits on the lock is discarded
func (c *Countdown) Cancel() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.gen++
}

// Ticks returns the number of ticks delivered since Start
func (c *Countdown) Ticks() uint64 {
	return c.ticks
}

func (c *Countdown) armAt(deadline time.Time, tick func() bool) {
	delay := deadline.Sub(c.clock.Now())
	if delay < 0 {
		delay = 0
	}

	c.gen++
	gen := c.gen
	c.pending = c.clock.AfterFunc(delay, func() {
		c.lock.Lock()
		defer c.lock.Unlock()

		if gen != c.gen {
			return
		}
		c.pending = nil
		c.ticks++

		if !tick() {
			return
		}
		// tick may have cancelled or restarted the chain
		if gen != c.gen || c.pending != nil {
			return
		}

		now := c.clock.Now()
		c.deadline = c.deadline.Add(c.interval)
		maxBehind := c.interval * 2
		if now.Sub(c.deadline) > maxBehind {
			c.deadline = now.Add(c.interval)
		}
		c.armAt(c.deadline, tick)
	})
}
