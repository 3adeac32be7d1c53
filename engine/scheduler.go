package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Picker selects a cell index in [0, n), satisfied by *rand.Rand
type Picker interface {
	IntN(n int) int
}

// HoldFunc reports the hold duration for the episode being started
type HoldFunc func() time.Duration

// SchedulerConfig carries the timing policy of a TargetScheduler
type SchedulerConfig struct {
	Grace         time.Duration // Window after hiding in which a press still counts
	PostHit       time.Duration // Delay between a hit and the next pop
	RepeatRetries int           // Resamples spent avoiding the previous cell
}

// TargetScheduler chooses the next cell and owns the single pending episode timer
// All methods must be called with lock held; timer callbacks acquire it themselves
type TargetScheduler struct {
	clock  Clock
	lock   sync.Locker
	picker Picker
	hold   HoldFunc
	cfg    SchedulerConfig

	// Single timer handle, gen invalidates callbacks that fired but lost the lock race
	pending Timer
	gen     uint64
	seq     uint64

	statEpisodes *atomic.Int64
}

// NewTargetScheduler creates a scheduler; statEpisodes may be nil
func NewTargetScheduler(clock Clock, lock sync.Locker, picker Picker, hold HoldFunc, cfg SchedulerConfig, statEpisodes *atomic.Int64) *TargetScheduler {
	if cfg.RepeatRetries < 0 {
		cfg.RepeatRetries = 0
	}
	if statEpisodes == nil {
		statEpisodes = new(atomic.Int64)
	}
	return &TargetScheduler{
		clock:        clock,
		lock:         lock,
		picker:       picker,
		hold:         hold,
		cfg:          cfg,
		statEpisodes: statEpisodes,
	}
}

// ScheduleNext pops a mole in a random cell and arms its deactivation timer
func (ts *TargetScheduler) ScheduleNext(s *Session) {
	if !s.Running || len(s.Cells) == 0 {
		return
	}

	idx := ts.pick(len(s.Cells), s.Current)

	s.ResetCells()

	now := ts.clock.Now()
	hold := ts.hold()
	ts.seq++

	s.Current = idx
	s.DownAt = time.Time{}
	s.Cells[idx].State = CellUp
	s.Episode = Episode{
		Seq:      ts.seq,
		Cell:     idx,
		Start:    now,
		Hold:     hold,
		Deadline: now.Add(hold),
	}
	ts.statEpisodes.Add(1)

	ts.arm(hold, func() { ts.deactivate(s) })
}

// ConcludeEarly ends the live episode after a hit and pops the next mole sooner
func (ts *TargetScheduler) ConcludeEarly(s *Session, now time.Time) {
	s.DownAt = now
	ts.arm(ts.cfg.PostHit, func() { ts.ScheduleNext(s) })
}

// Cancel invalidates the pending timer, no callback armed before this call will act
func (ts *TargetScheduler) Cancel() {
	ts.stopPending()
	ts.gen++
}

// Pending reports whether a timer is armed
func (ts *TargetScheduler) Pending() bool {
	return ts.pending != nil
}

// deactivate hides the mole and chains the next pop after the grace window
func (ts *TargetScheduler) deactivate(s *Session) {
	if s.Valid(s.Current) && s.Cells[s.Current].State == CellUp {
		s.Cells[s.Current].State = CellIdle
	}
	s.DownAt = ts.clock.Now()
	ts.arm(ts.cfg.Grace, func() { ts.ScheduleNext(s) })
}

// pick draws a cell, resampling up to RepeatRetries times when it repeats prev
func (ts *TargetScheduler) pick(n, prev int) int {
	idx := ts.picker.IntN(n)
	for i := 0; n > 1 && idx == prev && i < ts.cfg.RepeatRetries; i++ {
		idx = ts.picker.IntN(n)
	}
	return idx
}

// arm replaces the pending timer with one firing fn after d
func (ts *TargetScheduler) arm(d time.Duration, fn func()) {
	ts.stopPending()
	ts.gen++
	gen := ts.gen

	ts.pending = ts.clock.AfterFunc(d, func() {
		ts.lock.Lock()
		defer ts.lock.Unlock()

		if gen != ts.gen {
			return
		}
		ts.pending = nil
		fn()
	})
}

func (ts *TargetScheduler) stopPending() {
	if ts.pending != nil {
		ts.pending.Stop()
		ts.pending = nil
	}
}
