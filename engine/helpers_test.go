package engine

import (
	"context"
	"sync"
	"testing"
	"time"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// scriptPicker replays a fixed sequence of picks, cycling when exhausted
type scriptPicker struct {
	seq []int
	i   int
}

func (p *scriptPicker) IntN(n int) int {
	v := p.seq[p.i%len(p.seq)] % n
	p.i++
	return v
}

// fakeBest is an in-memory BestRecorder that counts writes
type fakeBest struct {
	mu     sync.Mutex
	best   int
	writes int
}

func (f *fakeBest) Load(context.Context) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.best
}

func (f *fakeBest) Record(_ context.Context, score int) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if score > f.best {
		f.best = score
		f.writes++
		return f.best, true, nil
	}
	return f.best, false, nil
}

// captureClock hands callbacks to the test and pretends Stop always lost the race
type captureClock struct {
	now       time.Time
	callbacks []func()
}

type lostTimer struct{}

func (lostTimer) Stop() bool { return false }

func (c *captureClock) Now() time.Time { return c.now }

func (c *captureClock) AfterFunc(_ time.Duration, fn func()) Timer {
	c.callbacks = append(c.callbacks, fn)
	return lostTimer{}
}

func newTestGame(t *testing.T, hold time.Duration, picks ...int) (*Game, *MockClock, *fakeBest) {
	t.Helper()
	if len(picks) == 0 {
		picks = []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	}
	clock := NewMockClock(t0)
	best := &fakeBest{}
	g := NewGame(Options{
		Rows:          3,
		Cols:          3,
		Hold:          hold,
		RepeatRetries: 1,
		Clock:         clock,
		Picker:        &scriptPicker{seq: picks},
		Best:          best,
	})
	return g, clock, best
}

func drainEvents(g *Game) []Event {
	var out []Event
	for {
		select {
		case ev := <-g.Events():
			out = append(out, ev)
		default:
			return out
		}
	}
}
