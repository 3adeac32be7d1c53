package engine

import (
	"context"
	"log"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/mole-strike/constants"
	"github.com/lixenwraith/mole-strike/status"
)

// BestRecorder is the durable best-score record
type BestRecorder interface {
	// Load returns the stored best, 0 when absent or unreadable
	Load(ctx context.Context) int
	// Record stores score if it strictly exceeds the stored best and returns the resulting best
	Record(ctx context.Context, score int) (best int, updated bool, err error)
}

// Options configures a Game, zero fields take the package defaults
type Options struct {
	Rows, Cols    int
	Hold          time.Duration
	RepeatRetries int
	RecordStopped bool // Manual stop offers the score to the best record

	Clock  Clock
	Picker Picker
	Best   BestRecorder
	Status *status.Registry
}

// Snapshot is a copy of the game state for renderers
type Snapshot struct {
	Rows, Cols int
	Cells      []Cell
	Running    bool
	Remaining  int
	Score      int
	Best       int
	Hold       time.Duration
	Current    int
	Episode    Episode
	Result     *Result // Last finished session, nil while running
	LastHit    time.Time
	Now        time.Time
}

// Game is the session controller wiring scheduler, judge and countdown around one Session
type Game struct {
	mu sync.Mutex

	rows, cols    int
	recordStopped bool

	clock     Clock
	session   *Session
	scheduler *TargetScheduler
	judge     *Judge
	countdown *Countdown
	best      BestRecorder
	events    chan Event

	hold     time.Duration
	bestSeen int
	result   *Result
	lastHit  time.Time

	// Cached metric pointers
	statPresses    *atomic.Int64
	statHits       *atomic.Int64
	statMisses     *atomic.Int64
	statDuplicates *atomic.Int64
	statSessions   *atomic.Int64
	statAccuracy   *status.AtomicFloat
	statLastResult *status.AtomicString
}

// NewGame creates an idle game and loads the best score
func NewGame(opts Options) *Game {
	if opts.Rows <= 0 {
		opts.Rows = constants.DefaultRows
	}
	if opts.Cols <= 0 {
		opts.Cols = constants.DefaultCols
	}
	if opts.Hold <= 0 {
		opts.Hold = constants.DefaultHold
	}
	if opts.Clock == nil {
		opts.Clock = NewRealClock()
	}
	if opts.Picker == nil {
		opts.Picker = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Best == nil {
		opts.Best = &memoryBest{}
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	g := &Game{
		rows:          opts.Rows,
		cols:          opts.Cols,
		recordStopped: opts.RecordStopped,
		clock:         opts.Clock,
		session:       NewSession(opts.Rows * opts.Cols),
		best:          opts.Best,
		events:        make(chan Event, constants.EventBufferSize),
		hold:          clampHold(opts.Hold),

		statPresses:    opts.Status.Ints.Get(status.KeyPresses),
		statHits:       opts.Status.Ints.Get(status.KeyHits),
		statMisses:     opts.Status.Ints.Get(status.KeyMisses),
		statDuplicates: opts.Status.Ints.Get(status.KeyDuplicates),
		statSessions:   opts.Status.Ints.Get(status.KeySessions),
		statAccuracy:   opts.Status.Floats.Get(status.KeyAccuracy),
		statLastResult: opts.Status.Strings.Get(status.KeyLastResult),
	}

	g.scheduler = NewTargetScheduler(
		g.clock,
		&g.mu,
		opts.Picker,
		func() time.Duration { return g.hold },
		SchedulerConfig{
			Grace:         constants.GraceWindow,
			PostHit:       constants.PostHitDelay,
			RepeatRetries: opts.RepeatRetries,
		},
		opts.Status.Ints.Get(status.KeyEpisodes),
	)
	g.judge = NewJudge(g.scheduler, constants.GraceWindow)
	g.countdown = NewCountdown(g.clock, &g.mu, constants.TickInterval)
	g.bestSeen = g.best.Load(context.Background())

	return g
}

// Start begins a session, false if one is already running
func (g *Game) Start() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Running {
		return false
	}

	// Restart must never inherit a timer from the previous session
	g.cancelAll()

	g.session.Reset(g.clock.Now(), constants.SessionSeconds)
	g.session.Running = true
	g.result = nil
	g.lastHit = time.Time{}
	g.statSessions.Add(1)
	g.statAccuracy.Set(0)

	g.scheduler.ScheduleNext(g.session)
	g.countdown.Start(g.tick)

	g.emit(Event{Type: EventStarted, Remaining: g.session.Remaining})
	return true
}

// Stop ends the running session early, false when idle
func (g *Game) Stop() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.session.Running {
		return false
	}
	g.end(EndStopped)
	return true
}

// Press delivers an activation event on cell, stamped with the current time
func (g *Game) Press(cell int) Outcome {
	return g.PressAt(cell, time.Time{})
}

// PressAt delivers an activation event that happened at when. Eligibility is
// judged against when, so a click queued behind other events still counts
// inside the grace window. A zero or future when is taken as now.
func (g *Game) PressAt(cell int, when time.Time) Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	if when.IsZero() || when.After(now) {
		when = now
	}
	outcome := g.judge.Press(g.session, cell, when)

	switch outcome {
	case OutcomeHit:
		g.statPresses.Add(1)
		g.statHits.Add(1)
		g.lastHit = now
		g.emit(Event{Type: EventHit, Cell: cell, Score: g.session.Score, Remaining: g.session.Remaining})
	case OutcomeMiss:
		g.statPresses.Add(1)
		g.statMisses.Add(1)
		g.emit(Event{Type: EventMiss, Cell: cell, Score: g.session.Score, Remaining: g.session.Remaining})
	case OutcomeDuplicate:
		g.statPresses.Add(1)
		g.statDuplicates.Add(1)
	}
	if outcome != OutcomeIgnored {
		g.statAccuracy.Ratio(int64(g.session.Hits), int64(g.session.Presses))
	}
	return outcome
}

// SetHold sets the hold duration used from the next pop on, clamped to the allowed range
func (g *Game) SetHold(d time.Duration) time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.hold = clampHold(d)
	return g.hold
}

// AdjustHold shifts the hold duration by delta and returns the new value
func (g *Game) AdjustHold(delta time.Duration) time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.hold = clampHold(g.hold + delta)
	return g.hold
}

// Hold returns the configured hold duration
func (g *Game) Hold() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hold
}

// Best returns the best score known to the game
func (g *Game) Best() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.bestSeen
}

// Running reports whether a session is in progress
func (g *Game) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Running
}

// Events returns the notification channel, events are dropped when it is full
func (g *Game) Events() <-chan Event {
	return g.events
}

// Snapshot copies the state needed to draw one frame
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	cells := make([]Cell, len(s.Cells))
	copy(cells, s.Cells)

	var result *Result
	if g.result != nil {
		r := *g.result
		result = &r
	}

	return Snapshot{
		Rows:      g.rows,
		Cols:      g.cols,
		Cells:     cells,
		Running:   s.Running,
		Remaining: s.Remaining,
		Score:     s.Score,
		Best:      g.bestSeen,
		Hold:      g.hold,
		Current:   s.Current,
		Episode:   s.Episode,
		Result:    result,
		LastHit:   g.lastHit,
		Now:       g.clock.Now(),
	}
}

// UpCount returns the number of cells up in the snapshot
func (s Snapshot) UpCount() int {
	n := 0
	for _, c := range s.Cells {
		if c.State == CellUp {
			n++
		}
	}
	return n
}

// tick runs under the countdown's lock once per second
func (g *Game) tick() bool {
	s := g.session
	if !s.Running {
		return false
	}

	s.Remaining--
	if s.Remaining <= 0 {
		s.Remaining = 0
		g.end(EndExpired)
		return false
	}

	g.emit(Event{Type: EventTick, Score: s.Score, Remaining: s.Remaining})
	return true
}

// end moves the session to idle and reports the result, lock held
func (g *Game) end(reason EndReason) {
	s := g.session
	s.Running = false
	g.cancelAll()

	s.ResetCells()
	s.Current = -1
	s.DownAt = time.Time{}

	res := Result{
		Reason:       reason,
		Score:        s.Score,
		Best:         g.bestSeen,
		PreviousBest: g.bestSeen,
		Presses:      s.Presses,
		Hits:         s.Hits,
		Misses:       s.Misses,
	}

	if reason == EndExpired || g.recordStopped {
		res.Recorded = true
		best, updated, err := g.best.Record(context.Background(), s.Score)
		if err != nil {
			log.Printf("best score: %v", err)
		}
		if best > g.bestSeen {
			g.bestSeen = best
		}
		res.Best = g.bestSeen
		res.NewBest = updated
	}

	g.result = &res
	g.statAccuracy.Set(res.Accuracy())
	g.statLastResult.Store(reason.String())

	g.emit(Event{Type: EventEnded, Score: res.Score, Result: &res})
}

// cancelAll invalidates every pending timer, called on every exit from Running
func (g *Game) cancelAll() {
	g.scheduler.Cancel()
	g.countdown.Cancel()
}

func (g *Game) emit(ev Event) {
	select {
	case g.events <- ev:
	default:
	}
}

func clampHold(d time.Duration) time.Duration {
	if d < constants.MinHold {
		return constants.MinHold
	}
	if d > constants.MaxHold {
		return constants.MaxHold
	}
	return d
}

// memoryBest keeps the best score for the lifetime of the process only
type memoryBest struct {
	best int
}

func (m *memoryBest) Load(context.Context) int {
	return m.best
}

func (m *memoryBest) Record(_ context.Context, score int) (int, bool, error) {
	if score > m.best {
		m.best = score
		return m.best, true, nil
	}
	return m.best, false, nil
}
