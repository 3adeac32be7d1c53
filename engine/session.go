package engine

import "time"

// CellState is the visual and scoring state of one hole
type CellState uint8

const (
	CellIdle CellState = iota
	CellUp
	CellHit
)

func (s CellState) String() string {
	switch s {
	case CellIdle:
		return "idle"
	case CellUp:
		return "up"
	case CellHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Cell is one hole of the grid
// Scored is authoritative for the current episode and only cleared when the next one starts
type Cell struct {
	Index  int
	State  CellState
	Scored bool
}

// Episode is one appearance of a mole at one cell
type Episode struct {
	Seq      uint64
	Cell     int
	Start    time.Time
	Hold     time.Duration
	Deadline time.Time
}

// Session is one play-through, owned by Game and lent to the scheduler and judge
type Session struct {
	Started   time.Time
	Remaining int
	Score     int
	Running   bool

	Cells   []Cell
	Current int       // Most recently popped cell, -1 when none
	DownAt  time.Time // When Current went down, zero while it is still up
	Episode Episode

	Presses    int
	Hits       int
	Misses     int
	Duplicates int
}

// NewSession creates an idle session over n cells
func NewSession(n int) *Session {
	s := &Session{
		Cells:   make([]Cell, n),
		Current: -1,
	}
	for i := range s.Cells {
		s.Cells[i].Index = i
	}
	return s
}

// Reset prepares the session for a new play-through
func (s *Session) Reset(now time.Time, seconds int) {
	s.Started = now
	s.Remaining = seconds
	s.Score = 0
	s.Presses, s.Hits, s.Misses, s.Duplicates = 0, 0, 0, 0
	s.Current = -1
	s.DownAt = time.Time{}
	s.Episode = Episode{}
	s.ResetCells()
}

// ResetCells returns every cell to idle and clears scored flags
func (s *Session) ResetCells() {
	for i := range s.Cells {
		s.Cells[i].State = CellIdle
		s.Cells[i].Scored = false
	}
}

// UpCount returns the number of cells currently up
func (s *Session) UpCount() int {
	n := 0
	for i := range s.Cells {
		if s.Cells[i].State == CellUp {
			n++
		}
	}
	return n
}

// Valid reports whether idx addresses a cell
func (s *Session) Valid(idx int) bool {
	return idx >= 0 && idx < len(s.Cells)
}

// Eligibility reports whether a press on idx at now can score
// wasUp: the cell is up; withinGrace: it is the current cell and went down no more than grace ago
func (s *Session) Eligibility(idx int, now time.Time, grace time.Duration) (wasUp, withinGrace bool) {
	if !s.Valid(idx) {
		return false, false
	}
	wasUp = s.Cells[idx].State == CellUp
	if !wasUp && idx == s.Current && !s.DownAt.IsZero() {
		withinGrace = now.Sub(s.DownAt) <= grace
	}
	return wasUp, withinGrace
}
