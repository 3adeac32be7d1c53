package engine

import (
	"time"
)

// Outcome is the judge's verdict on one press
type Outcome uint8

const (
	OutcomeIgnored   Outcome = iota // Session idle or cell unknown
	OutcomeMiss                     // Cell not eligible
	OutcomeDuplicate                // Episode already scored
	OutcomeHit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeMiss:
		return "miss"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Judge turns presses into score under the timing rules
type Judge struct {
	scheduler *TargetScheduler
	grace     time.Duration
}

// NewJudge creates a judge that concludes episodes through scheduler
func NewJudge(scheduler *TargetScheduler, grace time.Duration) *Judge {
	return &Judge{scheduler: scheduler, grace: grace}
}

// Press judges a press on cell at now, must be called with the session lock held
func (j *Judge) Press(s *Session, cell int, now time.Time) Outcome {
	if !s.Running || !s.Valid(cell) {
		return OutcomeIgnored
	}
	s.Presses++

	wasUp, withinGrace := s.Eligibility(cell, now, j.grace)
	c := &s.Cells[cell]

	switch {
	case !wasUp && !withinGrace:
		s.Misses++
		return OutcomeMiss
	case c.Scored:
		s.Duplicates++
		return OutcomeDuplicate
	}

	c.Scored = true
	c.State = CellHit
	s.Score++
	s.Hits++

	j.scheduler.ConcludeEarly(s, now)
	return OutcomeHit
}
