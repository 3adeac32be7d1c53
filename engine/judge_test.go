package engine

import (
	"sync"
	"testing"
	"time"
)

func newJudgeFixture(t *testing.T) (*Judge, *Session, *MockClock) {
	t.Helper()
	var mu sync.Mutex
	clock := NewMockClock(t0)
	ts := NewTargetScheduler(clock, &mu, &scriptPicker{seq: []int{3, 5}}, func() time.Duration { return 500 * time.Millisecond }, testSchedulerConfig, nil)
	s := newRunningSession(9)
	ts.ScheduleNext(s)
	return NewJudge(ts, testSchedulerConfig.Grace), s, clock
}

func TestJudge_GraceBoundary(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    Outcome
	}{
		{name: "immediately after hide", elapsed: 0, want: OutcomeHit},
		{name: "inside window", elapsed: 60 * time.Millisecond, want: OutcomeHit},
		{name: "exactly at window end", elapsed: 120 * time.Millisecond, want: OutcomeHit},
		{name: "just past window", elapsed: 120*time.Millisecond + time.Nanosecond, want: OutcomeMiss},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, s, _ := newJudgeFixture(t)
			downAt := t0.Add(500 * time.Millisecond)
			s.Cells[3].State = CellIdle
			s.DownAt = downAt

			if got := j.Press(s, 3, downAt.Add(tt.elapsed)); got != tt.want {
				t.Errorf("Press = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJudge_IneligibleCells(t *testing.T) {
	j, s, _ := newJudgeFixture(t)
	now := t0.Add(10 * time.Millisecond)

	if got := j.Press(s, 4, now); got != OutcomeMiss {
		t.Errorf("press on idle cell = %v, want miss", got)
	}
	if got := j.Press(s, -1, now); got != OutcomeIgnored {
		t.Errorf("press on negative cell = %v, want ignored", got)
	}
	if got := j.Press(s, 9, now); got != OutcomeIgnored {
		t.Errorf("press past last cell = %v, want ignored", got)
	}
	if s.Score != 0 || s.Misses != 1 || s.Presses != 1 {
		t.Errorf("score=%d misses=%d presses=%d", s.Score, s.Misses, s.Presses)
	}
}

func TestJudge_IdleSessionIgnored(t *testing.T) {
	j, s, _ := newJudgeFixture(t)
	s.Running = false

	if got := j.Press(s, 3, t0); got != OutcomeIgnored {
		t.Errorf("press on stopped session = %v, want ignored", got)
	}
	if s.Presses != 0 {
		t.Error("ignored press was counted")
	}
}

func TestJudge_OneScorePerEpisode(t *testing.T) {
	j, s, _ := newJudgeFixture(t)

	hits := 0
	for i := 0; i < 20; i++ {
		now := t0.Add(time.Duration(10+i*5) * time.Millisecond)
		if j.Press(s, 3, now) == OutcomeHit {
			hits++
		}
	}
	if hits != 1 || s.Score != 1 {
		t.Errorf("hits=%d score=%d, want 1 and 1", hits, s.Score)
	}
	if s.Duplicates+s.Misses != 19 {
		t.Errorf("duplicates=%d misses=%d, want 19 rejected presses", s.Duplicates, s.Misses)
	}
}

func TestJudge_HitConcludesEpisode(t *testing.T) {
	j, s, clock := newJudgeFixture(t)
	clock.Advance(50 * time.Millisecond)
	now := clock.Now()

	if got := j.Press(s, 3, now); got != OutcomeHit {
		t.Fatalf("Press = %v, want hit", got)
	}
	if s.Cells[3].State != CellHit || !s.Cells[3].Scored {
		t.Errorf("cell = %+v, want hit and scored", s.Cells[3])
	}
	if !s.DownAt.Equal(now) {
		t.Errorf("downAt = %v, want press time", s.DownAt.Sub(t0))
	}
	deadline, ok := clock.NextDeadline()
	if !ok || !deadline.Equal(now.Add(80*time.Millisecond)) {
		t.Errorf("next deadline = %v, want press+80ms", deadline.Sub(t0))
	}
	if clock.Pending() != 1 {
		t.Errorf("pending = %d, want the hold timer replaced", clock.Pending())
	}
}
