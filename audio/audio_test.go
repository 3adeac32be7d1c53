package audio

import (
	"reflect"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/mole-strike/engine"
)

type recordingPlayer struct {
	calls []string
}

func (r *recordingPlayer) PlayHit()   { r.calls = append(r.calls, "hit") }
func (r *recordingPlayer) PlayMiss()  { r.calls = append(r.calls, "miss") }
func (r *recordingPlayer) PlayStart() { r.calls = append(r.calls, "start") }
func (r *recordingPlayer) PlayEnd(newBest bool) {
	if newBest {
		r.calls = append(r.calls, "end-best")
		return
	}
	r.calls = append(r.calls, "end")
}

func TestListen_DispatchesCues(t *testing.T) {
	events := make(chan engine.Event, 8)
	events <- engine.Event{Type: engine.EventStarted}
	events <- engine.Event{Type: engine.EventTick}
	events <- engine.Event{Type: engine.EventHit}
	events <- engine.Event{Type: engine.EventMiss}
	events <- engine.Event{Type: engine.EventEnded, Result: &engine.Result{NewBest: true}}
	events <- engine.Event{Type: engine.EventEnded}
	close(events)

	p := &recordingPlayer{}
	Listen(events, p, make(chan struct{}))

	want := []string{"start", "hit", "miss", "end-best", "end"}
	if !reflect.DeepEqual(p.calls, want) {
		t.Errorf("calls = %v, want %v", p.calls, want)
	}
}

func TestListen_StopsOnDone(t *testing.T) {
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		Listen(make(chan engine.Event), &recordingPlayer{}, done)
		close(finished)
	}()
	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Listen did not return after done closed")
	}
}

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestTone_FiniteAndBounded(t *testing.T) {
	sr := beep.SampleRate(48000)
	total, peak := drain(NewTone(sr, 880, 50*time.Millisecond, 0.5))

	if total != sr.N(50*time.Millisecond) {
		t.Errorf("samples = %d, want %d", total, sr.N(50*time.Millisecond))
	}
	if peak > 0.5 || peak == 0 {
		t.Errorf("peak = %v, want in (0, 0.5]", peak)
	}
}

func TestBuzz_Finite(t *testing.T) {
	sr := beep.SampleRate(48000)
	total, peak := drain(NewBuzz(sr, 180, 40*time.Millisecond))

	if total != sr.N(40*time.Millisecond) {
		t.Errorf("samples = %d, want %d", total, sr.N(40*time.Millisecond))
	}
	if peak > 1 {
		t.Errorf("peak = %v, clipped", peak)
	}
}

func TestSoundManager_UninitializedIsSilent(t *testing.T) {
	sm := NewSoundManager()
	// Without a device every cue is a no-op
	sm.PlayHit()
	sm.PlayMiss()
	sm.PlayStart()
	sm.PlayEnd(true)
	sm.Cleanup()
}
