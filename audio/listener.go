package audio

import (
	"github.com/lixenwraith/mole-strike/engine"
)

// Player is the set of cues the game triggers
type Player interface {
	PlayHit()
	PlayMiss()
	PlayStart()
	PlayEnd(newBest bool)
}

// Dispatch plays the cue for one game event
func Dispatch(p Player, ev engine.Event) {
	switch ev.Type {
	case engine.EventHit:
		p.PlayHit()
	case engine.EventMiss:
		p.PlayMiss()
	case engine.EventStarted:
		p.PlayStart()
	case engine.EventEnded:
		p.PlayEnd(ev.Result != nil && ev.Result.NewBest)
	}
}

// Listen plays cues for events until done is closed or events is closed
func Listen(events <-chan engine.Event, p Player, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			Dispatch(p, ev)
		}
	}
}
