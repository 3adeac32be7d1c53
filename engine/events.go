package engine

// EventType identifies a game notification
type EventType uint8

const (
	EventStarted EventType = iota
	EventTick
	EventHit
	EventMiss
	EventEnded
)

func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventTick:
		return "tick"
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event is published to presentation collaborators (audio, HUD flashes)
type Event struct {
	Type      EventType
	Cell      int
	Score     int
	Remaining int
	Result    *Result // Set for EventEnded
}

// EndReason records why a session finished
type EndReason uint8

const (
	EndNone EndReason = iota
	EndExpired
	EndStopped
)

func (r EndReason) String() string {
	switch r {
	case EndExpired:
		return "expired"
	case EndStopped:
		return "stopped"
	default:
		return "none"
	}
}

// Result is the final tally reported at end of session
type Result struct {
	Reason       EndReason
	Score        int
	Best         int
	PreviousBest int
	NewBest      bool
	Recorded     bool // Score was offered to the best-score store
	Presses      int
	Hits         int
	Misses       int
}

// Accuracy is hits per press, 0 without presses
func (r Result) Accuracy() float64 {
	if r.Presses == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Presses)
}
