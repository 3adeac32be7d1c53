package input

import "time"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentResize     // Terminal resize event
	IntentToggleMute // m

	// Session control
	IntentStart     // s
	IntentStop      // x
	IntentPlayAgain // Enter, r or click on the result window
	IntentHoldUp    // + or =, longer hold
	IntentHoldDown  // - or _, shorter hold

	// Activation
	IntentPress // 1-9 or left click on a hole
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentResize:     "resize",
	IntentToggleMute: "toggle_mute",
	IntentStart:      "start",
	IntentStop:       "stop",
	IntentPlayAgain:  "play_again",
	IntentHoldUp:     "hold_up",
	IntentHoldDown:   "hold_down",
	IntentPress:      "press",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
type Intent struct {
	Type IntentType
	Cell int       // Target cell for IntentPress
	At   time.Time // When the terminal saw the event, zero if unknown
}
