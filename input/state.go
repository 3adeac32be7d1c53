package input

// InputMode mirrors the session state for parser context
type InputMode uint8

const (
	ModeIdle    InputMode = iota // No session yet
	ModeRunning                  // Session in progress, holes accept presses
	ModeResult                   // Session over, result window shown
)
