package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc, Enter)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings valid in every mode
	Runes map[rune]IntentType

	// Bindings only active while the result window is shown
	ResultRunes map[rune]IntentType
	ResultKeys  map[tcell.Key]IntentType

	// Digit keys, '1' is the first hole in reading order
	CellRunes map[rune]int
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	cells := make(map[rune]int, 9)
	for i := 0; i < 9; i++ {
		cells[rune('1'+i)] = i
	}

	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			's': IntentStart,
			'x': IntentStop,
			'm': IntentToggleMute,
			'+': IntentHoldUp,
			'=': IntentHoldUp,
			'-': IntentHoldDown,
			'_': IntentHoldDown,
		},
		ResultRunes: map[rune]IntentType{
			'r': IntentPlayAgain,
		},
		ResultKeys: map[tcell.Key]IntentType{
			tcell.KeyEnter: IntentPlayAgain,
		},
		CellRunes: cells,
	}
}
