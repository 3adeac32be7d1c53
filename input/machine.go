package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mole-strike/render"
)

// Machine parses tcell events into semantic Intents
type Machine struct {
	mode     InputMode
	keyTable *KeyTable

	layout  render.Layout
	overlay render.Rect

	// Previous button state, a press is the rising edge of Button1
	buttons tcell.ButtonMask
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{
		mode:     ModeIdle,
		keyTable: DefaultKeyTable(),
	}
}

// SetMode updates the parser's mode context
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the current parser mode
func (m *Machine) Mode() InputMode {
	return m.mode
}

// SetLayout updates the geometry used to hit-test mouse presses
func (m *Machine) SetLayout(layout render.Layout, overlay render.Rect) {
	m.layout = layout
	m.overlay = overlay
}

// Process parses a tcell event and returns an Intent, nil when the event maps to nothing
func (m *Machine) Process(ev tcell.Event) *Intent {
	var in *Intent
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		in = m.ProcessKey(ev.Key(), ev.Rune(), ev.Modifiers())
	case *tcell.EventMouse:
		x, y := ev.Position()
		in = m.ProcessMouse(x, y, ev.Buttons())
	}
	if in != nil {
		in.At = ev.When()
	}
	return in
}

// ProcessKey maps one key press
func (m *Machine) ProcessKey(key tcell.Key, r rune, mod tcell.ModMask) *Intent {
	if key != tcell.KeyRune {
		if t, ok := m.keyTable.SpecialKeys[key]; ok {
			return &Intent{Type: t}
		}
		if m.mode == ModeResult {
			if t, ok := m.keyTable.ResultKeys[key]; ok {
				return &Intent{Type: t}
			}
		}
		return nil
	}

	if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
		return nil
	}

	if cell, ok := m.keyTable.CellRunes[r]; ok {
		if m.mode != ModeRunning || cell >= len(m.layout.Cells) {
			return nil
		}
		return &Intent{Type: IntentPress, Cell: cell}
	}

	if m.mode == ModeResult {
		if t, ok := m.keyTable.ResultRunes[r]; ok {
			return &Intent{Type: t}
		}
	}

	if t, ok := m.keyTable.Runes[r]; ok {
		return &Intent{Type: t}
	}
	return nil
}

// ProcessMouse maps a mouse report, only the left button rising edge activates
func (m *Machine) ProcessMouse(x, y int, buttons tcell.ButtonMask) *Intent {
	pressed := buttons&tcell.Button1 != 0 && m.buttons&tcell.Button1 == 0
	m.buttons = buttons
	if !pressed {
		return nil
	}

	switch m.mode {
	case ModeRunning:
		if cell := m.layout.CellAt(x, y); cell >= 0 {
			return &Intent{Type: IntentPress, Cell: cell}
		}
	case ModeResult:
		if m.overlay.Contains(x, y) {
			return &Intent{Type: IntentPlayAgain}
		}
	}
	return nil
}
