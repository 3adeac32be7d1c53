package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type fakeScreen struct {
	cells map[[2]int]rune
	shows int
	syncs int
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{cells: make(map[[2]int]rune)}
}

func (s *fakeScreen) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	s.cells[[2]int{x, y}] = r
}

func (s *fakeScreen) Show() { s.shows++ }
func (s *fakeScreen) Sync() { s.syncs++ }

func TestRenderBufferSetAndBounds(t *testing.T) {
	buf := NewRenderBuffer(10, 3)

	buf.Set(2, 1, 'x', StyleHint)
	buf.Set(-1, 0, 'y', StyleHint)
	buf.Set(10, 0, 'y', StyleHint)

	if c := buf.Get(2, 1); c.Rune != 'x' || c.Style != StyleHint {
		t.Errorf("Get(2,1) = %+v", c)
	}
	if !buf.Touched(2, 1) || buf.Touched(3, 1) {
		t.Error("touched tracking wrong")
	}
	if c := buf.Get(99, 99); c.Rune != 0 {
		t.Errorf("out of bounds Get = %+v", c)
	}
}

func TestRenderBufferStrings(t *testing.T) {
	buf := NewRenderBuffer(11, 2)

	end := buf.SetString(1, 0, "abc", StyleBackground)
	if end != 4 {
		t.Errorf("SetString end = %d, want 4", end)
	}
	buf.SetStringCentered(Rect{0, 0, 11, 2}, 1, "mid", StyleBackground)

	if got := buf.RowString(0); got != " abc       " {
		t.Errorf("row 0 = %q", got)
	}
	if got := buf.RowString(1); got != "    mid    " {
		t.Errorf("row 1 = %q", got)
	}
}

func TestRenderBufferClearAndResize(t *testing.T) {
	buf := NewRenderBuffer(4, 4)
	buf.Fill(Rect{0, 0, 4, 4}, '#', StyleHint)
	buf.Clear()

	for y := 0; y < 4; y++ {
		if got := buf.RowString(y); got != "    " {
			t.Fatalf("row %d after clear = %q", y, got)
		}
	}

	buf.Resize(6, 2)
	if w, h := buf.Bounds(); w != 6 || h != 2 {
		t.Errorf("Bounds = %dx%d, want 6x2", w, h)
	}
}

func TestRenderBufferFlush(t *testing.T) {
	buf := NewRenderBuffer(3, 1)
	buf.SetString(0, 0, "ok", StyleBackground)

	screen := newFakeScreen()
	buf.FlushToScreen(screen)

	if screen.shows != 1 {
		t.Errorf("shows = %d, want 1", screen.shows)
	}
	if screen.cells[[2]int{0, 0}] != 'o' || screen.cells[[2]int{2, 0}] != ' ' {
		t.Errorf("flushed cells = %v", screen.cells)
	}
}

func TestRuneLen(t *testing.T) {
	if n := RuneLen("—"); n != 1 {
		t.Errorf("RuneLen = %d, want 1", n)
	}
}
