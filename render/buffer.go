package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// ScreenWriter is the subset of tcell.Screen the buffer flushes into
type ScreenWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
	Sync()
}

// RenderBuffer is a compositor backed by a flat Cell array with dirty tracking
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: StyleBackground}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns the buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell, out of bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Style: style}
	b.touched[idx] = true
}

// Get returns the cell at x, y or an empty cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Fill paints a rectangle with r in style
func (b *RenderBuffer) Fill(rect Rect, r rune, style tcell.Style) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			b.Set(x, y, r, style)
		}
	}
}

// SetString writes s starting at x, y and returns the column after the last rune
func (b *RenderBuffer) SetString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
	return x
}

// SetStringCentered writes s centered inside rect on row y
func (b *RenderBuffer) SetStringCentered(rect Rect, y int, s string, style tcell.Style) {
	n := RuneLen(s)
	x := rect.X + (rect.W-n)/2
	if x < rect.X {
		x = rect.X
	}
	b.SetString(x, y, s, style)
}

// RowString returns row y as a string, for tests and debugging
func (b *RenderBuffer) RowString(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	out := make([]rune, b.width)
	for x := 0; x < b.width; x++ {
		r := b.cells[y*b.width+x].Rune
		if r == 0 {
			r = ' '
		}
		out[x] = r
	}
	return string(out)
}

// Touched reports whether any renderer wrote x, y this frame
func (b *RenderBuffer) Touched(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.touched[y*b.width+x]
}

// FlushToScreen writes the buffer to the screen and shows it
func (b *RenderBuffer) FlushToScreen(screen ScreenWriter) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, c.Style)
		}
	}
	screen.Show()
}

// RuneLen counts runes in s
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
