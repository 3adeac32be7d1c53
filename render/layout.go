package render

import (
	"github.com/lixenwraith/mole-strike/constants"
)

// Rect is a screen rectangle in terminal cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether x, y lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout places the HUD, the board and the footer on a screen
type Layout struct {
	Rows, Cols int
	Screen     Rect
	HUD        Rect
	Board      Rect
	Footer     Rect
	Cells      []Rect // Reading order, index matches engine cell index
}

// NewLayout centers a rows x cols board on a screen of the given size
func NewLayout(screenW, screenH, rows, cols int) Layout {
	boardW := cols*constants.CellWidth + (cols-1)*constants.CellGap
	boardH := rows*constants.CellHeight + (rows-1)*constants.CellGap
	totalH := constants.HUDHeight + boardH + constants.FooterHeight

	left := max(0, (screenW-boardW)/2)
	top := max(0, (screenH-totalH)/2)

	l := Layout{
		Rows:   rows,
		Cols:   cols,
		Screen: Rect{0, 0, screenW, screenH},
		HUD:    Rect{0, top, screenW, constants.HUDHeight},
		Board:  Rect{left, top + constants.HUDHeight, boardW, boardH},
		Cells:  make([]Rect, 0, rows*cols),
	}
	l.Footer = Rect{0, l.Board.Y + boardH, screenW, constants.FooterHeight}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			l.Cells = append(l.Cells, Rect{
				X: left + c*(constants.CellWidth+constants.CellGap),
				Y: l.Board.Y + r*(constants.CellHeight+constants.CellGap),
				W: constants.CellWidth,
				H: constants.CellHeight,
			})
		}
	}
	return l
}

// Fits reports whether the whole layout is visible
func (l Layout) Fits() bool {
	return l.Board.W <= l.Screen.W && l.Footer.Y+l.Footer.H <= l.Screen.H
}

// CellAt hit-tests a screen position, -1 when no hole is there
func (l Layout) CellAt(x, y int) int {
	if !l.Board.Contains(x, y) {
		return -1
	}
	for i, r := range l.Cells {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
