package renderers

import (
	"github.com/lixenwraith/mole-strike/constants"
	"github.com/lixenwraith/mole-strike/engine"
	"github.com/lixenwraith/mole-strike/render"
)

// BoardRenderer draws the grid of holes and the mole that is up
type BoardRenderer struct{}

// NewBoardRenderer creates a board renderer
func NewBoardRenderer() *BoardRenderer {
	return &BoardRenderer{}
}

// Render implements SystemRenderer
func (r *BoardRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	cells := ctx.Game.Cells
	for i, rect := range ctx.Layout.Cells {
		if i >= len(cells) {
			break
		}
		r.drawCell(buf, rect, i, cells[i])
	}
}

// drawCell renders one hole: rim, face row, mouth row, key label in the bottom rim
func (r *BoardRenderer) drawCell(buf *render.RenderBuffer, rect render.Rect, idx int, cell engine.Cell) {
	st := render.GetCellStyles(cell.State == engine.CellUp, cell.State == engine.CellHit)

	right := rect.X + rect.W - 1
	bottom := rect.Y + rect.H - 1

	buf.Set(rect.X, rect.Y, '┌', st.Border)
	buf.Set(right, rect.Y, '┐', st.Border)
	buf.Set(rect.X, bottom, '└', st.Border)
	buf.Set(right, bottom, '┘', st.Border)
	for x := rect.X + 1; x < right; x++ {
		buf.Set(x, rect.Y, '─', st.Border)
		buf.Set(x, bottom, '─', st.Border)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		buf.Set(rect.X, y, '│', st.Border)
		buf.Set(right, y, '│', st.Border)
	}

	inner := render.Rect{X: rect.X + 1, Y: rect.Y + 1, W: rect.W - 2, H: rect.H - 2}
	buf.Fill(inner, ' ', st.Fill)

	switch cell.State {
	case engine.CellUp:
		buf.SetStringCentered(inner, inner.Y, constants.MoleGlyph, st.Glyph)
	case engine.CellHit:
		buf.SetStringCentered(inner, inner.Y, constants.HitGlyph, st.Glyph)
	}
	buf.SetStringCentered(inner, inner.Y+inner.H-1, constants.HoleGlyph, st.Mouth)

	if label, ok := KeyLabel(idx); ok {
		buf.Set(rect.X+rect.W/2, bottom, label, st.Border)
	}
}

// KeyLabel returns the digit key bound to a cell index, only the first nine cells have one
func KeyLabel(idx int) (rune, bool) {
	if idx < 0 || idx > 8 {
		return 0, false
	}
	return rune('1' + idx), true
}
