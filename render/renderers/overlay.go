package renderers

import (
	"fmt"

	"github.com/lixenwraith/mole-strike/constants"
	"github.com/lixenwraith/mole-strike/engine"
	"github.com/lixenwraith/mole-strike/render"
)

const overlayMinWidth = 34

// OverlayRenderer draws the end-of-session tally over the board
type OverlayRenderer struct{}

// NewOverlayRenderer creates a new overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// IsVisible returns true once a session has ended and no new one has started
func (r *OverlayRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.Game.Running && ctx.Game.Result != nil
}

// Render draws the window with its border, title, tally lines and hint
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	res := ctx.Game.Result
	if res == nil {
		return
	}

	box := OverlayRect(ctx.Layout)
	buf.Fill(box, ' ', render.StyleOverlay)
	r.drawBorder(buf, box, overlayTitle(res.Reason))

	inner := render.Rect{X: box.X + 1, Y: box.Y + 1, W: box.W - 2, H: box.H - 2}
	text := render.StyleOverlay
	lines := OverlayLines(*res)

	y := inner.Y + 1
	for _, line := range lines {
		style := text
		if line == constants.OverlayNewBest {
			style = render.StyleOverlay.Foreground(render.RgbNewBest).Bold(true)
		}
		buf.SetStringCentered(inner, y, line, style)
		y++
	}
	buf.SetStringCentered(inner, inner.Y+inner.H-1, constants.OverlayPlayAgain, render.StyleOverlay.Foreground(render.RgbTextDim))
}

func (r *OverlayRenderer) drawBorder(buf *render.RenderBuffer, box render.Rect, title string) {
	border := render.StyleOverlay.Foreground(render.RgbOverlayBorder)
	right := box.X + box.W - 1
	bottom := box.Y + box.H - 1

	buf.Set(box.X, box.Y, '╔', border)
	buf.Set(right, box.Y, '╗', border)
	buf.Set(box.X, bottom, '╚', border)
	buf.Set(right, bottom, '╝', border)
	for x := box.X + 1; x < right; x++ {
		buf.Set(x, box.Y, '═', border)
		buf.Set(x, bottom, '═', border)
	}
	for y := box.Y + 1; y < bottom; y++ {
		buf.Set(box.X, y, '║', border)
		buf.Set(right, y, '║', border)
	}

	if title != "" {
		buf.SetStringCentered(box, box.Y, title, render.StyleOverlay.Foreground(render.RgbOverlayTitle).Bold(true))
	}
}

// OverlayLines returns the tally shown for a finished session
func OverlayLines(res engine.Result) []string {
	lines := []string{
		fmt.Sprintf("Moles hit: %d", res.Score),
		fmt.Sprintf("Best: %s", FormatBest(res.Best)),
	}
	if res.NewBest {
		lines = append(lines, constants.OverlayNewBest)
	}
	if res.Presses > 0 {
		lines = append(lines, fmt.Sprintf("Accuracy: %.0f%% (%d/%d)", res.Accuracy()*100, res.Hits, res.Presses))
	}
	return lines
}

// OverlayRect centers the window on the board, widening to the screen when the board is narrow
func OverlayRect(l render.Layout) render.Rect {
	w := max(l.Board.W, overlayMinWidth)
	w = min(w, l.Screen.W)
	h := 8
	return render.Rect{
		X: max(0, l.Board.X+(l.Board.W-w)/2),
		Y: max(0, l.Board.Y+(l.Board.H-h)/2),
		W: w,
		H: h,
	}
}

func overlayTitle(reason engine.EndReason) string {
	if reason == engine.EndStopped {
		return constants.OverlayTitleStop
	}
	return constants.OverlayTitle
}
