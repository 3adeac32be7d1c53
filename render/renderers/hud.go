package renderers

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mole-strike/constants"
	"github.com/lixenwraith/mole-strike/render"
)

// HUDRenderer draws time, score, best, hold and sound state above the board
type HUDRenderer struct{}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// Render implements SystemRenderer
func (h *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	g := ctx.Game
	base := tcell.StyleDefault.Background(render.RgbBackground)
	label := base.Foreground(render.RgbHUDLabel)
	value := base.Foreground(render.RgbHUDValue).Bold(true)

	timeStyle := value
	if g.Running && g.Remaining <= 5 {
		timeStyle = base.Foreground(render.RgbTimeLow).Bold(true)
	}
	scoreStyle := value
	if !g.LastHit.IsZero() && ctx.Now.Sub(g.LastHit) < constants.HitFlashDuration {
		scoreStyle = base.Foreground(render.RgbScoreFlash).Bold(true)
	}

	type field struct {
		label string
		value string
		style tcell.Style
	}
	fields := []field{
		{"Time ", fmt.Sprintf("%ds", g.Remaining), timeStyle},
		{"Score ", fmt.Sprintf("%d", g.Score), scoreStyle},
		{"Best ", FormatBest(g.Best), value},
		{"Hold ", FormatHold(g.Hold), value},
	}

	// Measure first so the line is centered over the board
	width := 0
	for i, f := range fields {
		width += render.RuneLen(f.label) + render.RuneLen(f.value)
		if i > 0 {
			width += 3
		}
	}
	soundText := h.soundText(ctx)
	if soundText != "" {
		width += 3 + render.RuneLen(soundText)
	}

	y := ctx.Layout.HUD.Y
	x := max(0, (ctx.Width-width)/2)
	for i, f := range fields {
		if i > 0 {
			x += 3
		}
		x = buf.SetString(x, y, f.label, label)
		x = buf.SetString(x, y, f.value, f.style)
	}

	if g.Running && ctx.Accuracy > 0 {
		acc := fmt.Sprintf("Accuracy %.0f%%", ctx.Accuracy*100)
		buf.SetStringCentered(ctx.Layout.HUD, y+1, acc, render.StyleHint)
	}

	if soundText != "" {
		x += 3
		bg := render.RgbAudioActive
		if ctx.Muted {
			bg = render.RgbAudioMuted
		}
		buf.SetString(x, y, soundText, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(bg))
	}
}

func (h *HUDRenderer) soundText(ctx render.RenderContext) string {
	if !ctx.SoundAvailable {
		return ""
	}
	if ctx.Muted {
		return " MUTE "
	}
	return " SOUND "
}

// FormatBest renders the best score, the placeholder stands for no best yet
func FormatBest(best int) string {
	if best <= 0 {
		return constants.NoBestMarker
	}
	return fmt.Sprintf("%d", best)
}

// FormatHold renders a hold duration in whole milliseconds
func FormatHold(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}
