package renderers

import (
	"github.com/lixenwraith/mole-strike/constants"
	"github.com/lixenwraith/mole-strike/render"
)

// FooterRenderer draws key hints matching the controls enabled in the current state
type FooterRenderer struct{}

// NewFooterRenderer creates a footer renderer
func NewFooterRenderer() *FooterRenderer {
	return &FooterRenderer{}
}

// Render implements SystemRenderer
func (f *FooterRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	hints := constants.FooterHintsIdle
	if ctx.Game.Running {
		hints = constants.FooterHintsRunning
	}
	footer := ctx.Layout.Footer
	buf.SetStringCentered(footer, footer.Y+footer.H-1, hints, render.StyleHint)
}
