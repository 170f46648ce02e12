package render

import (
	"vitop/internal/app"
	"vitop/internal/canvas"
)

// Renderer implements the coordinator's render hook: it rebuilds the
// dashboard view from the given buffers and flips it onto the screen.
type Renderer struct {
	screen *Screen
}

// New creates a renderer over screen. The caller owns the screen's
// Start/Stop lifecycle; the renderer only flips frames.
func New(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame.
func (r *Renderer) Render(data *canvas.Data, state *app.State) error {
	return r.screen.Flip(buildView(data, state))
}
