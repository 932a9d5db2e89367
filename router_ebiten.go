package cardtable

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PollEbiten feeds one tick of input into the router. A queued synthetic
// event takes precedence over the real mouse for that tick. Only the left
// mouse button is read; touch and multi-pointer input are not handled.
//
// Call it from ebiten.Game.Update.
func (r *Router) PollEbiten() {
	if r.processInjectedInput() {
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		r.mouseDown = true
		r.Down(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if r.mouseDown {
			r.mouseDown = false
			r.Up(x, y)
		}
	case r.mouseDown && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if c := r.local(x, y); c != r.session.current {
			r.Move(x, y)
		}
	}
}
