package ebitenview

import (
	"time"

	"github.com/phanxgames/verbal"
)

// pointerTracker turns polled mouse state into discrete dispatcher inputs.
// A click is synthesized on release when the release lands on the object
// that received the press.
type pointerTracker struct {
	x, y    float64
	seen    bool
	down    bool
	button  verbal.MouseButton
	downHit *verbal.Object
}

// sample feeds one polled frame of mouse state to the layer.
func (p *pointerTracker) sample(l *verbal.Layer, x, y float64, pressed bool, button verbal.MouseButton, now time.Time) {
	in := verbal.PointerInput{X: x, Y: y, Button: button, Time: now}

	if !p.seen || x != p.x || y != p.y {
		in.Kind = verbal.InputMove
		l.Dispatch(in)
		p.x, p.y, p.seen = x, y, true
	}

	switch {
	case pressed && !p.down:
		p.down = true
		p.button = button
		in.Kind = verbal.InputDown
		p.downHit = l.Dispatch(in)
	case !pressed && p.down:
		p.down = false
		// Keep the button that started the interaction.
		in.Button = p.button
		in.Kind = verbal.InputUp
		hit := l.Dispatch(in)
		if hit == p.downHit {
			in.Kind = verbal.InputClick
			l.Dispatch(in)
		}
		p.downHit = nil
	}
}
