package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Garsondee/Sputnik/internal/sim"
)

// pointer is one frame of mouse state in field coordinates.
type pointer struct {
	X, Y         float64
	JustPressed  bool
	Pressed      bool
	JustReleased bool
}

func (p pointer) pos() mgl64.Vec2 { return mgl64.Vec2{p.X, p.Y} }

// rect is an axis-aligned screen rectangle used for hit tests.
type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// dragInput turns raw pointer frames into slingshot gesture intents. Leaving
// the field mid-drag cancels the shot.
type dragInput struct {
	active bool
	last   mgl64.Vec2
}

// update returns the intents for this frame. canStart gates new drags; a drag
// already in progress always runs to completion.
func (d *dragInput) update(p pointer, field rect, canStart bool) []any {
	inside := field.contains(p.X, p.Y)
	pos := p.pos()

	if !d.active {
		if p.JustPressed && canStart && inside {
			d.active = true
			d.last = pos
			return []any{sim.GestureStart{P: pos}}
		}
		return nil
	}

	switch {
	case !inside:
		d.active = false
		return []any{sim.GestureCancel{}}
	case p.JustReleased || !p.Pressed:
		d.active = false
		return []any{sim.GestureEnd{P: pos}}
	case pos != d.last:
		d.last = pos
		return []any{sim.GestureMove{P: pos}}
	}
	return nil
}

// cancel drops a drag without emitting anything; the caller submits the
// cancel intent itself.
func (d *dragInput) cancel() {
	d.active = false
}
