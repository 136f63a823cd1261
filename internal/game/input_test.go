package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Garsondee/Sputnik/internal/sim"
)

var testField = rect{w: 600, h: 500}

func TestDragInput_FullGesture(t *testing.T) {
	var d dragInput

	got := d.update(pointer{X: 300, Y: 400, JustPressed: true, Pressed: true}, testField, true)
	if len(got) != 1 || got[0] != (sim.GestureStart{P: mgl64.Vec2{300, 400}}) {
		t.Fatalf("press: got %#v", got)
	}
	if got := d.update(pointer{X: 300, Y: 400, Pressed: true}, testField, true); got != nil {
		t.Fatalf("unmoved pointer should emit nothing, got %#v", got)
	}
	got = d.update(pointer{X: 260, Y: 430, Pressed: true}, testField, true)
	if len(got) != 1 || got[0] != (sim.GestureMove{P: mgl64.Vec2{260, 430}}) {
		t.Fatalf("move: got %#v", got)
	}
	got = d.update(pointer{X: 250, Y: 450, JustReleased: true}, testField, true)
	if len(got) != 1 || got[0] != (sim.GestureEnd{P: mgl64.Vec2{250, 450}}) {
		t.Fatalf("release: got %#v", got)
	}
	if d.active {
		t.Fatal("drag still active after release")
	}
}

func TestDragInput_LeavingFieldCancels(t *testing.T) {
	var d dragInput
	d.update(pointer{X: 100, Y: 100, JustPressed: true, Pressed: true}, testField, true)

	got := d.update(pointer{X: 700, Y: 100, Pressed: true}, testField, true)
	if len(got) != 1 || got[0] != (sim.GestureCancel{}) {
		t.Fatalf("expected cancel, got %#v", got)
	}
	if got := d.update(pointer{X: 100, Y: 100, JustReleased: true}, testField, true); got != nil {
		t.Fatalf("release after cancel should emit nothing, got %#v", got)
	}
}

func TestDragInput_RespectsCanStart(t *testing.T) {
	var d dragInput
	if got := d.update(pointer{X: 100, Y: 100, JustPressed: true, Pressed: true}, testField, false); got != nil {
		t.Fatalf("drag started while blocked: %#v", got)
	}
	if got := d.update(pointer{X: 650, Y: 100, JustPressed: true, Pressed: true}, testField, true); got != nil {
		t.Fatalf("drag started outside the field: %#v", got)
	}
}

func TestDragInput_MissedReleaseStillLaunches(t *testing.T) {
	var d dragInput
	d.update(pointer{X: 100, Y: 100, JustPressed: true, Pressed: true}, testField, true)
	got := d.update(pointer{X: 90, Y: 110}, testField, true)
	if len(got) != 1 || got[0] != (sim.GestureEnd{P: mgl64.Vec2{90, 110}}) {
		t.Fatalf("expected end on button up, got %#v", got)
	}
}

func TestDragInput_DrivesScheduler(t *testing.T) {
	ts := sim.NewTestSim()
	var d dragInput
	frames := []pointer{
		{X: 300, Y: 400, JustPressed: true, Pressed: true},
		{X: 280, Y: 420, Pressed: true},
		{X: 250, Y: 450, JustReleased: true},
	}
	for _, f := range frames {
		for _, in := range d.update(f, testField, true) {
			ts.Sched.Submit(in)
		}
		ts.RunTicks(1)
	}
	if n := len(ts.Snapshot().Bodies); n != 1 {
		t.Fatalf("expected one launched body, got %d", n)
	}
}

func TestRect_Contains(t *testing.T) {
	r := rect{x: 10, y: 10, w: 20, h: 5}
	if !r.contains(10, 10) || !r.contains(29.9, 14.9) {
		t.Fatal("inside points rejected")
	}
	if r.contains(30, 12) || r.contains(15, 15) || r.contains(9, 12) {
		t.Fatal("outside points accepted")
	}
}
