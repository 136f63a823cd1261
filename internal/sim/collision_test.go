package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestResolve_EqualTiersMerge(t *testing.T) {
	reg := NewRegistry()
	a := reg.Spawn(mgl64.Vec2{300, 250}, mgl64.Vec2{1, 0}, 2)
	b := reg.Spawn(mgl64.Vec2{320, 250}, mgl64.Vec2{-1, 2}, 2)
	midpoint := a.Pos.Add(b.Pos).Mul(0.5)
	avgVel := a.Vel.Add(b.Vel).Mul(0.5)

	events := Resolve(reg, still())

	if reg.Len() != 1 {
		t.Fatalf("expected exactly one body after merge, got %d", reg.Len())
	}
	if len(events) != 1 {
		t.Fatalf("expected one merge event, got %d", len(events))
	}
	child := reg.Bodies()[0]
	if child.Tier != 3 {
		t.Fatalf("expected child tier 3, got %d", child.Tier)
	}
	assertVec(t, "child position", child.Pos, midpoint)
	assertVec(t, "child velocity", child.Vel, avgVel)
	if child.Radius() != TierAt(3).Radius || child.Mass() != TierAt(3).Mass {
		t.Fatalf("child radius/mass not taken from tier table: r=%.0f m=%.0f", child.Radius(), child.Mass())
	}
	if events[0].Points != TierAt(3).Score {
		t.Fatalf("expected %d points, got %d", TierAt(3).Score, events[0].Points)
	}
	if _, ok := reg.Get(a.ID); ok {
		t.Fatal("parent a still registered")
	}
	if _, ok := reg.Get(b.ID); ok {
		t.Fatal("parent b still registered")
	}
}

func TestResolve_TerminalTierNeverMerges(t *testing.T) {
	reg := NewRegistry()
	a := reg.Spawn(mgl64.Vec2{250, 250}, mgl64.Vec2{}, TerminalTier)
	b := reg.Spawn(mgl64.Vec2{350, 250}, mgl64.Vec2{}, TerminalTier)
	gapBefore := b.Pos[0] - a.Pos[0]

	events := Resolve(reg, still())

	if len(events) != 0 || reg.Len() != 2 {
		t.Fatalf("terminal pair merged: events=%d bodies=%d", len(events), reg.Len())
	}
	if b.Pos[0]-a.Pos[0] <= gapBefore {
		t.Fatalf("terminal pair should still be pushed apart: gap %.3f -> %.3f", gapBefore, b.Pos[0]-a.Pos[0])
	}
}

func TestResolve_DifferentTiersOnlyBounce(t *testing.T) {
	reg := NewRegistry()
	older := reg.Spawn(mgl64.Vec2{100, 100}, mgl64.Vec2{}, 1)
	newer := reg.Spawn(mgl64.Vec2{120, 100}, mgl64.Vec2{}, 0)

	events := Resolve(reg, still())

	if len(events) != 0 || reg.Len() != 2 {
		t.Fatalf("different tiers merged: events=%d bodies=%d", len(events), reg.Len())
	}
	// r0+r1 = 30, dist 20: half-overlap 5, each body moves 10% of it.
	assertVec(t, "newer body", newer.Pos, mgl64.Vec2{120.5, 100})
	assertVec(t, "older body", older.Pos, mgl64.Vec2{99.5, 100})
}

func TestResolve_NoContactNoChange(t *testing.T) {
	reg := NewRegistry()
	a := reg.Spawn(mgl64.Vec2{100, 100}, mgl64.Vec2{1, 1}, 0)
	b := reg.Spawn(mgl64.Vec2{124, 100}, mgl64.Vec2{-1, 0}, 0)

	Resolve(reg, still())

	assertVec(t, "a position", a.Pos, mgl64.Vec2{100, 100})
	assertVec(t, "b velocity", b.Vel, mgl64.Vec2{-1, 0})
	if reg.Len() != 2 {
		t.Fatalf("touching-but-not-overlapping pair merged")
	}
}

func TestResolve_VelocityExchangePerAxis(t *testing.T) {
	reg := NewRegistry()
	older := reg.Spawn(mgl64.Vec2{100, 100}, mgl64.Vec2{0, 1}, 1) // m=20
	newer := reg.Spawn(mgl64.Vec2{120, 100}, mgl64.Vec2{2, 0}, 0) // m=10

	Resolve(reg, still())

	// vA' = (vA(mA-mB) + 2 mB vB) / (mA+mB) with A the newer body.
	assertVec(t, "newer velocity", newer.Vel, mgl64.Vec2{(2*(10-20) + 2*20*0) / 30.0, (0*(10-20) + 2*20*1) / 30.0})
	assertVec(t, "older velocity", older.Vel, mgl64.Vec2{(0*(20-10) + 2*10*2) / 30.0, (1*(20-10) + 2*10*0) / 30.0})
}

func TestResolve_ThreeWayOverlapMergesOncePerPass(t *testing.T) {
	reg := NewRegistry()
	reg.Spawn(mgl64.Vec2{300, 250}, mgl64.Vec2{}, 0)
	reg.Spawn(mgl64.Vec2{310, 250}, mgl64.Vec2{}, 0)
	reg.Spawn(mgl64.Vec2{305, 258}, mgl64.Vec2{}, 0)

	events := Resolve(reg, still())

	if len(events) != 1 {
		t.Fatalf("expected one merge from three overlapping bodies, got %d", len(events))
	}
	if reg.Len() != 2 {
		t.Fatalf("expected two bodies after pass, got %d", reg.Len())
	}
}

func TestResolve_ChildWaitsForNextPass(t *testing.T) {
	reg := NewRegistry()
	reg.Spawn(mgl64.Vec2{300, 250}, mgl64.Vec2{}, 1)
	reg.Spawn(mgl64.Vec2{295, 250}, mgl64.Vec2{}, 0)
	reg.Spawn(mgl64.Vec2{305, 250}, mgl64.Vec2{}, 0)

	first := Resolve(reg, still())
	if len(first) != 1 || reg.Len() != 2 {
		t.Fatalf("first pass: events=%d bodies=%d", len(first), reg.Len())
	}

	second := Resolve(reg, still())
	if len(second) != 1 || reg.Len() != 1 {
		t.Fatalf("second pass: events=%d bodies=%d", len(second), reg.Len())
	}
	if reg.Bodies()[0].Tier != 2 {
		t.Fatalf("expected tier 2 after second pass, got %d", reg.Bodies()[0].Tier)
	}
}

func TestResolve_EachBodyConsumedAtMostOnce(t *testing.T) {
	reg := NewRegistry()
	for i := 0; i < 8; i++ {
		reg.Spawn(mgl64.Vec2{300 + float64(i%3)*4, 250 + float64(i/3)*4}, mgl64.Vec2{}, 0)
	}

	events := Resolve(reg, still())

	seen := map[uint64]bool{}
	for _, ev := range events {
		for _, p := range ev.Parents {
			if seen[p] {
				t.Fatalf("body #%d consumed twice in one pass", p)
			}
			seen[p] = true
		}
	}
	if reg.Len() != 8-len(events) {
		t.Fatalf("expected %d bodies, got %d", 8-len(events), reg.Len())
	}
}

func TestResolve_CoincidentCentresPushAlongX(t *testing.T) {
	reg := NewRegistry()
	older := reg.Spawn(mgl64.Vec2{200, 200}, mgl64.Vec2{}, 0)
	newer := reg.Spawn(mgl64.Vec2{200, 200}, mgl64.Vec2{}, 1)

	Resolve(reg, still())

	if newer.Pos[0] <= older.Pos[0] {
		t.Fatalf("expected newer body pushed to +x: newer=%.3f older=%.3f", newer.Pos[0], older.Pos[0])
	}
	if !near(newer.Pos[1], 200) || !near(older.Pos[1], 200) {
		t.Fatal("coincident push should not move along y")
	}
}
