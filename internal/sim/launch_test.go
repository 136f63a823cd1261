package sim

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLaunchVelocity_PullBackLaunchesForward(t *testing.T) {
	v := LaunchVelocity(mgl64.Vec2{300, 400}, mgl64.Vec2{250, 450}, 0.15)
	// Pulling down-left launches up-right.
	assertVec(t, "launch velocity", v, mgl64.Vec2{7.5, -7.5})
}

func TestLauncher_FullGesture(t *testing.T) {
	l := NewLauncher(PullMultiplier)
	if !l.Begin(mgl64.Vec2{300, 400}) {
		t.Fatal("Begin from idle should succeed")
	}
	if l.State() != LaunchAiming {
		t.Fatalf("expected aiming, got %s", l.State())
	}
	l.Move(mgl64.Vec2{260, 420})

	req, ok := l.Release(mgl64.Vec2{250, 450})
	if !ok {
		t.Fatal("Release while aiming should launch")
	}
	assertVec(t, "launch position", req.Pos, mgl64.Vec2{300, 400})
	assertVec(t, "launch velocity", req.Vel, mgl64.Vec2{7.5, -7.5})
	if l.State() != LaunchIdle {
		t.Fatalf("expected idle after release, got %s", l.State())
	}
}

func TestLauncher_ReleaseWithoutBeginDoesNothing(t *testing.T) {
	l := NewLauncher(PullMultiplier)
	if _, ok := l.Release(mgl64.Vec2{1, 1}); ok {
		t.Fatal("release from idle should not launch")
	}
}

func TestLauncher_CancelDoesNotLaunch(t *testing.T) {
	l := NewLauncher(PullMultiplier)
	l.Begin(mgl64.Vec2{100, 100})
	l.Cancel()
	if l.State() != LaunchIdle {
		t.Fatal("cancel should return to idle")
	}
	if _, ok := l.Release(mgl64.Vec2{50, 50}); ok {
		t.Fatal("release after cancel should not launch")
	}
}

func TestLauncher_MoveOnlyWhileAiming(t *testing.T) {
	l := NewLauncher(PullMultiplier)
	l.Move(mgl64.Vec2{10, 10})
	if _, ok := l.Aim(); ok {
		t.Fatal("idle launcher should not report an aim")
	}

	l.Begin(mgl64.Vec2{100, 100})
	if l.Begin(mgl64.Vec2{5, 5}) {
		t.Fatal("second Begin while aiming should be ignored")
	}
	l.Move(mgl64.Vec2{90, 110})
	aim, ok := l.Aim()
	if !ok {
		t.Fatal("aiming launcher should report an aim")
	}
	assertVec(t, "anchor", aim.Anchor, mgl64.Vec2{100, 100})
	assertVec(t, "live", aim.Live, mgl64.Vec2{90, 110})
	// Preview extends the reversed drag twice its length.
	assertVec(t, "target", aim.Target, mgl64.Vec2{120, 80})
}

func TestTierPicker_OnlySmallTiers(t *testing.T) {
	p := NewTierPicker(rand.NewSource(42))
	seen := map[int]bool{}
	for i := 0; i < 10000; i++ {
		tier := p.Next()
		if tier < 0 || tier >= SpawnableTiers {
			t.Fatalf("draw %d out of range: %d", i, tier)
		}
		seen[tier] = true
	}
	if len(seen) != SpawnableTiers {
		t.Fatalf("expected all %d spawnable tiers to appear, saw %v", SpawnableTiers, seen)
	}
}

func TestTierPicker_SeededSequenceRepeats(t *testing.T) {
	a := NewTierPicker(rand.NewSource(7))
	b := NewTierPicker(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d differs for equal seeds: %d vs %d", i, x, y)
		}
	}
}
