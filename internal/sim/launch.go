package sim

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// LaunchState is the slingshot controller state.
type LaunchState int

const (
	LaunchIdle LaunchState = iota
	LaunchAiming
)

func (s LaunchState) String() string {
	switch s {
	case LaunchIdle:
		return "idle"
	case LaunchAiming:
		return "aiming"
	default:
		return "unknown"
	}
}

// LaunchRequest is a body the player released: it spawns at Pos with Vel, using
// whatever tier is next at the time it is applied.
type LaunchRequest struct {
	Pos mgl64.Vec2
	Vel mgl64.Vec2
}

// Aim describes an in-progress drag for the renderer's trajectory overlay.
type Aim struct {
	Anchor mgl64.Vec2
	Live   mgl64.Vec2
	Target mgl64.Vec2 // end of the dotted preview line
}

// Launcher turns drag gestures into launch requests. Pulling back launches
// forward: the velocity is the reversed drag vector times the pull multiplier.
type Launcher struct {
	state  LaunchState
	anchor mgl64.Vec2
	live   mgl64.Vec2
	pull   float64
}

// NewLauncher creates an idle launcher.
func NewLauncher(pullMultiplier float64) *Launcher {
	return &Launcher{pull: pullMultiplier}
}

// State returns the current controller state.
func (l *Launcher) State() LaunchState { return l.state }

// Begin starts aiming at p. It is ignored while already aiming.
func (l *Launcher) Begin(p mgl64.Vec2) bool {
	if l.state == LaunchAiming {
		return false
	}
	l.state = LaunchAiming
	l.anchor = p
	l.live = p
	return true
}

// Move updates the live aim point. It has no physics effect.
func (l *Launcher) Move(p mgl64.Vec2) {
	if l.state == LaunchAiming {
		l.live = p
	}
}

// Release ends the drag at p and returns the launch to perform.
func (l *Launcher) Release(p mgl64.Vec2) (LaunchRequest, bool) {
	if l.state != LaunchAiming {
		return LaunchRequest{}, false
	}
	l.live = p
	l.state = LaunchIdle
	return LaunchRequest{
		Pos: l.anchor,
		Vel: LaunchVelocity(l.anchor, l.live, l.pull),
	}, true
}

// Cancel abandons the drag without launching.
func (l *Launcher) Cancel() {
	l.state = LaunchIdle
}

// Aim returns the current drag, if any.
func (l *Launcher) Aim() (Aim, bool) {
	if l.state != LaunchAiming {
		return Aim{}, false
	}
	back := l.anchor.Sub(l.live)
	return Aim{
		Anchor: l.anchor,
		Live:   l.live,
		Target: l.anchor.Add(back.Mul(AimPreviewScale)),
	}, true
}

// LaunchVelocity returns (anchor - release) * mult per axis.
func LaunchVelocity(anchor, release mgl64.Vec2, mult float64) mgl64.Vec2 {
	return anchor.Sub(release).Mul(mult)
}

// TierPicker draws the next spawn tier uniformly from the smallest
// SpawnableTiers tiers. The source is injectable so runs can be replayed.
type TierPicker struct {
	rng *rand.Rand
}

// NewTierPicker creates a picker over src.
func NewTierPicker(src rand.Source) *TierPicker {
	return &TierPicker{rng: rand.New(src)} // #nosec G404 -- gameplay only
}

// Next returns a tier in [0, SpawnableTiers).
func (p *TierPicker) Next() int {
	return p.rng.Intn(SpawnableTiers)
}
