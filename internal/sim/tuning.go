package sim

import "github.com/go-gl/mathgl/mgl64"

// Play-field defaults. Units are pixels and ticks; one tick is one rendered frame.
const (
	FieldWidth  = 600.0
	FieldHeight = 500.0

	GravityStrength  = 0.35 // pull per mass unit, scaled by gravityMassScale
	gravityMassScale = 100.0
	GravityEpsilon   = 5.0   // no pull inside this distance of the well
	GravityRadius    = 180.0 // visual extent of the well; physics ignores it
	Damping          = 0.99
	WallBounce       = -0.7
	PullMultiplier   = 0.15
	SeparationFactor = 0.1 // fraction of half-overlap corrected per body per step
	AimPreviewScale  = 2.0 // trajectory overlay length relative to the drag

	BestScoreKey = "sputnik_best"
)

// Tuning holds the physics constants for one simulation. Tests and the headless
// runner override individual fields; everything else uses DefaultTuning.
type Tuning struct {
	Width, Height    float64
	GravityStrength  float64
	GravityEpsilon   float64
	Damping          float64
	WallBounce       float64 // must lie in (-1, 0)
	PullMultiplier   float64
	SeparationFactor float64
}

// DefaultTuning returns the tuning used by the shipped game.
func DefaultTuning() Tuning {
	return Tuning{
		Width:            FieldWidth,
		Height:           FieldHeight,
		GravityStrength:  GravityStrength,
		GravityEpsilon:   GravityEpsilon,
		Damping:          Damping,
		WallBounce:       WallBounce,
		PullMultiplier:   PullMultiplier,
		SeparationFactor: SeparationFactor,
	}
}

// Center returns the gravity-well position.
func (t Tuning) Center() mgl64.Vec2 {
	return mgl64.Vec2{t.Width / 2, t.Height / 2}
}
