package sim

import "github.com/go-gl/mathgl/mgl64"

// BodyView is what a renderer needs to draw one body.
type BodyView struct {
	ID     uint64
	Pos    mgl64.Vec2
	Radius float64
	Tier   int
}

// Snapshot is a copy of the render-relevant state. It shares nothing with the
// live simulation and is safe to hand to another goroutine.
type Snapshot struct {
	Tick     int
	Width    float64
	Height   float64
	Bodies   []BodyView
	NextTier int
	Score    int
	Best     int
	Terminal bool
	Aim      *Aim // nil unless a drag is in progress
}

// Snapshot copies the render contract out of the state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     s.Tick,
		Width:    s.Tuning.Width,
		Height:   s.Tuning.Height,
		Bodies:   make([]BodyView, 0, s.Registry.Len()),
		NextTier: s.NextTier,
		Score:    s.Score.Current(),
		Best:     s.Score.Best(),
		Terminal: s.Terminal,
	}
	s.Registry.ForEach(func(b *Body) {
		snap.Bodies = append(snap.Bodies, BodyView{ID: b.ID, Pos: b.Pos, Radius: b.radius, Tier: b.Tier})
	})
	if aim, ok := s.Launcher.Aim(); ok {
		snap.Aim = &aim
	}
	return snap
}

// MaxTier returns the highest tier on the field, or -1 when it is empty.
func (s Snapshot) MaxTier() int {
	best := -1
	for _, b := range s.Bodies {
		if b.Tier > best {
			best = b.Tier
		}
	}
	return best
}
