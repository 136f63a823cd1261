package sim

import "github.com/go-gl/mathgl/mgl64"

// Body is one simulated planet. Radius and mass are cached from the tier table
// when the body is created and are never changed afterwards.
type Body struct {
	ID   uint64
	Pos  mgl64.Vec2
	Vel  mgl64.Vec2
	Tier int

	radius float64
	mass   float64
}

// Radius returns the body's radius (the tier table value).
func (b *Body) Radius() float64 { return b.radius }

// Mass returns the body's mass (the tier table value).
func (b *Body) Mass() float64 { return b.mass }

// Registry owns the live bodies of one game. Iteration order is insertion order.
// IDs are never reused for the lifetime of the registry, including across Clear.
type Registry struct {
	bodies []*Body
	nextID uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// newBody allocates an ID and derives radius and mass from the tier table
// without inserting the body.
func (r *Registry) newBody(pos, vel mgl64.Vec2, tier int) *Body {
	tier = clampTier(tier)
	t := TierAt(tier)
	b := &Body{
		ID:     r.nextID,
		Pos:    pos,
		Vel:    vel,
		Tier:   tier,
		radius: t.Radius,
		mass:   t.Mass,
	}
	r.nextID++
	return b
}

// Spawn inserts a new body at pos with the given velocity and tier.
func (r *Registry) Spawn(pos, vel mgl64.Vec2, tier int) *Body {
	b := r.newBody(pos, vel, tier)
	r.bodies = append(r.bodies, b)
	return b
}

// Remove deletes the body with the given id. Removing an absent id is a no-op
// and reports false.
func (r *Registry) Remove(id uint64) bool {
	for i, b := range r.bodies {
		if b.ID == id {
			r.bodies = append(r.bodies[:i], r.bodies[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the body with the given id.
func (r *Registry) Get(id uint64) (*Body, bool) {
	for _, b := range r.bodies {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Len returns the number of live bodies.
func (r *Registry) Len() int { return len(r.bodies) }

// ForEach calls fn for every live body, oldest first.
func (r *Registry) ForEach(fn func(*Body)) {
	for _, b := range r.bodies {
		fn(b)
	}
}

// Bodies returns a snapshot of the live set. The slice is a copy; the bodies are not.
func (r *Registry) Bodies() []*Body {
	out := make([]*Body, len(r.bodies))
	copy(out, r.bodies)
	return out
}

// Clear removes every body. The id counter keeps running.
func (r *Registry) Clear() {
	r.bodies = nil
}

// commit applies a resolver pass: drops every consumed body and appends the
// pending insertions in order.
func (r *Registry) commit(consumed map[uint64]struct{}, added []*Body) {
	if len(consumed) > 0 {
		kept := r.bodies[:0]
		for _, b := range r.bodies {
			if _, gone := consumed[b.ID]; !gone {
				kept = append(kept, b)
			}
		}
		for i := len(kept); i < len(r.bodies); i++ {
			r.bodies[i] = nil
		}
		r.bodies = kept
	}
	r.bodies = append(r.bodies, added...)
}
