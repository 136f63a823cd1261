package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MergeEvent records one merge performed by Resolve.
type MergeEvent struct {
	Parents [2]uint64
	Child   uint64
	Tier    int // tier of the child
	Points  int
	Pos     mgl64.Vec2
}

// Resolve runs one collision pass over every unordered pair of live bodies.
// Pairs are visited newest-first on both indices. Overlapping pairs are pushed
// apart a little and exchange velocity; equal non-terminal tiers merge.
//
// Merges are staged: consumed parents go into a removal set and children into
// an insertion list, and both are applied to the registry after the pass. A
// consumed body is skipped for the rest of the pass and a child does not take
// part until the next step.
func Resolve(reg *Registry, t Tuning) []MergeEvent {
	bodies := reg.bodies
	consumed := make(map[uint64]struct{})
	var added []*Body
	var events []MergeEvent

	for i := len(bodies) - 1; i >= 0; i-- {
		a := bodies[i]
		if _, gone := consumed[a.ID]; gone {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			b := bodies[j]
			if _, gone := consumed[b.ID]; gone {
				continue
			}
			if !collide(a, b, t.SeparationFactor) {
				continue
			}
			if a.Tier != b.Tier || IsTerminal(a.Tier) {
				continue
			}

			child := reg.newBody(
				a.Pos.Add(b.Pos).Mul(0.5),
				a.Vel.Add(b.Vel).Mul(0.5),
				a.Tier+1,
			)
			consumed[a.ID] = struct{}{}
			consumed[b.ID] = struct{}{}
			added = append(added, child)
			events = append(events, MergeEvent{
				Parents: [2]uint64{a.ID, b.ID},
				Child:   child.ID,
				Tier:    child.Tier,
				Points:  TierAt(child.Tier).Score,
				Pos:     child.Pos,
			})
			break
		}
	}

	reg.commit(consumed, added)
	return events
}

// collide reports whether a and b overlap and, if so, separates them by a
// fraction of the overlap and exchanges velocity.
func collide(a, b *Body, separation float64) bool {
	d := a.Pos.Sub(b.Pos)
	dist := d.Len()
	if dist >= a.radius+b.radius {
		return false
	}

	// Coincident centres fall back to angle 0, as atan2(0, 0) does.
	angle := math.Atan2(d[1], d[0])
	overlap := (a.radius + b.radius - dist) / 2
	push := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(overlap * separation)
	a.Pos = a.Pos.Add(push)
	b.Pos = b.Pos.Sub(push)

	a.Vel, b.Vel = exchange(a.Vel, b.Vel, a.mass, b.mass)
	return true
}

// exchange applies the one-dimensional elastic collision formula to each axis
// independently. It is not a true 2D collision.
func exchange(va, vb mgl64.Vec2, ma, mb float64) (mgl64.Vec2, mgl64.Vec2) {
	sum := ma + mb
	var outA, outB mgl64.Vec2
	for k := 0; k < 2; k++ {
		outA[k] = (va[k]*(ma-mb) + 2*mb*vb[k]) / sum
		outB[k] = (vb[k]*(mb-ma) + 2*ma*va[k]) / sum
	}
	return outA, outB
}
