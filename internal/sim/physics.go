package sim

// Integrate advances every body by one step: gravity toward the well, position
// update, damping, then wall clamping. It never adds or removes bodies.
//
// Gravity is a constant pull scaled by mass rather than an inverse-square law,
// so heavy planets sink to the centre faster.
func Integrate(reg *Registry, t Tuning) {
	center := t.Center()
	reg.ForEach(func(b *Body) {
		// 1. Gravity.
		toCenter := center.Sub(b.Pos)
		if dist := toCenter.Len(); dist > t.GravityEpsilon {
			force := t.GravityStrength * b.mass / gravityMassScale
			b.Vel = b.Vel.Add(toCenter.Mul(force / dist))
		}

		// 2. Semi-implicit Euler: velocity is already updated, move by it.
		b.Pos = b.Pos.Add(b.Vel)

		// 3. Drag.
		b.Vel = b.Vel.Mul(t.Damping)

		// 4. Walls.
		clampToWalls(b, t)
	})
}

// clampToWalls keeps the body inside the field, reflecting the perpendicular
// velocity with an energy-losing bounce.
func clampToWalls(b *Body, t Tuning) {
	r := b.radius
	if b.Pos[0]-r < 0 {
		b.Pos[0] = r
		b.Vel[0] *= t.WallBounce
	}
	if b.Pos[0]+r > t.Width {
		b.Pos[0] = t.Width - r
		b.Vel[0] *= t.WallBounce
	}
	if b.Pos[1]-r < 0 {
		b.Pos[1] = r
		b.Vel[1] *= t.WallBounce
	}
	if b.Pos[1]+r > t.Height {
		b.Pos[1] = t.Height - r
		b.Vel[1] *= t.WallBounce
	}
}
