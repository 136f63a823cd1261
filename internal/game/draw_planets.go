package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Sputnik/internal/sim"
)

var (
	highlightCol = color.RGBA{R: 51, G: 51, B: 51, A: 51}    // white @ 0.2
	spotCol      = color.RGBA{R: 77, G: 77, B: 77, A: 77}    // white @ 0.3
	stripeCol    = color.RGBA{A: 51}                         // black @ 0.2
	ringCol      = color.RGBA{R: 153, G: 153, B: 153, A: 153} // white @ 0.6
	flareCol     = mustHex("#e74c3c")
)

// drawPlanet draws one body of the given tier centred on (cx, cy). alpha
// fades the whole planet (1 = opaque); spin drives the sun flares.
func drawPlanet(dst *ebiten.Image, cx, cy, r float32, tier int, alpha float32, spin float64) {
	look := lookFor(tier)
	fade := func(c color.RGBA) color.RGBA {
		if alpha >= 1 {
			return c
		}
		return withAlpha(c, uint8(float32(c.A)*alpha))
	}

	if look.Style == StyleSun {
		// Glow: fading halo rings outside the disc.
		for i := 1; i <= 5; i++ {
			a := uint8(60 - i*10)
			vector.StrokeCircle(dst, cx, cy, r+float32(i)*3, 3, fade(withAlpha(look.Color, a)), true)
		}
	}

	vector.FillCircle(dst, cx, cy, r, fade(look.Color), true)

	switch look.Style {
	case StyleRinged:
		strokeEllipse(dst, cx, cy, r*1.6, r*0.4, -0.2, 3, fade(ringCol))
	case StyleStriped:
		fillDiscBand(dst, cx, cy, r, -r/2, -r/2+r/3, fade(stripeCol))
		fillDiscBand(dst, cx, cy, r, r/4, r/4+r/4, fade(stripeCol))
	case StyleSpotted:
		vector.FillCircle(dst, cx-r/3, cy-r/3, r/5, fade(spotCol), true)
		vector.FillCircle(dst, cx+r/4, cy+r/2, r/6, fade(spotCol), true)
	case StyleSun:
		for i := 0; i < 8; i++ {
			a := spin + float64(i)*math.Pi/4
			cos, sin := float32(math.Cos(a)), float32(math.Sin(a))
			vector.StrokeLine(dst, cx+cos*r, cy+sin*r, cx+cos*(r+5), cy+sin*(r+5), 2, fade(flareCol), true)
		}
	}

	// Shine.
	vector.FillCircle(dst, cx-r*0.4, cy-r*0.4, r*0.2, fade(highlightCol), true)
}

// fillDiscBand fills the horizontal band y0..y1 (relative to the centre)
// clipped to the disc of radius r, one scanline at a time.
func fillDiscBand(dst *ebiten.Image, cx, cy, r, y0, y1 float32, clr color.Color) {
	for y := y0; y < y1; y++ {
		mid := y + 0.5
		if mid <= -r || mid >= r {
			continue
		}
		half := float32(math.Sqrt(float64(r*r - mid*mid)))
		vector.FillRect(dst, cx-half, cy+y, 2*half, 1, clr, false)
	}
}

// strokeEllipse approximates a rotated ellipse outline with line segments.
func strokeEllipse(dst *ebiten.Image, cx, cy, rx, ry float32, rot float64, width float32, clr color.Color) {
	const segments = 48
	cosR, sinR := math.Cos(rot), math.Sin(rot)
	point := func(i int) (float32, float32) {
		t := float64(i) * 2 * math.Pi / segments
		x, y := float64(rx)*math.Cos(t), float64(ry)*math.Sin(t)
		return cx + float32(x*cosR-y*sinR), cy + float32(x*sinR+y*cosR)
	}
	px, py := point(0)
	for i := 1; i <= segments; i++ {
		x, y := point(i)
		vector.StrokeLine(dst, px, py, x, y, width, clr, true)
		px, py = x, y
	}
}

// drawAim draws the ghost of the next planet at the anchor, a dashed line to
// the preview target and a cursor dot there.
func drawAim(dst *ebiten.Image, aim sim.Aim, nextTier int, spin float64) {
	ax, ay := float32(aim.Anchor[0]), float32(aim.Anchor[1])
	tx, ty := float32(aim.Target[0]), float32(aim.Target[1])

	drawPlanet(dst, ax, ay, float32(sim.TierAt(nextTier).Radius), nextTier, 0.6, spin)
	dashedLine(dst, ax, ay, tx, ty, 5, 5, 2, color.RGBA{R: 128, G: 128, B: 128, A: 128})
	vector.FillCircle(dst, tx, ty, 5, color.White, true)
}

func dashedLine(dst *ebiten.Image, x0, y0, x1, y1, on, off, width float32, clr color.Color) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	for d := float32(0); d < length; d += on + off {
		end := d + on
		if end > length {
			end = length
		}
		vector.StrokeLine(dst, x0+ux*d, y0+uy*d, x0+ux*end, y0+uy*end, width, clr, true)
	}
}

// drawGravityWell shades the pull zone around the centre, transparent at
// half the radius and reddening outwards.
func drawGravityWell(dst *ebiten.Image, cx, cy float32) {
	const steps = 14
	inner := float32(sim.GravityRadius * 0.5)
	outer := float32(sim.GravityRadius * 1.2)
	step := (outer - inner) / steps
	for i := 0; i < steps; i++ {
		r := inner + step*(float32(i)+0.5)
		a := uint8(38 * (i + 1) / steps) // up to ~0.15
		vector.StrokeCircle(dst, cx, cy, r, step+0.5, withAlpha(color.RGBA{R: 180, G: 50, B: 50, A: 255}, a), true)
	}
}
