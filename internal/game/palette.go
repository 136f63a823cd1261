package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Sputnik/internal/sim"
)

// PlanetStyle selects the surface decoration drawn over a tier's base disc.
type PlanetStyle int

const (
	StyleSolid PlanetStyle = iota
	StyleStriped
	StyleRinged
	StyleSpotted
	StyleSun
)

func (s PlanetStyle) String() string {
	switch s {
	case StyleSolid:
		return "solid"
	case StyleStriped:
		return "striped"
	case StyleRinged:
		return "ringed"
	case StyleSpotted:
		return "spotted"
	case StyleSun:
		return "sun"
	default:
		return "unknown"
	}
}

// planetLook is the visual identity of one tier.
type planetLook struct {
	Name  string
	Color color.RGBA
	Style PlanetStyle
}

var planetLooks = [sim.TierCount]planetLook{
	{"grape", mustHex("#9b59b6"), StyleSpotted},
	{"blue", mustHex("#3498db"), StyleSolid},
	{"red", mustHex("#e74c3c"), StyleStriped},
	{"yellow", mustHex("#f1c40f"), StyleSpotted},
	{"green", mustHex("#2ecc71"), StyleStriped},
	{"cyan ring", mustHex("#1abc9c"), StyleRinged},
	{"orange", mustHex("#d35400"), StyleStriped},
	{"dark ring", mustHex("#34495e"), StyleRinged},
	{"small sun", mustHex("#e67e22"), StyleSun},
	{"large sun", mustHex("#f39c12"), StyleSun},
}

// lookFor returns the look of tier, clamping out-of-range tiers like the
// tier table does.
func lookFor(tier int) planetLook {
	if tier < 0 {
		tier = 0
	}
	if tier >= len(planetLooks) {
		tier = len(planetLooks) - 1
	}
	return planetLooks[tier]
}

// parseHex parses "#rrggbb" into an opaque colour.
func parseHex(s string) (color.RGBA, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func mustHex(s string) color.RGBA {
	c, err := parseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// withAlpha returns c scaled to alpha a, premultiplied as color.RGBA expects.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
}
