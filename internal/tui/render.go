// Package tui is a terminal front-end: it renders snapshots into a tcell
// screen and turns mouse drags into slingshot launches.
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Sputnik/internal/sim"
)

var tierColors = [sim.TierCount]tcell.Color{
	tcell.NewHexColor(0x9b59b6),
	tcell.NewHexColor(0x3498db),
	tcell.NewHexColor(0xe74c3c),
	tcell.NewHexColor(0xf1c40f),
	tcell.NewHexColor(0x2ecc71),
	tcell.NewHexColor(0x1abc9c),
	tcell.NewHexColor(0xd35400),
	tcell.NewHexColor(0x34495e),
	tcell.NewHexColor(0xe67e22),
	tcell.NewHexColor(0xf39c12),
}

const (
	bodyFill  = '█'
	aimDot    = '·'
	aimCursor = 'o'
)

// tierGlyph is the rune printed at a body's centre cell.
func tierGlyph(tier int) rune {
	if tier < 0 || tier > 9 {
		return '?'
	}
	return rune('0' + tier)
}

// viewport maps field coordinates onto the cell grid above the status row.
type viewport struct {
	cols, rows int
	sx, sy     float64 // field units per cell
}

func newViewport(screenW, screenH int, fieldW, fieldH float64) viewport {
	rows := screenH - 1
	if rows < 1 {
		rows = 1
	}
	cols := screenW
	if cols < 1 {
		cols = 1
	}
	return viewport{cols: cols, rows: rows, sx: fieldW / float64(cols), sy: fieldH / float64(rows)}
}

// cellCentre returns the field point at the centre of cell (x, y).
func (v viewport) cellCentre(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * v.sx, (float64(y) + 0.5) * v.sy
}

// cellOf returns the cell containing field point (fx, fy).
func (v viewport) cellOf(fx, fy float64) (int, int) {
	return int(math.Floor(fx / v.sx)), int(math.Floor(fy / v.sy))
}

func (v viewport) inField(x, y int) bool {
	return x >= 0 && x < v.cols && y >= 0 && y < v.rows
}

// Render draws snap onto screen and shows it.
func Render(screen tcell.Screen, snap sim.Snapshot) {
	screen.Clear()
	w, h := screen.Size()
	vp := newViewport(w, h, snap.Width, snap.Height)

	for _, b := range snap.Bodies {
		drawBody(screen, vp, b)
	}
	if snap.Aim != nil && !snap.Terminal {
		drawAim(screen, vp, *snap.Aim, snap.NextTier)
	}
	if snap.Terminal {
		msg := " GAME OVER  r: restart "
		putString(screen, (w-len(msg))/2, vp.rows/2, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed))
	}
	drawStatus(screen, w, h-1, snap)
	screen.Show()
}

func drawBody(screen tcell.Screen, vp viewport, b sim.BodyView) {
	style := tcell.StyleDefault.Foreground(tierColors[clampIndex(b.Tier)])
	x0, y0 := vp.cellOf(b.Pos[0]-b.Radius, b.Pos[1]-b.Radius)
	x1, y1 := vp.cellOf(b.Pos[0]+b.Radius, b.Pos[1]+b.Radius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !vp.inField(x, y) {
				continue
			}
			fx, fy := vp.cellCentre(x, y)
			if math.Hypot(fx-b.Pos[0], fy-b.Pos[1]) < b.Radius {
				screen.SetContent(x, y, bodyFill, nil, style)
			}
		}
	}
	cx, cy := vp.cellOf(b.Pos[0], b.Pos[1])
	if vp.inField(cx, cy) {
		screen.SetContent(cx, cy, tierGlyph(b.Tier), nil, style.Reverse(true))
	}
}

func drawAim(screen tcell.Screen, vp viewport, aim sim.Aim, nextTier int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	x0, y0 := vp.cellOf(aim.Anchor[0], aim.Anchor[1])
	x1, y1 := vp.cellOf(aim.Target[0], aim.Target[1])
	steps := max(abs(x1-x0), abs(y1-y0))
	for i := 1; i < steps; i++ {
		x := x0 + (x1-x0)*i/steps
		y := y0 + (y1-y0)*i/steps
		if vp.inField(x, y) && i%2 == 0 {
			screen.SetContent(x, y, aimDot, nil, style)
		}
	}
	if vp.inField(x1, y1) {
		screen.SetContent(x1, y1, aimCursor, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	if vp.inField(x0, y0) {
		screen.SetContent(x0, y0, tierGlyph(nextTier), nil,
			tcell.StyleDefault.Foreground(tierColors[clampIndex(nextTier)]).Dim(true))
	}
}

func drawStatus(screen tcell.Screen, w, row int, snap sim.Snapshot) {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	for x := 0; x < w; x++ {
		screen.SetContent(x, row, ' ', nil, style)
	}
	line := fmt.Sprintf(" SCORE %d  BEST %d  NEXT %c  | drag: launch  r: restart  e: end  q: quit",
		snap.Score, snap.Best, tierGlyph(snap.NextTier))
	putString(screen, 0, row, line, style)
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func clampIndex(tier int) int {
	if tier < 0 {
		return 0
	}
	if tier >= sim.TierCount {
		return sim.TierCount - 1
	}
	return tier
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
