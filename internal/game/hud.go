package game

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Sputnik/internal/leaderboard"
	"github.com/Garsondee/Sputnik/internal/sim"
)

var (
	hudText    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hudDim     = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	panelBG    = color.RGBA{R: 12, G: 12, B: 28, A: 235}
	panelEdge  = color.RGBA{R: 90, G: 90, B: 140, A: 255}
	buttonFill = color.RGBA{R: 40, G: 40, B: 70, A: 255}
	gameOverBG = color.RGBA{A: 178} // black @ 0.7
	gameOverFG = color.RGBA{R: 255, A: 255}
	rankColors = [3]color.RGBA{
		{R: 255, G: 215, B: 0, A: 255},
		{R: 192, G: 192, B: 192, A: 255},
		{R: 205, G: 127, B: 50, A: 255},
	}
)

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, face text.Face, s string, x, y float64, clr color.Color) {
	drawTextScaled(dst, face, s, x, y, 1, clr)
}

func drawTextScaled(dst *ebiten.Image, face text.Face, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawTextCentered centres s horizontally on cx.
func drawTextCentered(dst *ebiten.Image, face text.Face, s string, cx, y, scale float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	drawTextScaled(dst, face, s, cx-w*scale/2, y, scale, clr)
}

func (g *Game) drawButton(dst *ebiten.Image, r rect, label string) {
	vector.FillRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), buttonFill, false)
	vector.StrokeRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, panelEdge, false)
	drawTextCentered(dst, g.face, label, r.x+r.w/2, r.y+(r.h-13)/2, 1, hudText)
}

// drawHUD draws the next-planet preview, score, best score, restart button
// and any transient status line.
func (g *Game) drawHUD(dst *ebiten.Image, snap sim.Snapshot, spin float64) {
	drawText(dst, g.face, "NEXT", 20, 14, hudText)
	next := sim.TierAt(snap.NextTier)
	drawPlanet(dst, 40, 60, float32(next.Radius), snap.NextTier, 1, spin)

	h := float64(g.fieldH)
	drawText(dst, g.face, "SCORE", 20, h-72, hudText)
	drawTextScaled(dst, g.face, strconv.Itoa(snap.Score), 20, h-54, 2, hudText)
	drawText(dst, g.face, fmt.Sprintf("BEST %d", snap.Best), 20, h-22, hudDim)

	g.drawButton(dst, g.restartBtn, "RESTART")
	drawText(dst, g.face, "C: copy report", float64(g.fieldW)-110, h-22, hudDim)

	if g.status != "" && g.frame < g.statusUntil {
		drawTextCentered(dst, g.face, g.status, float64(g.fieldW)/2, 14, 1, hudDim)
	}
}

func (g *Game) drawGameOver(dst *ebiten.Image) {
	w, h := float64(g.fieldW), float64(g.fieldH)
	vector.FillRect(dst, 0, 0, float32(w), float32(h), gameOverBG, false)
	drawTextCentered(dst, g.face, "GAME OVER", w/2, h/2-40, 3, gameOverFG)
	if g.flow.mode == modePlaying {
		drawTextCentered(dst, g.face, "Click Restart", w/2, h/2+10, 1, hudText)
	}
}

// drawPrompt draws the nickname panel with its final score and buttons.
func (g *Game) drawPrompt(dst *ebiten.Image) {
	cx := float64(g.fieldW) / 2
	top := float64(g.fieldH)/2 - 20
	vector.FillRect(dst, float32(cx-120), float32(top-30), 240, 130, panelBG, false)
	vector.StrokeRect(dst, float32(cx-120), float32(top-30), 240, 130, 1, panelEdge, false)

	drawTextCentered(dst, g.face, "Game Restarted", cx, top-22, 1, hudText)
	drawTextCentered(dst, g.face, fmt.Sprintf("%d POINTS", g.flow.finalScore), cx, top-6, 1, rankColors[0])

	name := g.flow.Nickname()
	if name == "" {
		name = "Pilot Callsign (optional)"
	} else if (g.frame/30)%2 == 0 {
		name += "_"
	}
	vector.FillRect(dst, float32(cx-100), float32(top+12), 200, 20, color.RGBA{R: 0, G: 0, B: 0, A: 255}, false)
	drawTextCentered(dst, g.face, name, cx, top+15, 1, hudDim)

	g.drawButton(dst, g.submitBtn, "SUBMIT")
	g.drawButton(dst, g.skipBtn, "SKIP")
}

// drawLeaderboard draws the cached top list in the top-right of the field.
func (g *Game) drawLeaderboard(dst *ebiten.Image) {
	entries := g.board.Entries()
	x := float64(g.fieldW) - 200
	y := 44.0
	rows := len(entries)
	if rows == 0 {
		rows = 1
	}
	vector.FillRect(dst, float32(x), float32(y), 190, float32(40+rows*15), panelBG, false)
	vector.StrokeRect(dst, float32(x), float32(y), 190, float32(40+rows*15), 1, panelEdge, false)
	drawText(dst, g.face, "TOP PILOTS", x+8, y+5, rankColors[0])
	drawText(dst, g.face, "GALACTIC RANKINGS", x+8, y+19, hudDim)

	if len(entries) == 0 {
		msg := "no scores yet"
		if _, err := g.board.Status(); err != nil {
			msg = "leaderboard offline"
		}
		drawText(dst, g.face, msg, x+8, y+36, hudDim)
		return
	}
	for i, e := range entries {
		clr := hudText
		if i < len(rankColors) {
			clr = rankColors[i]
		}
		row := y + 36 + float64(i)*15
		drawText(dst, g.face, leaderboard.RankLabel(i), x+8, row, clr)
		drawText(dst, g.face, e.Nickname, x+44, row, hudText)
		drawText(dst, g.face, strconv.Itoa(e.Score), x+140, row, clr)
	}
}
