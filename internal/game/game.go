package game

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Sputnik/internal/audio"
	"github.com/Garsondee/Sputnik/internal/leaderboard"
	"github.com/Garsondee/Sputnik/internal/logx"
	"github.com/Garsondee/Sputnik/internal/sim"
)

const (
	reportTicks   = 600 // log window copied with C
	statusFrames  = 120 // how long a status line stays up
	boardDeadline = 5 * time.Second
)

// Options wires the game to its collaborators. Only Sched is required.
type Options struct {
	Sched *sim.Scheduler
	Board *leaderboard.Board
	Audio *audio.Player
	Log   *logx.Logger
}

// Game is the desktop front-end. It steps the scheduler once per Update, so
// the simulation runs at ebiten's tick rate, and draws the latest snapshot.
type Game struct {
	sched *sim.Scheduler
	board *leaderboard.Board
	audio *audio.Player
	log   *logx.Logger

	face *text.GoXFace
	feed *MergeFeed
	drag dragInput
	flow restartFlow

	fieldW int
	fieldH int
	width  int // field plus side panel
	height int

	restartBtn rect
	submitBtn  rect
	skipBtn    rect

	frame       int
	status      string
	statusUntil int
}

func New(opts Options) *Game {
	snap := opts.Sched.Snapshot()
	fw, fh := int(snap.Width), int(snap.Height)
	g := &Game{
		sched:  opts.Sched,
		board:  opts.Board,
		audio:  opts.Audio,
		log:    opts.Log,
		face:   text.NewGoXFace(basicfont.Face7x13),
		feed:   NewMergeFeed(),
		fieldW: fw,
		fieldH: fh,
		width:  fw + panelWidth,
		height: fh,

		restartBtn: rect{x: float64(fw) - 96, y: 10, w: 86, h: 24},
		submitBtn:  rect{x: float64(fw)/2 - 95, y: float64(fh)/2 + 40, w: 90, h: 26},
		skipBtn:    rect{x: float64(fw)/2 + 5, y: float64(fh)/2 + 40, w: 90, h: 26},
	}
	if g.log == nil {
		g.log = logx.Discard()
	}

	g.sched.OnMerge = func(ev sim.MergeEvent) {
		g.feed.Add(g.sched.Snapshot().Tick, ev)
		if g.audio != nil {
			g.audio.Merge(ev.Tier)
		}
	}
	g.sched.OnLaunch = func(*sim.Body) {
		if g.audio != nil {
			g.audio.Launch()
		}
	}
	g.refreshBoard()
	return g
}

func (g *Game) Update() error {
	g.frame++
	g.handleInput()
	g.sched.Step()
	return nil
}

// handleInput turns this frame's keys and pointer into scheduler intents.
func (g *Game) handleInput() {
	snap := g.sched.Snapshot()

	if inpututil.IsKeyJustPressed(ebiten.KeyC) && g.flow.mode == modePlaying {
		g.copyReport()
	}

	mx, my := ebiten.CursorPosition()
	p := pointer{
		X:            float64(mx),
		Y:            float64(my),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}

	if g.flow.mode == modeSubmit {
		g.handlePrompt(p)
		return
	}

	restart := inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		(p.JustPressed && g.restartBtn.contains(p.X, p.Y))
	if restart {
		if g.drag.active {
			g.drag.cancel()
			g.submit(sim.GestureCancel{})
		}
		g.submit(g.flow.Restart(snap)...)
		return
	}

	field := rect{w: float64(g.fieldW), h: float64(g.fieldH)}
	g.submit(g.drag.update(p, field, !snap.Terminal)...)
}

// handlePrompt edits the nickname and closes the prompt on Enter, Escape or
// a button click.
func (g *Game) handlePrompt(p pointer) {
	g.flow.Type(ebiten.AppendInputChars(nil)...)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.flow.Backspace()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || (p.JustPressed && g.submitBtn.contains(p.X, p.Y)):
		entry, send, intents := g.flow.Submit()
		if send {
			g.submitScore(entry)
		}
		g.submit(intents...)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape) || (p.JustPressed && g.skipBtn.contains(p.X, p.Y)):
		g.submit(g.flow.Skip()...)
	}
}

func (g *Game) submit(intents ...any) {
	for _, in := range intents {
		if !g.sched.Submit(in) {
			g.log.Warnf("input queue full, dropped %T", in)
		}
	}
	for _, in := range intents {
		if _, ok := in.(sim.ResetIntent); ok {
			g.feed.Clear()
		}
	}
}

// refreshBoard reloads the leaderboard in the background.
func (g *Game) refreshBoard() {
	if g.board == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), boardDeadline)
		defer cancel()
		if err := g.board.Refresh(ctx); err != nil {
			g.log.Warnf("leaderboard unreachable: %v", err)
		}
	}()
}

// submitScore posts entry in the background and reloads the board.
func (g *Game) submitScore(entry leaderboard.Entry) {
	if g.board == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), boardDeadline)
		defer cancel()
		if err := g.board.SubmitAndRefresh(ctx, entry); err != nil {
			g.log.Warnf("submit score: %v", err)
			return
		}
		g.log.Infof("submitted %d for %s", entry.Score, leaderboard.NormalizeNickname(entry.Nickname))
	}()
}

// copyReport puts a plain-text run report on the clipboard.
func (g *Game) copyReport() {
	if err := clipboard.WriteAll(g.sched.Report(reportTicks)); err != nil {
		g.log.Warnf("copy report: %v", err)
		g.setStatus("clipboard unavailable")
		return
	}
	g.setStatus("report copied")
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusUntil = g.frame + statusFrames
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 5, G: 5, B: 12, A: 255})
	snap := g.sched.Snapshot()
	spin := float64(g.frame) / 60

	drawGravityWell(screen, float32(snap.Width/2), float32(snap.Height/2))
	for _, b := range snap.Bodies {
		drawPlanet(screen, float32(b.Pos[0]), float32(b.Pos[1]), float32(b.Radius), b.Tier, 1, spin)
	}
	if snap.Aim != nil && !snap.Terminal {
		drawAim(screen, *snap.Aim, snap.NextTier, spin)
	}

	g.drawHUD(screen, snap, spin)
	if snap.Terminal {
		g.drawGameOver(screen)
	}
	if g.flow.showBoard && g.board != nil {
		g.drawLeaderboard(screen)
	}
	if g.flow.mode == modeSubmit {
		g.drawPrompt(screen)
	}

	g.feed.Draw(screen, g.face, g.fieldW, g.height)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tps %.0f  bodies %d  t=%d", ebiten.ActualTPS(), len(snap.Bodies), snap.Tick),
		g.fieldW+8, g.height-18)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Size returns the logical screen size.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}
