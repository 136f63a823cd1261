package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Garsondee/Sputnik/internal/sim"
)

const frameInterval = 33 * time.Millisecond

// App runs a scheduler in the background and drives it from terminal input.
type App struct {
	screen tcell.Screen
	sched  *sim.Scheduler

	dragging bool
	last     mgl64.Vec2
}

func NewApp(screen tcell.Screen, sched *sim.Scheduler) *App {
	return &App{screen: screen, sched: sched}
}

// Run steps the simulation every tick and redraws at ~30 fps until ctx is
// cancelled or the user quits. The scheduler is stopped before Run returns.
func (a *App) Run(ctx context.Context, tick time.Duration) {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	go a.sched.Run(ctx, tick)
	defer a.sched.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	frame := time.NewTicker(frameInterval)
	defer frame.Stop()

	Render(a.screen, a.sched.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return
			}
		case <-frame.C:
			Render(a.screen, a.sched.Snapshot())
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'r':
			a.cancelDrag()
			a.sched.Submit(sim.ResetIntent{})
		case 'e':
			a.cancelDrag()
			a.sched.Submit(sim.EndGameIntent{})
		}
	}
	return true
}

// handleMouse tracks the primary button: press starts a drag, motion moves
// the aim, release launches. Releasing over the status row cancels.
func (a *App) handleMouse(x, y int, buttons tcell.ButtonMask) {
	w, h := a.screen.Size()
	snap := a.sched.Snapshot()
	vp := newViewport(w, h, snap.Width, snap.Height)
	fx, fy := vp.cellCentre(x, y)
	pos := mgl64.Vec2{fx, fy}
	down := buttons&tcell.Button1 != 0

	switch {
	case down && !a.dragging:
		if !vp.inField(x, y) {
			return
		}
		a.dragging = true
		a.last = pos
		a.sched.Submit(sim.GestureStart{P: pos})
	case down && a.dragging:
		if pos != a.last {
			a.last = pos
			a.sched.Submit(sim.GestureMove{P: pos})
		}
	case !down && a.dragging:
		a.dragging = false
		if !vp.inField(x, y) {
			a.sched.Submit(sim.GestureCancel{})
			return
		}
		a.sched.Submit(sim.GestureEnd{P: pos})
	}
}

func (a *App) cancelDrag() {
	if a.dragging {
		a.dragging = false
		a.sched.Submit(sim.GestureCancel{})
	}
}
