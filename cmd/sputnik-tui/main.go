// Command sputnik-tui plays Sputnik in a terminal with mouse support.
package main

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Sputnik/internal/config"
	"github.com/Garsondee/Sputnik/internal/logx"
	"github.com/Garsondee/Sputnik/internal/sim"
	"github.com/Garsondee/Sputnik/internal/store"
	"github.com/Garsondee/Sputnik/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("sputnik-tui", os.Args[1:])
	if err != nil {
		return err
	}

	// The terminal belongs to tcell until Fini; log lines are held until then.
	var logs bytes.Buffer
	logger := logx.New(&logs, logx.LevelFromString(cfg.LogLevel))
	defer func() { _, _ = os.Stderr.Write(logs.Bytes()) }()

	best, err := store.OpenFile(cfg.StorePath)
	if err != nil {
		logger.Warnf("best score store: %v (starting from zero)", err)
	}

	seed := cfg.EffectiveSeed()
	logger.Infof("seed=%d store=%s", seed, best.Path())
	state := sim.NewState(sim.DefaultTuning(), rand.NewSource(seed), best, sim.NewSimLog(false)) // #nosec G404 -- gameplay RNG
	sched := sim.NewScheduler(state)
	sched.Logger = logger

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui.NewApp(screen, sched).Run(ctx, cfg.TickInterval())
	return nil
}
