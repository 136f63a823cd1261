package main

import (
	"log"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Sputnik/internal/audio"
	"github.com/Garsondee/Sputnik/internal/config"
	"github.com/Garsondee/Sputnik/internal/game"
	"github.com/Garsondee/Sputnik/internal/leaderboard"
	"github.com/Garsondee/Sputnik/internal/logx"
	"github.com/Garsondee/Sputnik/internal/sim"
	"github.com/Garsondee/Sputnik/internal/store"
)

func main() {
	cfg, err := config.Load("sputnik", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	logger := logx.New(os.Stderr, logx.LevelFromString(cfg.LogLevel))

	best, err := store.OpenFile(cfg.StorePath)
	if err != nil {
		logger.Warnf("best score store: %v (starting from zero)", err)
	}

	seed := cfg.EffectiveSeed()
	logger.Infof("seed=%d store=%s leaderboard=%s", seed, best.Path(), cfg.LeaderboardURL)
	state := sim.NewState(sim.DefaultTuning(), rand.NewSource(seed), best, sim.NewSimLog(false)) // #nosec G404 -- gameplay RNG
	sched := sim.NewScheduler(state)
	sched.Logger = logger

	player := audio.NewPlayer(cfg.Audio)
	if err := player.Initialize(); err != nil {
		logger.Warnf("audio disabled: %v", err)
	}
	defer player.Close()

	g := game.New(game.Options{
		Sched: sched,
		Board: leaderboard.NewBoard(leaderboard.NewClient(cfg.LeaderboardURL, nil)),
		Audio: player,
		Log:   logger,
	})

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowTitle("Sputnik")
	ebiten.SetWindowSize(g.Size())
	if err := ebiten.RunGame(g); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
