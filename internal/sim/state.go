package sim

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// State is the whole mutable simulation of one running game. Every pipeline
// stage takes it by reference; nothing else holds bodies between steps.
type State struct {
	Tuning   Tuning
	Registry *Registry
	Score    *ScoreTracker
	Launcher *Launcher
	NextTier int
	Terminal bool
	Tick     int
	SimLog   *SimLog

	picker *TierPicker
}

// NewState creates a fresh, non-terminal game. src drives next-tier draws and
// store supplies the persisted best score (either may be nil for tests; a nil
// src is seeded with 1).
func NewState(t Tuning, src rand.Source, store BestScoreStore, log *SimLog) *State {
	if src == nil {
		src = rand.NewSource(1) // #nosec G404 -- deterministic default
	}
	if log == nil {
		log = NewSimLog(false)
	}
	s := &State{
		Tuning:   t,
		Registry: NewRegistry(),
		Score:    NewScoreTracker(store),
		Launcher: NewLauncher(t.PullMultiplier),
		SimLog:   log,
		picker:   NewTierPicker(src),
	}
	s.NextTier = s.picker.Next()
	return s
}

// Step runs one physics step: integrate, then resolve collisions and credit
// merges. It does nothing in the terminal state.
func (s *State) Step() []MergeEvent {
	if s.Terminal {
		return nil
	}
	s.Tick++

	// 1. GRAVITY + INTEGRATE.
	Integrate(s.Registry, s.Tuning)

	// 2. COLLIDE + MERGE.
	events := Resolve(s.Registry, s.Tuning)
	for _, ev := range events {
		s.Score.Credit(ev.Points)
		s.SimLog.Add(s.Tick, bodyLabel(ev.Child), "merge", "tier_up",
			fmt.Sprintf("#%d+#%d -> t%d @(%.1f,%.1f)", ev.Parents[0], ev.Parents[1], ev.Tier, ev.Pos[0], ev.Pos[1]),
			float64(ev.Points))
	}

	if s.SimLog.Verbose() {
		s.Registry.ForEach(func(b *Body) {
			s.SimLog.AddVerbose(s.Tick, bodyLabel(b.ID), "body", "position",
				fmt.Sprintf("(%.1f,%.1f)", b.Pos[0], b.Pos[1]), b.Vel.Len())
		})
	}
	return events
}

// BeginAim starts a slingshot drag at p. Refused in the terminal state.
func (s *State) BeginAim(p mgl64.Vec2) bool {
	if s.Terminal {
		return false
	}
	return s.Launcher.Begin(p)
}

// MoveAim updates the live aim point.
func (s *State) MoveAim(p mgl64.Vec2) {
	s.Launcher.Move(p)
}

// ReleaseAim finishes the drag at p and launches the next body.
func (s *State) ReleaseAim(p mgl64.Vec2) (*Body, bool) {
	req, ok := s.Launcher.Release(p)
	if !ok {
		return nil, false
	}
	return s.Launch(req)
}

// CancelAim abandons the drag without launching.
func (s *State) CancelAim() {
	s.Launcher.Cancel()
}

// Launch spawns the current next tier as requested and draws a new next tier.
// This is the only way a player body enters the registry.
func (s *State) Launch(req LaunchRequest) (*Body, bool) {
	if s.Terminal {
		return nil, false
	}
	b := s.Registry.Spawn(req.Pos, req.Vel, s.NextTier)
	s.SimLog.Add(s.Tick, bodyLabel(b.ID), "launch", "spawn",
		fmt.Sprintf("t%d @(%.1f,%.1f) v=(%.2f,%.2f)", b.Tier, b.Pos[0], b.Pos[1], b.Vel[0], b.Vel[1]),
		b.Vel.Len())
	s.NextTier = s.picker.Next()
	return b, true
}

// EndGame enters the terminal state and folds the score into the best score.
// Persisting a new best may fail; the game still ends.
func (s *State) EndGame() error {
	if s.Terminal {
		return nil
	}
	s.Terminal = true
	s.Launcher.Cancel()
	s.SimLog.Add(s.Tick, "--", "game", "over", fmt.Sprintf("score=%d", s.Score.Current()), float64(s.Score.Current()))
	return s.recordBest()
}

// Reset starts a new game from any state: bodies cleared, score zeroed, next
// tier redrawn and the terminal flag cleared. A score not yet folded into the
// best score is folded first.
func (s *State) Reset() error {
	var err error
	if !s.Terminal {
		err = s.recordBest()
	}
	s.Registry.Clear()
	s.Score.ResetCurrent()
	s.Launcher.Cancel()
	s.Terminal = false
	s.NextTier = s.picker.Next()
	s.SimLog.Add(s.Tick, "--", "game", "reset", fmt.Sprintf("next=t%d", s.NextTier), 0)
	return err
}

func (s *State) recordBest() error {
	newBest, err := s.Score.EndGame()
	if newBest {
		s.SimLog.Add(s.Tick, "--", "score", "best", fmt.Sprintf("best=%d", s.Score.Best()), float64(s.Score.Best()))
	}
	return err
}
