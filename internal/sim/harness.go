package sim

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// TestSim is a headless game used by tests and the headless report. It drives
// the same Scheduler as the desktop game, with deterministic seeding and
// structured logging.
type TestSim struct {
	Tuning Tuning
	State  *State
	Sched  *Scheduler
	SimLog *SimLog
	Merges []MergeEvent

	seed  int64
	store BestScoreStore
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // tuning, seed, store, verbose, applied first
	simOptBody                       // pre-placed bodies, applied after the state exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithTuning replaces the physics constants.
func WithTuning(t Tuning) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Tuning = t
	}}
}

// WithFieldSize sets the playfield dimensions.
func WithFieldSize(w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Tuning.Width = w
		ts.Tuning.Height = h
	}}
}

// WithSeed sets the RNG seed for next-tier draws.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithStore sets the best-score store.
func WithStore(store BestScoreStore) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.store = store
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithBody places a body of the given tier at (x,y) moving with (vx,vy).
func WithBody(x, y, vx, vy float64, tier int) SimOption {
	return SimOption{simOptBody, func(ts *TestSim) {
		ts.State.Registry.Spawn(mgl64.Vec2{x, y}, mgl64.Vec2{vx, vy}, tier)
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered passes:
//  1. Infrastructure (tuning, seed, store, verbose)
//  2. Bodies
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Tuning: DefaultTuning(),
		SimLog: NewSimLog(false),
		seed:   1,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.State = NewState(ts.Tuning, rand.NewSource(ts.seed), ts.store, ts.SimLog) // #nosec G404 -- test harness
	for _, o := range opts {
		if o.kind == simOptBody {
			o.fn(ts)
		}
	}
	ts.Sched = NewScheduler(ts.State)
	ts.Sched.OnMerge = func(ev MergeEvent) {
		ts.Merges = append(ts.Merges, ev)
	}
	return ts
}

// RunTicks advances the simulation by n scheduler ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Sched.Step()
	}
}

// Drag queues a full slingshot gesture from anchor to release. It takes
// effect on the next tick.
func (ts *TestSim) Drag(anchor, release mgl64.Vec2) {
	ts.Sched.Submit(GestureStart{P: anchor})
	ts.Sched.Submit(GestureMove{P: release})
	ts.Sched.Submit(GestureEnd{P: release})
}

// Snapshot returns the last published render state.
func (ts *TestSim) Snapshot() Snapshot {
	return ts.Sched.Snapshot()
}
