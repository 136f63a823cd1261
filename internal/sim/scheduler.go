package sim

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// inboxSize bounds queued intents between two ticks.
const inboxSize = 256

// Intents are queued with Submit and applied at the start of the next tick, so
// the physics never sees a half-applied input.
type (
	// GestureStart begins a slingshot drag.
	GestureStart struct{ P mgl64.Vec2 }
	// GestureMove moves the live aim point.
	GestureMove struct{ P mgl64.Vec2 }
	// GestureEnd releases the drag and launches.
	GestureEnd struct{ P mgl64.Vec2 }
	// GestureCancel abandons the drag.
	GestureCancel struct{}
	// LaunchIntent launches directly, bypassing the drag controller.
	LaunchIntent struct{ Request LaunchRequest }
	// EndGameIntent enters the terminal state.
	EndGameIntent struct{}
	// ResetIntent starts a new game.
	ResetIntent struct{}
)

// Logger is the subset of a leveled logger the scheduler reports to.
type Logger interface {
	Warnf(format string, v ...interface{})
}

// Scheduler drives one simulation step per tick in a fixed order and is the
// only writer of its State. Its loop is created once and reads the state by
// reference every tick.
type Scheduler struct {
	state *State
	inbox chan any

	mu   sync.RWMutex
	snap Snapshot

	// Hooks, called on the stepping goroutine after the step completes.
	OnMerge  func(MergeEvent)
	OnLaunch func(*Body)
	Logger   Logger

	quit     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	started  atomic.Bool
}

// NewScheduler wraps state. The initial snapshot is published immediately.
func NewScheduler(state *State) *Scheduler {
	s := &Scheduler{
		state: state,
		inbox: make(chan any, inboxSize),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	s.snap = state.Snapshot()
	return s
}

// Submit queues an intent for the next tick. It never blocks and reports false
// when the queue is full.
func (s *Scheduler) Submit(intent any) bool {
	select {
	case s.inbox <- intent:
		return true
	default:
		return false
	}
}

// Step runs one tick: drain intents, step the physics unless terminal, then
// publish a new snapshot. In the terminal state the snapshot stays frozen
// until a reset arrives.
func (s *Scheduler) Step() {
	s.mu.Lock()

	var launched []*Body
	s.drain(&launched)

	// 1-2. PHYSICS: integrate, collide, merge.
	events := s.state.Step()

	// 3. PUBLISH.
	s.snap = s.state.Snapshot()
	s.mu.Unlock()

	// 4. HOOKS: outside the lock so collaborators can read the snapshot.
	if s.OnLaunch != nil {
		for _, b := range launched {
			s.OnLaunch(b)
		}
	}
	if s.OnMerge != nil {
		for _, ev := range events {
			s.OnMerge(ev)
		}
	}
}

func (s *Scheduler) drain(launched *[]*Body) {
	for {
		select {
		case intent := <-s.inbox:
			if b := s.apply(intent); b != nil {
				*launched = append(*launched, b)
			}
		default:
			return
		}
	}
}

func (s *Scheduler) apply(intent any) *Body {
	st := s.state
	switch in := intent.(type) {
	case GestureStart:
		st.BeginAim(in.P)
	case GestureMove:
		st.MoveAim(in.P)
	case GestureEnd:
		if b, ok := st.ReleaseAim(in.P); ok {
			return b
		}
	case GestureCancel:
		st.CancelAim()
	case LaunchIntent:
		if b, ok := st.Launch(in.Request); ok {
			return b
		}
	case EndGameIntent:
		if err := st.EndGame(); err != nil {
			s.warnf("end game: %v", err)
		}
	case ResetIntent:
		if err := st.Reset(); err != nil {
			s.warnf("reset: %v", err)
		}
	default:
		s.warnf("unknown intent %T ignored", intent)
	}
	return nil
}

func (s *Scheduler) warnf(format string, v ...interface{}) {
	if s.Logger != nil {
		s.Logger.Warnf(format, v...)
	}
}

// Snapshot returns the last published render state. Safe from any goroutine.
func (s *Scheduler) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Run steps once per interval until ctx is cancelled or Stop is called. The
// ticker is created once for the lifetime of the loop.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	s.started.Store(true)
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.quit:
			return
		case <-ticker.C:
			select {
			case <-s.quit:
				return
			default:
			}
			s.Step()
		}
	}
}

// Stop halts Run and waits for it to return. No tick runs after Stop returns.
// Safe to call more than once, and before Run.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	if s.started.Load() {
		<-s.done
	}
}
