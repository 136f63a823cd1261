// Package audio plays the merge chimes and launch whoosh.
package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes short one-shot effects into a single speaker stream. A
// disabled or uninitialised Player accepts every call and plays nothing.
type Player struct {
	mu          sync.Mutex
	enabled     bool
	initialized bool
	mixer       *beep.Mixer
	rng         *rand.Rand
}

func NewPlayer(enabled bool) *Player {
	return &Player{
		enabled: enabled,
		mixer:   &beep.Mixer{},
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- noise texture only
	}
}

// Initialize opens the speaker. On error the Player stays silent.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Merge plays the chime for a body reaching tier. Bigger planets ring lower.
func (p *Player) Merge(tier int) {
	p.play(NewChime(sampleRate, ChimeFreq(tier), 350*time.Millisecond))
}

// Launch plays the slingshot whoosh.
func (p *Player) Launch() {
	p.mu.Lock()
	seed := p.rng.Int63()
	p.mu.Unlock()
	p.play(NewWhoosh(sampleRate, 180*time.Millisecond, seed))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
