package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// chimeScale is a pentatonic run, one note per tier, highest first.
var chimeScale = [...]float64{1046.5, 880.0, 784.0, 659.3, 587.3, 523.3, 440.0, 392.0, 329.6, 293.7}

// ChimeFreq returns the chime pitch for tier, clamped to the scale.
func ChimeFreq(tier int) float64 {
	if tier < 0 {
		tier = 0
	}
	if tier >= len(chimeScale) {
		tier = len(chimeScale) - 1
	}
	return chimeScale[tier]
}

// Chime is a bell-like tone with a fundamental and a fifth, fading out
// exponentially. It ends after its duration.
type Chime struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func NewChime(sr beep.SampleRate, freq float64, d time.Duration) *Chime {
	return &Chime{sr: sr, freq: freq, total: sr.N(d)}
}

func (c *Chime) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	for i := range samples {
		if c.pos >= c.total {
			return i, true
		}
		t := float64(c.pos) / float64(c.sr)
		env := math.Exp(-6 * float64(c.pos) / float64(c.total))
		attack := math.Min(t/0.005, 1)
		s := 0.22*math.Sin(2*math.Pi*c.freq*t) + 0.08*math.Sin(2*math.Pi*c.freq*1.5*t)
		s *= env * attack
		samples[i][0] = s
		samples[i][1] = s
		c.pos++
	}
	return len(samples), true
}

func (c *Chime) Err() error { return nil }

// Whoosh is band-limited noise with a rising then falling envelope.
type Whoosh struct {
	sr    beep.SampleRate
	pos   int
	total int
	rng   *rand.Rand
	low   float64
}

func NewWhoosh(sr beep.SampleRate, d time.Duration, seed int64) *Whoosh {
	return &Whoosh{
		sr:    sr,
		total: sr.N(d),
		rng:   rand.New(rand.NewSource(seed)), // #nosec G404 -- audio noise
	}
}

func (w *Whoosh) Stream(samples [][2]float64) (n int, ok bool) {
	if w.pos >= w.total {
		return 0, false
	}
	for i := range samples {
		if w.pos >= w.total {
			return i, true
		}
		phase := float64(w.pos) / float64(w.total)
		env := math.Sin(phase * math.Pi)
		// One-pole low-pass whose cutoff opens as the whoosh passes.
		alpha := 0.05 + 0.25*phase
		w.low += alpha * (w.rng.Float64()*2 - 1 - w.low)
		s := 0.3 * env * w.low
		samples[i][0] = s
		samples[i][1] = s
		w.pos++
	}
	return len(samples), true
}

func (w *Whoosh) Err() error { return nil }

var (
	_ beep.Streamer = (*Chime)(nil)
	_ beep.Streamer = (*Whoosh)(nil)
)
