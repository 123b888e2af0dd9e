package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects a tone shape
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// value returns the wave at phase in [0, 1)
func (w Wave) value(phase float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// tone is a fixed-length mono wave written to both channels
type tone struct {
	wave      Wave
	step      float64 // Phase advance per sample
	phase     float64
	remaining int
}

// NewTone streams freq Hz of the given wave for d
func NewTone(wave Wave, freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{wave: wave, step: freq / float64(rate), remaining: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.remaining <= 0 {
		return 0, false
	}
	n := min(len(samples), t.remaining)
	for i := 0; i < n; i++ {
		v := t.wave.value(t.phase)
		samples[i] = [2]float64{v, v}
		_, t.phase = math.Modf(t.phase + t.step)
	}
	t.remaining -= n
	return n, true
}

func (t *tone) Err() error { return nil }

// shaped ramps its source up over attack samples and down over the final
// release samples of total
type shaped struct {
	src                    beep.Streamer
	pos                    int
	attack, release, total int
}

// NewShaped applies a linear attack and release to s over d
func NewShaped(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	att, rel := rate.N(attack), rate.N(release)
	if att+rel > total {
		rel = max(total-att, 0)
	}
	return &shaped{src: s, attack: att, release: rel, total: total}
}

func (e *shaped) gain() float64 {
	switch {
	case e.attack > 0 && e.pos < e.attack:
		return float64(e.pos) / float64(e.attack)
	case e.release > 0 && e.pos >= e.total-e.release:
		return float64(e.total-e.pos) / float64(e.release)
	}
	return 1
}

func (e *shaped) Stream(samples [][2]float64) (int, bool) {
	left := e.total - e.pos
	if left <= 0 {
		return 0, false
	}
	if len(samples) > left {
		samples = samples[:left]
	}
	n, ok := e.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *shaped) Err() error { return e.src.Err() }

// newVolume scales s linearly; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
