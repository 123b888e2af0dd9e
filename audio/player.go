package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/cubeworld/parameter"
)

// Player mixes one-shot sound effects onto the speaker. Every method is
// safe to call when the speaker could not be opened; playback is then silent.
type Player struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      [soundTypeCount]int
}

// NewPlayer creates a player; nil cfg uses defaults
func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Config returns the player's settings
func (p *Player) Config() *AudioConfig {
	return p.cfg
}

// Initialize opens the speaker. A disabled config leaves the player silent
// and returns nil.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Active reports whether sounds reach the speaker
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues one sound effect
func (p *Player) Play(st SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := GetSoundEffect(st, p.cfg)
	if s == nil {
		return
	}
	p.played[st]++

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Played returns how many times st reached the mixer
func (p *Player) Played(st SoundType) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return p.played[st]
}

// Cleanup stops all sounds and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
