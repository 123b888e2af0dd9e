package audio

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/cubeworld/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundBump    SoundType = iota // Move rolled back by a wall
	SoundChime                    // Item collected
	SoundFanfare                  // Last item collected
	SoundStep                     // Move committed
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundBump:    "bump",
	SoundChime:   "chime",
	SoundFanfare: "fanfare",
	SoundStep:    "step",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return fmt.Sprintf("SoundType(%d)", int(s))
}

// ParseSoundType resolves a sound name, case-insensitively
func ParseSoundType(name string) (SoundType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sound: %q", name)
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundBump:    0.8,
			SoundChime:   1.0,
			SoundFanfare: 0.7,
			SoundStep:    0.2,
		},
	}
}
