package audio

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lixenwraith/cubeworld/constant"
)

// ApplyEnv overrides cfg from environment variables. Master volume is read
// as 0-100 and clamped.
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv(constant.EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv(constant.EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}
}

// SetEffectVolumes applies name → volume overrides. Volumes are clamped to
// 0.0-1.0; an unknown name is an error and leaves cfg partly updated.
func (cfg *AudioConfig) SetEffectVolumes(volumes map[string]float64) error {
	if cfg.EffectVolumes == nil {
		cfg.EffectVolumes = make(map[SoundType]float64, soundTypeCount)
	}
	for name, v := range volumes {
		st, err := ParseSoundType(name)
		if err != nil {
			return fmt.Errorf("effect volume: %w", err)
		}
		cfg.EffectVolumes[st] = clamp01(v)
	}
	return nil
}

// Volume is the effective gain for a sound type
func (cfg *AudioConfig) Volume(st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
