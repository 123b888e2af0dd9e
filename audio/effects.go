package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/cubeworld/parameter"
)

// Sound effect generators

// CreateBumpSound generates a dull thud for a move stopped by a wall
func CreateBumpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewTone(WaveSquare, parameter.BumpSoundFreq, parameter.BumpSoundDuration, rate)
	bodyShaped := NewShaped(body, parameter.BumpSoundDuration, parameter.BumpSoundAttack, parameter.BumpSoundRelease, rate)

	// Noise transient on the attack
	click := NewTone(WaveNoise, 0, parameter.BumpSoundDuration, rate)
	clickShaped := NewShaped(click, parameter.BumpSoundDuration, parameter.BumpSoundAttack, parameter.BumpSoundDuration-parameter.BumpSoundAttack, rate)

	mixed := beep.Mix(
		newVolume(bodyShaped, 0.8),
		newVolume(clickShaped, 0.2),
	)
	return newVolume(mixed, cfg.Volume(SoundBump))
}

// CreateChimeSound generates a bell-like ding for an item pickup
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewTone(WaveSine, parameter.ChimeSoundFreq, parameter.ChimeSoundDuration, rate)
	fundShaped := NewShaped(fund, parameter.ChimeSoundDuration, parameter.ChimeSoundAttack, parameter.ChimeSoundFundamentalRelease, rate)

	// Octave up
	over := NewTone(WaveSine, 2*parameter.ChimeSoundFreq, parameter.ChimeSoundDuration, rate)
	overShaped := NewShaped(over, parameter.ChimeSoundDuration, parameter.ChimeSoundAttack, parameter.ChimeSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.Volume(SoundChime))
}

// fanfareNotes is a C major arpeggio ending on the octave (C6 E6 G6 C7)
var fanfareNotes = []float64{1046.50, 1318.51, 1567.98, 2093.00}

// CreateFanfareSound generates a rising arpeggio for collecting the last item
func CreateFanfareSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(fanfareNotes))
	for i, freq := range fanfareNotes {
		dur, rel := parameter.FanfareNoteDuration, parameter.FanfareNoteRelease
		if i == len(fanfareNotes)-1 {
			dur, rel = parameter.FanfareLastDuration, parameter.FanfareLastRelease
		}
		osc := NewTone(WaveSquare, freq, dur, rate)
		notes = append(notes, NewShaped(osc, dur, parameter.FanfareAttack, rel, rate))
	}

	return newVolume(beep.Seq(notes...), cfg.Volume(SoundFanfare))
}

// CreateStepSound generates a soft scuff for a committed move
func CreateStepSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewTone(WaveNoise, 0, parameter.StepSoundDuration, rate)
	scuff := NewShaped(noise, parameter.StepSoundDuration, parameter.StepSoundAttack, parameter.StepSoundRelease, rate)

	return newVolume(scuff, cfg.Volume(SoundStep))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundBump:
		return CreateBumpSound(cfg)
	case SoundChime:
		return CreateChimeSound(cfg)
	case SoundFanfare:
		return CreateFanfareSound(cfg)
	case SoundStep:
		return CreateStepSound(cfg)
	default:
		return nil
	}
}
