package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default 0.0-1.0 gain
	AudioMasterVolume = 0.5
)

// Bump Sound, rolled back move
const (
	BumpSoundDuration = 90 * time.Millisecond
	BumpSoundAttack   = 5 * time.Millisecond
	BumpSoundRelease  = 40 * time.Millisecond
	BumpSoundFreq     = 110.0
)

// Chime Sound, item pickup
const (
	ChimeSoundDuration           = 500 * time.Millisecond
	ChimeSoundAttack             = 5 * time.Millisecond
	ChimeSoundFundamentalRelease = 450 * time.Millisecond
	ChimeSoundOvertoneRelease    = 180 * time.Millisecond
	ChimeSoundFreq               = 880.0
)

// Fanfare Sound, all items collected
const (
	FanfareNoteDuration = 140 * time.Millisecond
	FanfareLastDuration = 420 * time.Millisecond
	FanfareAttack       = 5 * time.Millisecond
	FanfareNoteRelease  = 60 * time.Millisecond
	FanfareLastRelease  = 300 * time.Millisecond
)

// Step Sound, committed move
const (
	StepSoundDuration = 40 * time.Millisecond
	StepSoundAttack   = 10 * time.Millisecond
	StepSoundRelease  = 25 * time.Millisecond
)
