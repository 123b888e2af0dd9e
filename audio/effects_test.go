package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/cubeworld/parameter"
)

const testRate = beep.SampleRate(44100)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestToneWaves(t *testing.T) {
	tests := []struct {
		name  string
		wave  Wave
		freq  float64
		check func(v float64) bool
	}{
		{"sine", WaveSine, 440, func(v float64) bool { return v >= -1 && v <= 1 }},
		{"square", WaveSquare, 220, func(v float64) bool { return v == 1 || v == -1 }},
		{"noise", WaveNoise, 0, func(v float64) bool { return v >= -1 && v <= 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drain(NewTone(tt.wave, tt.freq, 20*time.Millisecond, testRate))
			if len(got) != testRate.N(20*time.Millisecond) {
				t.Fatalf("Expected %d samples, got %d", testRate.N(20*time.Millisecond), len(got))
			}
			distinct := map[float64]bool{}
			for i, s := range got {
				if !tt.check(s[0]) || s[0] != s[1] {
					t.Fatalf("Sample %d invalid: %v", i, s)
				}
				distinct[s[0]] = true
			}
			if len(distinct) < 2 {
				t.Error("Expected the wave to vary")
			}
		})
	}
}

func TestToneEnds(t *testing.T) {
	tone := NewTone(WaveSine, 440, 10*time.Millisecond, testRate)
	buf := make([][2]float64, testRate.N(10*time.Millisecond)*2)
	if n, ok := tone.Stream(buf); !ok || n != testRate.N(10*time.Millisecond) {
		t.Errorf("Expected a short first read, got n=%d ok=%v", n, ok)
	}
	if n, ok := tone.Stream(buf); ok || n != 0 {
		t.Errorf("Expected drained tone, got n=%d ok=%v", n, ok)
	}
	if tone.Err() != nil {
		t.Errorf("Expected no error, got %v", tone.Err())
	}
}

func TestShapedRamps(t *testing.T) {
	d := 100 * time.Millisecond
	src := NewTone(WaveSquare, 100, d, testRate)
	got := drain(NewShaped(src, d, 40*time.Millisecond, 40*time.Millisecond, testRate))

	if len(got) != testRate.N(d) {
		t.Fatalf("Expected %d samples, got %d", testRate.N(d), len(got))
	}
	first, mid, last := math.Abs(got[0][0]), math.Abs(got[len(got)/2][0]), math.Abs(got[len(got)-1][0])
	if first != 0 {
		t.Errorf("Expected silent first sample, got %f", first)
	}
	if mid != 1 {
		t.Errorf("Expected full sustain, got %f", mid)
	}
	if last >= mid {
		t.Errorf("Expected release to fade, last=%f", last)
	}
}

func TestShapedTruncatesLongSource(t *testing.T) {
	src := NewTone(WaveSine, 440, time.Second, testRate)
	got := drain(NewShaped(src, 10*time.Millisecond, 0, 0, testRate))
	if len(got) != testRate.N(10*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", testRate.N(10*time.Millisecond), len(got))
	}
}

func peak(samples [][2]float64) float64 {
	m := 0.0
	for _, s := range samples {
		m = math.Max(m, math.Max(math.Abs(s[0]), math.Abs(s[1])))
	}
	return m
}

// firstSamples reads up to n samples of a cue
func firstSamples(s beep.Streamer, n int) [][2]float64 {
	buf := make([][2]float64, n)
	got := 0
	for got < n {
		k, ok := s.Stream(buf[got:])
		got += k
		if !ok || k == 0 {
			break
		}
	}
	return buf[:got]
}

func TestEveryCueStaysInRange(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 1
	for st := SoundType(0); st < soundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			cue := GetSoundEffect(st, cfg)
			if cue == nil {
				t.Fatalf("Expected a cue for %s", st)
			}
			got := firstSamples(cue, 2000)
			if len(got) == 0 {
				t.Fatal("Expected samples")
			}
			if p := peak(got); p == 0 || p > 1 {
				t.Errorf("Expected peak in (0, 1], got %f", p)
			}
		})
	}
	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Expected no cue for an unknown sound type")
	}
}

func TestStepCueIsShort(t *testing.T) {
	cfg := DefaultAudioConfig()
	got := drain(CreateStepSound(cfg))
	if want := beep.SampleRate(cfg.SampleRate).N(parameter.StepSoundDuration); len(got) != want {
		t.Errorf("Expected a %d sample scuff, got %d", want, len(got))
	}
}

func TestFanfareIsRisingArpeggio(t *testing.T) {
	for i := 1; i < len(fanfareNotes); i++ {
		if fanfareNotes[i] <= fanfareNotes[i-1] {
			t.Errorf("Expected rising notes, %f then %f", fanfareNotes[i-1], fanfareNotes[i])
		}
	}
	if last, first := fanfareNotes[len(fanfareNotes)-1], fanfareNotes[0]; math.Abs(last-2*first) > 1e-6 {
		t.Errorf("Expected the arpeggio to end an octave up, got %f from %f", last, first)
	}

	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	want := rate.N(parameter.FanfareNoteDuration)*(len(fanfareNotes)-1) + rate.N(parameter.FanfareLastDuration)
	if got := len(drain(CreateFanfareSound(cfg))); got != want {
		t.Errorf("Expected the notes to play back to back in %d samples, got %d", want, got)
	}
}

func TestMasterVolumeScalesCues(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 1
	loud := peak(firstSamples(CreateChimeSound(cfg), 2000))
	cfg.MasterVolume = 0.25
	quiet := peak(firstSamples(CreateChimeSound(cfg), 2000))
	if math.Abs(quiet-loud/4) > 1e-9 {
		t.Errorf("Expected a quarter of %f at master 0.25, got %f", loud, quiet)
	}

	cfg.MasterVolume = 0
	for st := SoundType(0); st < soundTypeCount; st++ {
		if p := peak(firstSamples(GetSoundEffect(st, cfg), 2000)); p != 0 {
			t.Errorf("Expected %s silent at master 0, got peak %f", st, p)
		}
	}
}

func TestMutedEffectIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.EffectVolumes[SoundStep] = 0
	if p := peak(drain(CreateStepSound(cfg))); p != 0 {
		t.Errorf("Expected a muted step, got peak %f", p)
	}
	if p := peak(firstSamples(CreateBumpSound(cfg), 2000)); p == 0 {
		t.Error("Expected other cues to keep playing")
	}
}
