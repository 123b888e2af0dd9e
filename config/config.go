// Package config loads the TOML settings file.
//
// Every section has a default built from the parameter package, so a file
// only needs the keys it changes. Unknown keys are logged and ignored.
package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/cubeworld/audio"
	"github.com/lixenwraith/cubeworld/constant"
	"github.com/lixenwraith/cubeworld/cube"
	"github.com/lixenwraith/cubeworld/input"
	"github.com/lixenwraith/cubeworld/level"
	"github.com/lixenwraith/cubeworld/parameter"
)

// ErrInvalid reports a setting outside its accepted range
var ErrInvalid = errors.New("invalid config")

// Config is the whole settings file
type Config struct {
	World     WorldConfig       `toml:"world"`
	Movement  MovementConfig    `toml:"movement"`
	Collision CollisionConfig   `toml:"collision"`
	Items     ItemsConfig       `toml:"items"`
	Maps      MapsConfig        `toml:"maps"`
	Generate  GenerateConfig    `toml:"generate"`
	Audio     AudioConfig       `toml:"audio"`
	Keys      map[string]string `toml:"keys"`
}

type WorldConfig struct {
	Resolution   int     `toml:"resolution"`
	Radius       float64 `toml:"radius"`
	WallDepth    float64 `toml:"wall_depth"`
	AnchorHeight float64 `toml:"anchor_height"`
	EyeHeight    float64 `toml:"eye_height"`
}

type MovementConfig struct {
	StepDegrees      float64 `toml:"step_degrees"`
	LookStep         float64 `toml:"look_step"`
	PitchLimit       float64 `toml:"pitch_limit"`
	RenormalizeEvery int     `toml:"renormalize_every"`
}

type CollisionConfig struct {
	Threshold  float64 `toml:"threshold"`
	SmartWalls bool    `toml:"smart_walls"`
}

type ItemsConfig struct {
	InteractThreshold float64 `toml:"interact_threshold"`
	Model             string  `toml:"model"` // Empty uses the built-in model
}

// FaceEntry is one face's map file
type FaceEntry struct {
	File     string `toml:"file"`
	Rotation int    `toml:"rotation"`
}

type MapsConfig struct {
	Dir   string               `toml:"dir"`
	Faces map[string]FaceEntry `toml:"faces"`
}

type GenerateConfig struct {
	// Enabled forces procedural faces even when map files exist
	Enabled  bool    `toml:"enabled"`
	Seed     int64   `toml:"seed"` // 0 = time based
	Braiding float64 `toml:"braiding"`
	Items    bool    `toml:"items"`
}

type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	SampleRate   int                `toml:"sample_rate"`
	Volumes      map[string]float64 `toml:"volumes"`
}

// Default returns the built-in settings
func Default() *Config {
	faces := make(map[string]FaceEntry, cube.FaceCount)
	for _, ff := range level.DefaultFiles() {
		faces[ff.Face.String()] = FaceEntry{File: ff.File, Rotation: ff.Rotation}
	}

	return &Config{
		World: WorldConfig{
			Resolution:   parameter.WorldResolution,
			Radius:       parameter.WorldRadius,
			WallDepth:    parameter.WallDepth,
			AnchorHeight: parameter.AnchorHeight,
			EyeHeight:    parameter.EyeHeight,
		},
		Movement: MovementConfig{
			StepDegrees:      parameter.StepDegrees,
			LookStep:         parameter.LookStep,
			PitchLimit:       parameter.PitchLimit,
			RenormalizeEvery: parameter.RenormalizeEvery,
		},
		Collision: CollisionConfig{
			Threshold:  parameter.CollisionThreshold,
			SmartWalls: parameter.SmartWalls,
		},
		Items: ItemsConfig{
			InteractThreshold: parameter.InteractThreshold,
		},
		Maps: MapsConfig{
			Dir:   constant.DefaultMapDir,
			Faces: faces,
		},
		Generate: GenerateConfig{
			Braiding: parameter.MazeBraiding,
			Items:    true,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
			SampleRate:   parameter.AudioSampleRate,
		},
		Keys: map[string]string{},
	}
}

// Load reads path over the defaults and validates the result
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r over the defaults and validates the result
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	meta, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	for _, key := range meta.Undecoded() {
		log.Printf("config: unknown key %q ignored", key.String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path when it exists. A missing file yields the
// defaults; a file that exists but fails to decode or validate is an error.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// ApplyEnv overrides the generation seed from the environment
func (c *Config) ApplyEnv() {
	if s := os.Getenv(constant.EnvSeed); s != "" {
		if seed, err := strconv.ParseInt(s, 10, 64); err == nil {
			c.Generate.Seed = seed
		} else {
			log.Printf("config: ignoring %s=%q: %v", constant.EnvSeed, s, err)
		}
	}
}

// Validate checks ranges that would break the world model
func (c *Config) Validate() error {
	w := c.World
	if w.Resolution < parameter.MinResolution || w.Resolution > parameter.MaxResolution {
		return fmt.Errorf("%w: world.resolution %d outside [%d, %d]",
			ErrInvalid, w.Resolution, parameter.MinResolution, parameter.MaxResolution)
	}
	if w.Radius <= 0 {
		return fmt.Errorf("%w: world.radius must be positive", ErrInvalid)
	}
	if w.WallDepth <= 0 || w.WallDepth >= w.Radius {
		return fmt.Errorf("%w: world.wall_depth must be in (0, radius)", ErrInvalid)
	}
	if w.AnchorHeight <= 0 || w.AnchorHeight >= w.Radius {
		return fmt.Errorf("%w: world.anchor_height must be in (0, radius)", ErrInvalid)
	}
	if w.EyeHeight <= 0 || w.EyeHeight >= w.Radius {
		return fmt.Errorf("%w: world.eye_height must be in (0, radius)", ErrInvalid)
	}
	if c.Movement.StepDegrees <= 0 {
		return fmt.Errorf("%w: movement.step_degrees must be positive", ErrInvalid)
	}
	if c.Movement.RenormalizeEvery < 0 {
		return fmt.Errorf("%w: movement.renormalize_every must not be negative", ErrInvalid)
	}
	if c.Collision.Threshold <= 0 {
		return fmt.Errorf("%w: collision.threshold must be positive", ErrInvalid)
	}
	if c.Items.InteractThreshold <= 0 {
		return fmt.Errorf("%w: items.interact_threshold must be positive", ErrInvalid)
	}
	if c.Generate.Braiding < 0 || c.Generate.Braiding > 1 {
		return fmt.Errorf("%w: generate.braiding must be in [0, 1]", ErrInvalid)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate must be positive", ErrInvalid)
	}
	for name, fe := range c.Maps.Faces {
		if _, err := cube.ParseFace(strings.ToLower(name)); err != nil {
			return fmt.Errorf("%w: maps.faces: %v", ErrInvalid, err)
		}
		if _, err := level.NormalizeRotation(fe.Rotation); err != nil {
			return fmt.Errorf("%w: maps.faces.%s: %v", ErrInvalid, name, err)
		}
	}
	return nil
}

// FaceFiles lists map files in face order. Faces missing from the config use
// the conventional file name and rotation.
func (c *Config) FaceFiles() []level.FaceFile {
	files := level.DefaultFiles()
	byName := make(map[string]FaceEntry, len(c.Maps.Faces))
	for name, fe := range c.Maps.Faces {
		byName[strings.ToLower(name)] = fe
	}
	for i, ff := range files {
		if fe, ok := byName[ff.Face.String()]; ok {
			if fe.File != "" {
				files[i].File = fe.File
			}
			files[i].Rotation = fe.Rotation
		}
	}
	return files
}

// Keymap merges [keys] overrides into the default bindings
func (c *Config) Keymap() (*input.Keymap, error) {
	over, err := input.ParseBindings(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return input.Merge(input.DefaultKeymap(), over), nil
}

// AudioSettings builds the player config, environment overrides applied last
func (c *Config) AudioSettings() (*audio.AudioConfig, error) {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	if err := ac.SetEffectVolumes(c.Audio.Volumes); err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	audio.ApplyEnv(ac)
	return ac, nil
}
