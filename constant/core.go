package constant

// Application
const (
	AppName = "cubeworld"

	// DefaultConfigPath is read when -config is not given and the file exists
	DefaultConfigPath = "cubeworld.toml"

	// DefaultMapDir holds the per-face CSV files
	DefaultMapDir = "maps"
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "cubeworld.log"

	// MaxLogSize triggers rotation of the previous session's log (10MB)
	MaxLogSize = 10 * 1024 * 1024
)

// Environment overrides
const (
	EnvAudioEnabled = "CUBEWORLD_AUDIO_ENABLED"
	EnvMasterVolume = "CUBEWORLD_MASTER_VOLUME"
	EnvSeed         = "CUBEWORLD_SEED"
)
