package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cubeworld/asset"
	"github.com/lixenwraith/cubeworld/audio"
	"github.com/lixenwraith/cubeworld/config"
	"github.com/lixenwraith/cubeworld/constant"
	"github.com/lixenwraith/cubeworld/world"
)

var (
	configFlag      = flag.String("config", "", "Settings file (default "+constant.DefaultConfigPath+" when present)")
	debugFlag       = flag.Bool("debug", false, "Write a debug log under "+constant.LogDir)
	mapsFlag        = flag.String("maps", "", "Directory of face map files")
	seedFlag        = flag.Int64("seed", 0, "Generation seed, 0 for time based")
	generateFlag    = flag.Bool("generate", false, "Generate faces even when map files exist")
	writeConfigFlag = flag.Bool("write-config", false, "Print the default settings file and exit")
)

func main() {
	flag.Parse()

	if *writeConfigFlag {
		fmt.Print(asset.DefaultConfig)
		return
	}

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	w, err := world.Build(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build world: %v\n", err)
		os.Exit(1)
	}
	keymap, err := cfg.Keymap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load key bindings: %v\n", err)
		os.Exit(1)
	}
	audioCfg, err := cfg.AudioSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load audio settings: %v\n", err)
		os.Exit(1)
	}

	// Non-fatal, the game runs without sound
	player := audio.NewPlayer(audioCfg)
	if err := player.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer player.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			fmt.Fprintf(os.Stderr, "\nCUBEWORLD CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	log.Printf("world ready: faces from %s, %d items", w.Source(), w.Items().Total())
	game := NewGame(screen, w, keymap, player)
	game.run()
	log.Printf("session: %s", game.stats.Summary())
}

// loadConfig reads the settings file, then environment, then flags
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if *configFlag != "" {
		cfg, err = config.Load(*configFlag)
	} else {
		cfg, err = config.LoadOrDefault(constant.DefaultConfigPath)
	}
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "maps":
			cfg.Maps.Dir = *mapsFlag
		case "seed":
			cfg.Generate.Seed = *seedFlag
		case "generate":
			cfg.Generate.Enabled = *generateFlag
		}
	})
	return cfg, cfg.Validate()
}
