package world

import (
	"fmt"
	"log"
	"strings"

	"github.com/lixenwraith/cubeworld/asset"
	"github.com/lixenwraith/cubeworld/collision"
	"github.com/lixenwraith/cubeworld/config"
	"github.com/lixenwraith/cubeworld/cube"
	"github.com/lixenwraith/cubeworld/level"
	"github.com/lixenwraith/cubeworld/maze"
	"github.com/lixenwraith/cubeworld/mesh"
	"github.com/lixenwraith/cubeworld/movement"
)

// Face sources reported by World.Source
const (
	SourceMaps      = "maps"
	SourceGenerated = "generated"
)

// OptionsFrom extracts world options from a validated config
func OptionsFrom(cfg *config.Config) Options {
	return Options{
		AnchorHeight:      cfg.World.AnchorHeight,
		EyeHeight:         cfg.World.EyeHeight,
		LookStep:          cfg.Movement.LookStep,
		InteractThreshold: cfg.Items.InteractThreshold,
		Movement: movement.Config{
			StepDegrees:      cfg.Movement.StepDegrees,
			PitchLimit:       cfg.Movement.PitchLimit,
			RenormalizeEvery: cfg.Movement.RenormalizeEvery,
		},
		Collision: collision.Options{
			Threshold:  cfg.Collision.Threshold,
			SmartWalls: cfg.Collision.SmartWalls,
		},
	}
}

// Build creates the world described by cfg. Faces come from the map files
// unless generation is forced or no map file could be read.
func Build(cfg *config.Config) (*World, error) {
	g, err := cube.NewGrid(cfg.World.Resolution, cfg.World.Radius, cfg.World.WallDepth)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}

	source := SourceMaps
	if cfg.Generate.Enabled {
		source = SourceGenerated
	} else if level.Load(cfg.Maps.Dir, cfg.FaceFiles(), g) == 0 {
		log.Printf("world: no map files in %q, generating faces", cfg.Maps.Dir)
		source = SourceGenerated
	}

	if source == SourceGenerated {
		items := maze.GenerateCube(g, maze.CubeConfig{
			Braiding: cfg.Generate.Braiding,
			Seed:     cfg.Generate.Seed,
			Items:    cfg.Generate.Items,
		})
		log.Printf("world: generated %d faces, %d walls, %d items", cube.FaceCount, g.Count(cube.Wall), len(items))
	}

	w, err := New(g, loadModel(cfg.Items.Model), OptionsFrom(cfg))
	if err != nil {
		return nil, err
	}
	w.source = source
	return w, nil
}

// loadModel reads the item model, falling back to the built-in gem
func loadModel(path string) *mesh.Mesh {
	if path != "" {
		if m := mesh.LoadOrEmpty(path); !m.Empty() {
			return m
		}
	}
	m, err := mesh.Parse(strings.NewReader(asset.GemModel))
	if err != nil {
		log.Printf("world: built-in model: %v", err)
		return &mesh.Mesh{}
	}
	return m
}
