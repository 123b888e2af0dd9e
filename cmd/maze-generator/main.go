// Command maze-generator writes a generated cube of face maps in the CSV
// format the game loads, and prints each face.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lixenwraith/cubeworld/cube"
	"github.com/lixenwraith/cubeworld/level"
	"github.com/lixenwraith/cubeworld/maze"
	"github.com/lixenwraith/cubeworld/parameter"
)

var (
	sizeFlag  = flag.Int("size", parameter.WorldResolution, "Cells per face edge")
	seedFlag  = flag.Int64("seed", 0, "Generation seed, 0 for time based")
	braidFlag = flag.Float64("braid", parameter.MazeBraiding, "Braiding factor [0.0 - 1.0]")
	itemsFlag = flag.Bool("items", true, "Place one item per face")
	outFlag   = flag.String("out", "", "Directory to write face files into")
	quietFlag = flag.Bool("quiet", false, "Do not print faces")
)

func main() {
	flag.Parse()

	if *sizeFlag < parameter.MinResolution || *sizeFlag > parameter.MaxResolution {
		fmt.Fprintf(os.Stderr, "size must be in [%d, %d]\n", parameter.MinResolution, parameter.MaxResolution)
		os.Exit(2)
	}
	if *braidFlag < 0 || *braidFlag > 1 {
		fmt.Fprintln(os.Stderr, "braid must be in [0, 1]")
		os.Exit(2)
	}

	g, err := cube.NewGrid(*sizeFlag, parameter.WorldRadius, parameter.WallDepth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "grid: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	items := maze.GenerateCube(g, maze.CubeConfig{Braiding: *braidFlag, Seed: *seedFlag, Items: *itemsFlag})
	fmt.Printf("Generated %d faces of %dx%d in %v, %d walls, %d items\n",
		cube.FaceCount, *sizeFlag, *sizeFlag, time.Since(start), g.Count(cube.Wall), len(items))

	if !*quietFlag {
		draw(os.Stdout, g)
	}

	if *outFlag != "" {
		if err := level.Save(*outFlag, level.DefaultFiles(), g); err != nil {
			fmt.Fprintf(os.Stderr, "save: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote face files to %s\n", *outFlag)
	}
}

// draw prints every face in its own grid coordinates, spawn marked S
func draw(w io.Writer, g *cube.Grid) {
	spawn := maze.SpawnCell(g)
	for _, f := range cube.Faces {
		fmt.Fprintf(w, "\n%s\n", strings.ToUpper(f.String()))
		for r := 0; r < g.N(); r++ {
			var sb strings.Builder
			for c := 0; c < g.N(); c++ {
				s, _ := g.CellAt(f, r, c)
				switch {
				case f == spawn.Face && r == spawn.Row && c == spawn.Col:
					sb.WriteString("S")
				case s == cube.Wall:
					sb.WriteString("█")
				case s == cube.Item:
					sb.WriteString("*")
				default:
					sb.WriteString(" ")
				}
			}
			fmt.Fprintln(w, sb.String())
		}
	}
}
