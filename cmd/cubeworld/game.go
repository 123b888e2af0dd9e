package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cubeworld/audio"
	"github.com/lixenwraith/cubeworld/input"
	"github.com/lixenwraith/cubeworld/parameter"
	"github.com/lixenwraith/cubeworld/render"
	"github.com/lixenwraith/cubeworld/status"
	"github.com/lixenwraith/cubeworld/world"
)

// Game binds the world to a screen, a keymap and the sound player
type Game struct {
	screen   tcell.Screen
	world    *world.World
	renderer *render.Renderer
	keymap   *input.Keymap
	player   *audio.Player
	stats    *status.Registry
	dirty    bool
}

// NewGame wires a world to a screen, keymap and sound player
func NewGame(screen tcell.Screen, w *world.World, km *input.Keymap, player *audio.Player) *Game {
	return &Game{
		screen:   screen,
		world:    w,
		renderer: render.NewRenderer(),
		keymap:   km,
		player:   player,
		stats:    status.NewRegistry(),
		dirty:    true,
	}
}

// cueFor picks the sound for an outcome; completion outranks a pickup
func cueFor(out world.Outcome) (audio.SoundType, bool) {
	switch {
	case out.Completed:
		return audio.SoundFanfare, true
	case len(out.Collected) > 0:
		return audio.SoundChime, true
	case out.Blocked():
		return audio.SoundBump, true
	case out.Moved():
		return audio.SoundStep, true
	}
	return 0, false
}

// handleEvent applies one terminal event and reports whether to keep running
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := g.keymap.Resolve(ev)
		if cmd == input.CommandNone {
			return true
		}
		out := g.world.Handle(cmd)
		g.record(out)
		if st, ok := cueFor(out); ok {
			g.player.Play(st)
		}
		g.dirty = true
		return !out.Quit

	case *tcell.EventResize:
		g.screen.Sync()
		g.dirty = true
	}
	return true
}

func (g *Game) record(out world.Outcome) {
	g.stats.Inc(status.Commands)
	switch {
	case out.Moved():
		g.stats.Inc(status.Steps)
	case out.Blocked():
		g.stats.Inc(status.Bumps)
	}
	if n := len(out.Collected); n > 0 {
		g.stats.Counters.Get(status.Pickups).Add(int64(n))
	}
}

func (g *Game) draw() {
	snap := g.world.Snapshot()
	g.renderer.Draw(g.screen, snap)
	g.screen.Show()
	g.stats.Inc(status.Frames)
	g.stats.Gauges.Get(status.MaxDrift).Max(snap.Drift)
	g.dirty = false
}

// run polls input on its own goroutine and redraws on the frame tick when
// something changed
func (g *Game) run() {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.EventBuffer)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				g.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\nEVENT POLLER CRASHED: %v\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	g.draw()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if g.dirty {
				g.draw()
			}
		}
	}
}
