package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"equals":    '=',
}

// specialKeys maps lowercase tcell key names ("up", "esc", "ctrl-c") to keys
var specialKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// Keymap resolves terminal key events to commands
type Keymap struct {
	Runes map[rune]Command
	Keys  map[tcell.Key]Command
}

// DefaultKeymap binds WASD to walking, arrows to looking
func DefaultKeymap() *Keymap {
	return &Keymap{
		Runes: map[rune]Command{
			'w': CommandForward,
			's': CommandBack,
			'a': CommandStrafeLeft,
			'd': CommandStrafeRight,
			'e': CommandInteract,
			' ': CommandInteract,
			'b': CommandToggleSmartWalls,
			'r': CommandRenormalize,
			'x': CommandReset,
			'q': CommandQuit,
		},
		Keys: map[tcell.Key]Command{
			tcell.KeyLeft:   CommandLookLeft,
			tcell.KeyRight:  CommandLookRight,
			tcell.KeyUp:     CommandLookUp,
			tcell.KeyDown:   CommandLookDown,
			tcell.KeyEnter:  CommandInteract,
			tcell.KeyEscape: CommandQuit,
			tcell.KeyCtrlC:  CommandQuit,
		},
	}
}

// Clone returns an independent copy
func (k *Keymap) Clone() *Keymap {
	c := &Keymap{
		Runes: make(map[rune]Command, len(k.Runes)),
		Keys:  make(map[tcell.Key]Command, len(k.Keys)),
	}
	for r, cmd := range k.Runes {
		c.Runes[r] = cmd
	}
	for key, cmd := range k.Keys {
		c.Keys[key] = cmd
	}
	return c
}

// Resolve maps an event to a command. Letters match regardless of case.
func (k *Keymap) Resolve(ev *tcell.EventKey) Command {
	if ev == nil {
		return CommandNone
	}
	if ev.Key() != tcell.KeyRune {
		return k.Keys[ev.Key()]
	}
	r := ev.Rune()
	if cmd, ok := k.Runes[r]; ok {
		return cmd
	}
	return k.Runes[toLower(r)]
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// ParseBindings builds an override keymap from key name → command name
// pairs. Keys are single characters, rune aliases or tcell key names.
func ParseBindings(bindings map[string]string) (*Keymap, error) {
	km := &Keymap{Runes: map[rune]Command{}, Keys: map[tcell.Key]Command{}}
	for keyStr, name := range bindings {
		cmd, err := ParseCommand(name)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			km.Runes[r] = cmd
			continue
		}
		key, ok := specialKeys[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("unknown key name: %q", keyStr)
		}
		km.Keys[key] = cmd
	}
	return km, nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return toLower(runes[0]), true
	}
	return 0, false
}

// Merge returns a new keymap with base bindings overridden. A binding to
// "none" removes the key.
func Merge(base, override *Keymap) *Keymap {
	result := base.Clone()
	if override == nil {
		return result
	}
	for r, cmd := range override.Runes {
		if cmd == CommandNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = cmd
		}
	}
	for key, cmd := range override.Keys {
		if cmd == CommandNone {
			delete(result.Keys, key)
		} else {
			result.Keys[key] = cmd
		}
	}
	return result
}
