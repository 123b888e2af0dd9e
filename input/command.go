package input

import (
	"fmt"
	"strings"
)

// Command is one input the world consumes
type Command uint8

const (
	CommandNone Command = iota

	// Walking
	CommandForward
	CommandBack
	CommandStrafeLeft
	CommandStrafeRight

	// Looking
	CommandLookLeft
	CommandLookRight
	CommandLookUp
	CommandLookDown

	CommandInteract
	CommandToggleSmartWalls
	CommandRenormalize
	CommandReset
	CommandQuit
)

// commandRegistry maps canonical names used in key binding config to commands
var commandRegistry = map[string]Command{
	"none":               CommandNone,
	"forward":            CommandForward,
	"back":               CommandBack,
	"strafe_left":        CommandStrafeLeft,
	"strafe_right":       CommandStrafeRight,
	"look_left":          CommandLookLeft,
	"look_right":         CommandLookRight,
	"look_up":            CommandLookUp,
	"look_down":          CommandLookDown,
	"interact":           CommandInteract,
	"toggle_smart_walls": CommandToggleSmartWalls,
	"renormalize":        CommandRenormalize,
	"reset":              CommandReset,
	"quit":               CommandQuit,
}

var commandNames = func() map[Command]string {
	m := make(map[Command]string, len(commandRegistry))
	for name, c := range commandRegistry {
		m[c] = name
	}
	return m
}()

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", c)
}

// IsMove reports whether c is a walking command
func (c Command) IsMove() bool {
	return c >= CommandForward && c <= CommandStrafeRight
}

// IsLook reports whether c is a look command
func (c Command) IsLook() bool {
	return c >= CommandLookLeft && c <= CommandLookDown
}

// ParseCommand resolves a command name, case-insensitively
func ParseCommand(name string) (Command, error) {
	c, ok := commandRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return CommandNone, fmt.Errorf("unknown command: %q", name)
	}
	return c, nil
}
