// Package movement turns walking commands into world rotations.
//
// The observer never moves. Walking forward rolls the world about the
// horizontal axis perpendicular to the heading, strafing rolls it about the
// heading itself. Each move builds a candidate frame, asks a Validator whether
// it collides, and either commits the candidate or discards it. A discarded
// move leaves the current frame untouched bit for bit.
package movement

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cubeworld/frame"
)

// Direction is a walking command
type Direction uint8

const (
	Forward Direction = iota
	Back
	StrafeLeft
	StrafeRight
)

var directionNames = [...]string{"forward", "back", "strafe_left", "strafe_right"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// State tracks a move attempt
type State uint8

const (
	Idle State = iota
	Validating
	Committed
	RolledBack
)

var stateNames = [...]string{"idle", "validating", "committed", "rolled_back"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// Validator decides whether a candidate frame is blocked
// collision.Engine satisfies it
type Validator interface {
	WouldCollide(candidate frame.Frame) bool
}

// Config holds the movement tunables
type Config struct {
	StepDegrees      float64 // Rotation per walking step
	PitchLimit       float64 // Radians, 0 disables the clamp
	RenormalizeEvery int     // Re-orthonormalize after every K commits, 0 never
}

// Result reports the outcome of one move attempt
type Result struct {
	Direction Direction
	State     State // Committed or RolledBack
	Axis      mgl64.Vec3
	Angle     float64 // Degrees
}

// RotationFor derives the world rotation for a walking step
// Forward and Back turn about the horizontal axis perpendicular to the
// heading; strafing turns about the heading.
func RotationFor(yaw float64, dir Direction, step float64) (axis mgl64.Vec3, angle float64) {
	sin, cos := math.Sincos(yaw)
	switch dir {
	case Forward:
		return mgl64.Vec3{cos, 0, sin}, -step
	case Back:
		return mgl64.Vec3{cos, 0, sin}, step
	case StrafeLeft:
		return mgl64.Vec3{sin, 0, -cos}, -step
	case StrafeRight:
		return mgl64.Vec3{sin, 0, -cos}, step
	}
	return mgl64.Vec3{}, 0
}

// Controller owns the committed world frame and the view angles
type Controller struct {
	validator Validator
	cfg       Config

	current frame.Frame
	view    ViewAngles
	state   State
	last    Result
	commits int
}

// NewController starts at the identity frame looking along -Z
func NewController(v Validator, cfg Config) *Controller {
	return &Controller{
		validator: v,
		cfg:       cfg,
		current:   frame.Identity(),
	}
}

func (c *Controller) Frame() frame.Frame { return c.current }
func (c *Controller) View() ViewAngles   { return c.view }
func (c *Controller) State() State       { return c.state }

// Last returns the result of the most recent move attempt
func (c *Controller) Last() Result { return c.last }

// Commits returns the number of committed moves
func (c *Controller) Commits() int { return c.commits }

// Move attempts one walking step
func (c *Controller) Move(dir Direction) Result {
	axis, angle := RotationFor(c.view.Yaw, dir, c.cfg.StepDegrees)
	res := Result{Direction: dir, Axis: axis, Angle: angle}

	c.state = Validating
	candidate := c.current.Apply(axis, angle)
	if c.validator != nil && c.validator.WouldCollide(candidate) {
		res.State = RolledBack
	} else {
		c.commits++
		if k := c.cfg.RenormalizeEvery; k > 0 && c.commits%k == 0 {
			candidate = candidate.Renormalize()
		}
		c.current = candidate
		res.State = Committed
	}

	c.last = res
	c.state = Idle
	return res
}

// Look turns the gaze unconditionally
func (c *Controller) Look(dYaw, dPitch float64) ViewAngles {
	c.view = c.view.Turn(dYaw, dPitch, c.cfg.PitchLimit)
	return c.view
}

// Renormalize re-orthonormalizes the committed frame
func (c *Controller) Renormalize() {
	c.current = c.current.Renormalize()
}

// Reset returns to the identity frame and default view
func (c *Controller) Reset() {
	c.current = frame.Identity()
	c.view = ViewAngles{}
	c.state = Idle
	c.last = Result{}
	c.commits = 0
}
