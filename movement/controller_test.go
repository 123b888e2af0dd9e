package movement

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cubeworld/collision"
	"github.com/lixenwraith/cubeworld/cube"
	"github.com/lixenwraith/cubeworld/frame"
)

// validatorFunc adapts a function to Validator
type validatorFunc func(frame.Frame) bool

func (f validatorFunc) WouldCollide(c frame.Frame) bool { return f(c) }

var (
	alwaysBlocked = validatorFunc(func(frame.Frame) bool { return true })
	neverBlocked  = validatorFunc(func(frame.Frame) bool { return false })
)

var testConfig = Config{StepDegrees: 1.5, PitchLimit: 1.5}

func TestRotationFor(t *testing.T) {
	tests := []struct {
		name  string
		yaw   float64
		dir   Direction
		axis  mgl64.Vec3
		angle float64
	}{
		{"forward at yaw 0", 0, Forward, mgl64.Vec3{1, 0, 0}, -1.5},
		{"back at yaw 0", 0, Back, mgl64.Vec3{1, 0, 0}, 1.5},
		{"strafe left at yaw 0", 0, StrafeLeft, mgl64.Vec3{0, 0, -1}, -1.5},
		{"strafe right at yaw 0", 0, StrafeRight, mgl64.Vec3{0, 0, -1}, 1.5},
		{"forward at quarter turn", math.Pi / 2, Forward, mgl64.Vec3{0, 0, 1}, -1.5},
		{"strafe right at quarter turn", math.Pi / 2, StrafeRight, mgl64.Vec3{1, 0, 0}, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, angle := RotationFor(tt.yaw, tt.dir, 1.5)
			assert.True(t, axis.ApproxEqualThreshold(tt.axis, 1e-12), "Expected axis %v, got %v", tt.axis, axis)
			assert.Equal(t, tt.angle, angle)
			assert.Equal(t, 0.0, axis[1], "axis stays in the X/Z plane")
		})
	}
}

// Walking forward brings the ground ahead of the observer down to the anchor
func TestForwardRollsGroundAheadTowardAnchor(t *testing.T) {
	c := NewController(neverBlocked, testConfig)
	ahead := mgl64.Vec3{0, -10, -10}.Normalize()
	anchorDir := mgl64.Vec3{0, -1, 0}

	before := ahead.Dot(anchorDir)
	c.Move(Forward)
	after := c.Frame().TransformPoint(ahead).Dot(anchorDir)
	assert.Greater(t, after, before)
}

func TestRolledBackMoveLeavesFrameBitwiseUnchanged(t *testing.T) {
	c := NewController(neverBlocked, testConfig)
	c.Look(0.3, 0)
	c.Move(Forward)
	c.Move(StrafeLeft)
	before := c.Frame()

	c.validator = alwaysBlocked
	for _, d := range []Direction{Forward, Back, StrafeLeft, StrafeRight} {
		res := c.Move(d)
		assert.Equal(t, RolledBack, res.State)
		assert.True(t, c.Frame().Equal(before), "frame changed after rejected %s", d)
	}
	assert.Equal(t, 2, c.Commits())
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, StrafeRight, c.Last().Direction)
}

func TestValidatorSeesCandidate(t *testing.T) {
	var seen frame.Frame
	c := NewController(validatorFunc(func(f frame.Frame) bool {
		seen = f
		return false
	}), testConfig)

	res := c.Move(Back)
	require.Equal(t, Committed, res.State)
	assert.True(t, seen.Equal(c.Frame()))
	assert.True(t, seen.Equal(frame.Identity().Apply(res.Axis, res.Angle)))
}

func TestLookIsNeverBlocked(t *testing.T) {
	c := NewController(alwaysBlocked, testConfig)
	v := c.Look(0.05, 0.05)
	assert.InDelta(t, 0.05, v.Yaw, 1e-15)
	assert.InDelta(t, 0.05, v.Pitch, 1e-15)
	assert.True(t, c.Frame().Equal(frame.Identity()))
}

func TestPitchClamp(t *testing.T) {
	c := NewController(nil, testConfig)
	for i := 0; i < 100; i++ {
		c.Look(0, 0.05)
	}
	assert.Equal(t, 1.5, c.View().Pitch)
	for i := 0; i < 100; i++ {
		c.Look(0, -0.05)
	}
	assert.Equal(t, -1.5, c.View().Pitch)

	free := ViewAngles{}.Turn(0, 3, 0)
	assert.Equal(t, 3.0, free.Pitch)
}

func TestLookVector(t *testing.T) {
	assert.True(t, ViewAngles{}.Look().ApproxEqualThreshold(mgl64.Vec3{0, 0, -1}, 1e-12))
	assert.True(t, ViewAngles{Yaw: math.Pi / 2}.Look().ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-12))
	assert.InDelta(t, 1, ViewAngles{Yaw: 0.7, Pitch: -0.4}.Look().Len(), 1e-12)
}

func TestRenormalizeEveryBoundsDrift(t *testing.T) {
	cfg := testConfig
	cfg.RenormalizeEvery = 8
	c := NewController(neverBlocked, cfg)

	dirs := []Direction{Forward, StrafeRight, Forward, StrafeLeft, Back}
	for i := 0; i < 4000; i++ {
		c.Look(0.013*float64(i%7), 0)
		c.Move(dirs[i%len(dirs)])
		if c.Commits()%cfg.RenormalizeEvery == 0 {
			assert.Less(t, c.Frame().OrthonormalityError(), 1e-12, "after %d commits", c.Commits())
		}
	}
	assert.Equal(t, 4000, c.Commits())
}

func TestManualRenormalizeAndReset(t *testing.T) {
	c := NewController(neverBlocked, testConfig)
	c.Move(Forward)
	c.Renormalize()
	assert.Less(t, c.Frame().OrthonormalityError(), 1e-12)

	c.Reset()
	assert.True(t, c.Frame().Equal(frame.Identity()))
	assert.Equal(t, 0, c.Commits())
}

// Walking straight at a single wall on a 10x10 world stops short of it; a
// sideways step from the blocked position is free
func TestWalkIntoSingleWall(t *testing.T) {
	const (
		n      = 10
		radius = 40.0
		depth  = 3.0
	)
	g, err := cube.NewGrid(n, radius, depth)
	require.NoError(t, err)
	require.NoError(t, g.Set(cube.Front, 5, 5, cube.Wall))

	anchor := mgl64.Vec3{0, -radius + 1.5, 0}
	engine := collision.NewEngine(g, anchor, collision.Options{Threshold: 2.5})
	c := NewController(engine, testConfig)

	// Face the wall from the identity orientation
	wall := g.CellPoint(cube.Front, 5, 5, collision.ProbeRadius(g))
	c.Look(math.Atan2(wall[0], -wall[2]), 0)

	var blocked Result
	var before frame.Frame
	for i := 0; i < 240; i++ {
		before = c.Frame()
		res := c.Move(Forward)
		if res.State == RolledBack {
			blocked = res
			break
		}
	}
	require.Equal(t, RolledBack, blocked.State, "never reached the wall")
	assert.Greater(t, c.Commits(), 0)
	assert.True(t, c.Frame().Equal(before))
	assert.True(t, engine.WouldCollide(before.Apply(blocked.Axis, blocked.Angle)))
	assert.False(t, engine.WouldCollide(c.Frame()))

	res := c.Move(StrafeRight)
	assert.Equal(t, Committed, res.State)
	assert.False(t, c.Frame().Equal(before))
}

func TestDirectionAndStateNames(t *testing.T) {
	assert.Equal(t, "strafe_left", StrafeLeft.String())
	assert.Equal(t, "rolled_back", RolledBack.String())
	assert.Equal(t, "Direction(9)", Direction(9).String())
}
