package movement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ViewAngles orient the observer's gaze. They never touch the world frame
// and are never subject to collision.
type ViewAngles struct {
	Yaw   float64 // Radians, 0 looks along -Z, increasing toward +X
	Pitch float64 // Radians, positive looks up
}

// Look returns the unit gaze direction
func (v ViewAngles) Look() mgl64.Vec3 {
	cp := math.Cos(v.Pitch)
	return mgl64.Vec3{
		math.Sin(v.Yaw) * cp,
		math.Sin(v.Pitch),
		-math.Cos(v.Yaw) * cp,
	}
}

// Heading returns the gaze direction projected onto the X/Z plane
func (v ViewAngles) Heading() mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(v.Yaw), 0, -math.Cos(v.Yaw)}
}

// Turn returns the angles offset by the given deltas, with pitch clamped to
// ±limit. A non-positive limit disables clamping.
func (v ViewAngles) Turn(dYaw, dPitch, limit float64) ViewAngles {
	v.Yaw += dYaw
	v.Pitch += dPitch
	if limit > 0 {
		v.Pitch = math.Max(-limit, math.Min(limit, v.Pitch))
	}
	return v
}
