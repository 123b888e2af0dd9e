package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cubeworld/parameter"
)

// worldUp points from the observer at the south pole toward the centre
var worldUp = mgl64.Vec3{0, 1, 0}

// Camera projects world points into a character viewport
type Camera struct {
	viewProj mgl64.Mat4
	width    int
	height   int
}

// NewCamera looks from eye along look. Cell aspect compensates for
// terminal cells being taller than wide.
func NewCamera(eye, look mgl64.Vec3, width, height int) Camera {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / (float64(height) * parameter.CellAspect)
	}
	view := mgl64.LookAtV(eye, eye.Add(look), worldUp)
	proj := mgl64.Perspective(mgl64.DegToRad(parameter.FieldOfView), aspect, parameter.NearPlane, parameter.FarPlane)
	return Camera{viewProj: proj.Mul4(view), width: width, height: height}
}

// Project returns the viewport cell and eye depth of p, or false when p is
// behind the near plane, beyond the far plane, or off screen
func (c Camera) Project(p mgl64.Vec3) (x, y int, depth float64, ok bool) {
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	w := clip[3]
	if w < parameter.NearPlane || w > parameter.FarPlane {
		return 0, 0, 0, false
	}
	nx, ny := clip[0]/w, clip[1]/w
	if nx < -1 || nx >= 1 || ny <= -1 || ny > 1 {
		return 0, 0, 0, false
	}
	x = int((nx + 1) / 2 * float64(c.width))
	y = int((1 - ny) / 2 * float64(c.height))
	return x, y, w, true
}
