// Package frame holds the accumulated world orientation relative to the
// fixed observer.
//
// A Frame is an immutable value. Apply composes a world-space rotation on the
// left of the current transform, so rotations derived from the observer's
// look direction can be chained without Euler angles. Committing a move
// replaces the current Frame; rejecting one discards the candidate.
package frame

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Frame is a 4x4 affine transform whose upper 3x3 block is a rotation
type Frame struct {
	m mgl64.Mat4
}

// Identity returns the unrotated world state
func Identity() Frame {
	return Frame{m: mgl64.Ident4()}
}

// FromMatrix wraps an existing matrix
func FromMatrix(m mgl64.Mat4) Frame {
	return Frame{m: m}
}

// Matrix returns the transform in column-major order
func (f Frame) Matrix() mgl64.Mat4 { return f.m }

// Apply returns Rotate(axis, angleDegrees) × f
// A zero axis or zero angle returns f unchanged
func (f Frame) Apply(axis mgl64.Vec3, angleDegrees float64) Frame {
	l := axis.Len()
	if l == 0 || angleDegrees == 0 {
		return f
	}
	r := mgl64.HomogRotate3D(mgl64.DegToRad(angleDegrees), axis.Mul(1/l))
	return Frame{m: r.Mul4(f.m)}
}

// TransformPoint maps a world-local point into observer space
func (f Frame) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return f.m.Mul4x1(p.Vec4(1)).Vec3()
}

// InverseTransformPoint maps an observer-space point back into world-local
// coordinates, treating the rotation block as orthonormal
func (f Frame) InverseTransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	t := mgl64.Vec3{f.m[12], f.m[13], f.m[14]}
	return f.m.Mat3().Transpose().Mul3x1(p.Sub(t))
}

// Basis returns the images of the world X, Y and Z axes
func (f Frame) Basis() (x, y, z mgl64.Vec3) {
	return f.m.Col(0).Vec3(), f.m.Col(1).Vec3(), f.m.Col(2).Vec3()
}

// OrthonormalityError is the largest deviation of the basis from unit length
// and mutual perpendicularity
func (f Frame) OrthonormalityError() float64 {
	x, y, z := f.Basis()
	worst := 0.0
	for _, d := range []float64{
		x.Len() - 1, y.Len() - 1, z.Len() - 1,
		x.Dot(y), y.Dot(z), z.Dot(x),
	} {
		worst = math.Max(worst, math.Abs(d))
	}
	return worst
}

// Renormalize re-orthonormalizes the rotation block with Gram-Schmidt,
// keeping the X axis direction and the translation
func (f Frame) Renormalize() Frame {
	x, y, _ := f.Basis()
	x = x.Normalize()
	y = y.Sub(x.Mul(x.Dot(y))).Normalize()
	z := x.Cross(y)

	m := f.m
	m.SetCol(0, x.Vec4(0))
	m.SetCol(1, y.Vec4(0))
	m.SetCol(2, z.Vec4(0))
	return Frame{m: m}
}

// Equal reports bitwise equality of the two transforms
func (f Frame) Equal(g Frame) bool {
	for i := range f.m {
		if math.Float64bits(f.m[i]) != math.Float64bits(g.m[i]) {
			return false
		}
	}
	return true
}

// Inverse returns the inverse transform, treating the rotation block as
// orthonormal
func (f Frame) Inverse() Frame {
	r := f.m.Mat3().Transpose()
	t := r.Mul3x1(mgl64.Vec3{f.m[12], f.m[13], f.m[14]}).Mul(-1)

	m := r.Mat4()
	m[12], m[13], m[14] = t[0], t[1], t[2]
	return Frame{m: m}
}
