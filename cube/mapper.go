package cube

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// embed places the signed patch coordinate (x, y) ∈ [-1,1]² on the unit cube
// face, along the face's fixed outward axis
//
//	Front  +Z (x, y, 1)     Back  -Z (-x, y, -1)
//	Right  +X (1, y, -x)    Left  -X (-1, y, x)
//	Top    +Y (x, 1, -y)    Bottom -Y (x, -1, y)
func embed(f Face, x, y float64) mgl64.Vec3 {
	switch f {
	case Front:
		return mgl64.Vec3{x, y, 1}
	case Back:
		return mgl64.Vec3{-x, y, -1}
	case Right:
		return mgl64.Vec3{1, y, -x}
	case Left:
		return mgl64.Vec3{-1, y, x}
	case Top:
		return mgl64.Vec3{x, 1, -y}
	case Bottom:
		return mgl64.Vec3{x, -1, y}
	}
	return mgl64.Vec3{}
}

// Axis returns the outward unit normal of a face
func Axis(f Face) mgl64.Vec3 {
	return embed(f, 0, 0)
}

// ToSpherePoint maps face-local (u, v) ∈ [0,1]² to a point on the sphere of
// the given radius. u runs with grid columns, v with grid rows.
func ToSpherePoint(f Face, u, v, radius float64) mgl64.Vec3 {
	p := embed(f, (u-0.5)*2, (v-0.5)*2)
	l := p.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return p.Mul(radius / l)
}

// FromSpherePoint inverts ToSpherePoint: it returns the face whose patch the
// direction of p passes through and the (u, v) within that face
// ok is false for the zero vector
func FromSpherePoint(p mgl64.Vec3) (f Face, u, v float64, ok bool) {
	ax, ay, az := math.Abs(p[0]), math.Abs(p[1]), math.Abs(p[2])

	var x, y float64
	switch {
	case ax == 0 && ay == 0 && az == 0:
		return 0, 0, 0, false
	case az >= ax && az >= ay:
		s := 1 / az
		if p[2] > 0 {
			f, x, y = Front, p[0]*s, p[1]*s
		} else {
			f, x, y = Back, -p[0]*s, p[1]*s
		}
	case ax >= ay:
		s := 1 / ax
		if p[0] > 0 {
			f, x, y = Right, -p[2]*s, p[1]*s
		} else {
			f, x, y = Left, p[2]*s, p[1]*s
		}
	default:
		s := 1 / ay
		if p[1] > 0 {
			f, x, y = Top, p[0]*s, -p[2]*s
		} else {
			f, x, y = Bottom, p[0]*s, p[2]*s
		}
	}
	return f, (x + 1) / 2, (y + 1) / 2, true
}

// CellUV returns the face-local center of a cell
func CellUV(n, row, col int) (u, v float64) {
	return (float64(col) + 0.5) / float64(n), (float64(row) + 0.5) / float64(n)
}

// CellPoint returns the center of a cell projected at the given radius
func (g *Grid) CellPoint(f Face, row, col int, radius float64) mgl64.Vec3 {
	u, v := CellUV(g.n, row, col)
	return ToSpherePoint(f, u, v, radius)
}

// EdgeMidpoint returns the midpoint of the cell edge facing e, projected at
// the given radius. On a face boundary this is the shared seam point.
func (g *Grid) EdgeMidpoint(f Face, row, col int, e Edge, radius float64) mgl64.Vec3 {
	u, v := CellUV(g.n, row, col)
	half := 0.5 / float64(g.n)
	switch e {
	case North:
		v -= half
	case South:
		v += half
	case West:
		u -= half
	case East:
		u += half
	}
	return ToSpherePoint(f, u, v, radius)
}

// CellOf returns the cell whose patch the direction of p passes through
func (g *Grid) CellOf(p mgl64.Vec3) (f Face, row, col int, ok bool) {
	f, u, v, ok := FromSpherePoint(p)
	if !ok {
		return 0, 0, 0, false
	}
	row = clamp(int(math.Floor(v*float64(g.n))), g.n)
	col = clamp(int(math.Floor(u*float64(g.n))), g.n)
	return f, row, col, true
}
