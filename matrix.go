package glyphregion

import "math"

// Affine is a 2D affine map applied to sampled outline points:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Maps are built in application order: each method returns a map that
// performs the receiver first and the new operation after it.
//
//	t := Identity().Rotate(90).Shift(-5, 0).Scale(0.1)
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the map that leaves every point in place.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Rotate follows a with a counter-clockwise rotation about the origin.
func (a Affine) Rotate(degrees float64) Affine {
	sin, cos := sincosDegrees(degrees)
	return a.then(Affine{A: cos, B: -sin, D: sin, E: cos})
}

// Shift follows a with a translation by (dx, dy).
func (a Affine) Shift(dx, dy float64) Affine {
	return a.then(Affine{A: 1, C: dx, E: 1, F: dy})
}

// Scale follows a with a uniform scale about the origin.
func (a Affine) Scale(s float64) Affine {
	return a.then(Affine{A: s, E: s})
}

// then returns the map that applies a and then n.
func (a Affine) then(n Affine) Affine {
	return Affine{
		A: n.A*a.A + n.B*a.D,
		B: n.A*a.B + n.B*a.E,
		C: n.A*a.C + n.B*a.F + n.C,
		D: n.D*a.A + n.E*a.D,
		E: n.D*a.B + n.E*a.E,
		F: n.D*a.C + n.E*a.F + n.F,
	}
}

// Apply maps a single point.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a.A*p.X + a.B*p.Y + a.C,
		Y: a.D*p.X + a.E*p.Y + a.F,
	}
}

// ApplyAll maps pts into a new slice.
func (a Affine) ApplyAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = a.Apply(p)
	}
	return out
}

// IsIdentity reports whether a leaves every point in place.
func (a Affine) IsIdentity() bool {
	return a == Identity()
}

// sincosDegrees is math.Sincos for an angle in degrees. Quarter turns are
// exact so that rotated grid points stay on the grid.
func sincosDegrees(degrees float64) (sin, cos float64) {
	if q := degrees / 90; q == math.Trunc(q) && math.Abs(q) < 1<<53 {
		switch int64(math.Mod(q, 4)+4) % 4 {
		case 0:
			return 0, 1
		case 1:
			return 1, 0
		case 2:
			return 0, -1
		default:
			return -1, 0
		}
	}
	return math.Sincos(degrees * math.Pi / 180)
}
