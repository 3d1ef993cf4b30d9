package glyphregion

import "math"

// Point is a position in the glyph plane, Y up. The same type carries
// relative offsets inside a Segment.
type Point struct {
	X, Y float64
}

// Pt returns Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add offsets p by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross is the z component of p × q. Twice the shoelace term for an edge.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Distance is the chord length between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Lerp moves from p toward q by fraction t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Round moves p to the nearest integer grid node, halves away from zero.
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
