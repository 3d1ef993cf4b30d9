package glyphregion

// Winding is the traversal direction of a closed polygon in a Y-up
// coordinate system.
type Winding uint8

const (
	// CounterClockwise polygons (positive area) are exteriors.
	CounterClockwise Winding = iota

	// Clockwise polygons (negative area) are holes.
	Clockwise
)

// String returns a string representation of the winding.
func (w Winding) String() string {
	switch w {
	case CounterClockwise:
		return "CounterClockwise"
	case Clockwise:
		return "Clockwise"
	default:
		return "Unknown"
	}
}

// Polygon is a closed boundary. The edge from the last point back to the
// first is implicit.
type Polygon []Point

// SignedArea returns the area enclosed by the polygon using the shoelace
// formula. Positive for counter-clockwise polygons, negative for
// clockwise ones.
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	var area float64
	prev := p[len(p)-1]
	for _, pt := range p {
		area += prev.Cross(pt)
		prev = pt
	}
	return area / 2
}

// Winding classifies the polygon by the sign of its area. Degenerate
// polygons with zero area count as counter-clockwise.
func (p Polygon) Winding() Winding {
	if p.SignedArea() < 0 {
		return Clockwise
	}
	return CounterClockwise
}

// Reversed returns a copy of the polygon with the point order reversed.
func (p Polygon) Reversed() Polygon {
	r := make(Polygon, len(p))
	for i, pt := range p {
		r[len(p)-1-i] = pt
	}
	return r
}

// Bounds returns the bounding box of the polygon. It returns the zero
// Rect for an empty polygon.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{X0: p[0].X, Y0: p[0].Y, X1: p[0].X, Y1: p[0].Y}
	for _, pt := range p[1:] {
		r.X0 = min(r.X0, pt.X)
		r.Y0 = min(r.Y0, pt.Y)
		r.X1 = max(r.X1, pt.X)
		r.Y1 = max(r.Y1, pt.Y)
	}
	return r
}

// Contains reports whether pt lies inside the polygon using the non-zero
// winding rule. Points exactly on an edge may report either result.
func (p Polygon) Contains(pt Point) bool {
	if len(p) < 3 {
		return false
	}
	winding := 0
	prev := p[len(p)-1]
	for _, cur := range p {
		winding += lineWinding(prev, cur, pt)
		prev = cur
	}
	return winding != 0
}

// lineWinding returns the winding contribution of edge p0->p1 for a
// rightward ray from pt.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y {
		if p1.Y > pt.Y && isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p1.Y <= pt.Y && isLeft(p0, p1, pt) < 0 {
		return -1
	}
	return 0
}

// isLeft returns >0 if pt is left of the line p0->p1, <0 if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return p1.Sub(p0).Cross(pt.Sub(p0))
}
