package glyphregion

// Curve is one decoded outline segment in absolute glyph coordinates.
// Segment.Decode produces a Line, QuadBez or CubicBez.
type Curve interface {
	// Eval returns the point at parameter t in [0, 1].
	Eval(t float64) Point

	Start() Point
	End() Point

	// Degree is 1 for lines, 2 for quadratics and 3 for cubics.
	Degree() int

	// Length is the arc length. Curved segments are measured on the same
	// chord table SampleEuclidean uses to place its points.
	Length() float64
}

// Line runs straight from P0 to P1.
type Line struct {
	P0, P1 Point
}

func (l Line) Eval(t float64) Point { return l.P0.Lerp(l.P1, t) }
func (l Line) Start() Point         { return l.P0 }
func (l Line) End() Point           { return l.P1 }
func (Line) Degree() int            { return 1 }
func (l Line) Length() float64      { return l.P0.Distance(l.P1) }

// QuadBez is a quadratic Bezier from P0 to P2 pulled toward P1. TrueType
// glyf outlines are made of these.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval runs de Casteljau's construction.
func (q QuadBez) Eval(t float64) Point {
	a := q.P0.Lerp(q.P1, t)
	b := q.P1.Lerp(q.P2, t)
	return a.Lerp(b, t)
}

func (q QuadBez) Start() Point    { return q.P0 }
func (q QuadBez) End() Point      { return q.P2 }
func (QuadBez) Degree() int       { return 2 }
func (q QuadBez) Length() float64 { return newArcTable(q).total() }

// CubicBez is a cubic Bezier from P0 to P3 with handles P1 and P2, as used
// by CFF outlines.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval runs de Casteljau's construction.
func (c CubicBez) Eval(t float64) Point {
	a := c.P0.Lerp(c.P1, t)
	b := c.P1.Lerp(c.P2, t)
	d := c.P2.Lerp(c.P3, t)
	ab, bd := a.Lerp(b, t), b.Lerp(d, t)
	return ab.Lerp(bd, t)
}

func (c CubicBez) Start() Point    { return c.P0 }
func (c CubicBez) End() Point      { return c.P3 }
func (CubicBez) Degree() int       { return 3 }
func (c CubicBez) Length() float64 { return newArcTable(c).total() }
