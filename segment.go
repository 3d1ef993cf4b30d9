package glyphregion

// SegmentOp is the kind of a glyph outline segment.
type SegmentOp uint8

const (
	// SegmentLinear is a straight line; Args[0] is the endpoint delta.
	SegmentLinear SegmentOp = iota

	// SegmentQuadratic is a quadratic Bezier; Args[0] is the control
	// delta and Args[1] the endpoint delta relative to the control point.
	SegmentQuadratic

	// SegmentCubic is a cubic Bezier; each of Args[0..2] is relative to
	// the point before it.
	SegmentCubic
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentLinear:
		return "Linear"
	case SegmentQuadratic:
		return "Quadratic"
	case SegmentCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// Segment is one piece of a contour, encoded as chained deltas.
//
// The first delta is relative to the pen position. Every following delta
// is relative to the point produced by the previous one, so for a
// quadratic the endpoint is control + Args[1], not pen + Args[1].
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Linear returns a line segment ending at pen+d.
func Linear(d Point) Segment {
	return Segment{Op: SegmentLinear, Args: [3]Point{d}}
}

// Quadratic returns a quadratic segment with control delta d1 and
// endpoint delta d2 (relative to the control point).
func Quadratic(d1, d2 Point) Segment {
	return Segment{Op: SegmentQuadratic, Args: [3]Point{d1, d2}}
}

// Cubic returns a cubic segment with chained deltas d1, d2, d3.
func Cubic(d1, d2, d3 Point) Segment {
	return Segment{Op: SegmentCubic, Args: [3]Point{d1, d2, d3}}
}

// Decode resolves the segment against pen and returns the absolute curve
// together with the new pen position, which is the curve's endpoint.
func (s Segment) Decode(pen Point) (Curve, Point) {
	switch s.Op {
	case SegmentQuadratic:
		ctrl := pen.Add(s.Args[0])
		end := ctrl.Add(s.Args[1])
		return QuadBez{P0: pen, P1: ctrl, P2: end}, end
	case SegmentCubic:
		c1 := pen.Add(s.Args[0])
		c2 := c1.Add(s.Args[1])
		end := c2.Add(s.Args[2])
		return CubicBez{P0: pen, P1: c1, P2: c2, P3: end}, end
	default:
		end := pen.Add(s.Args[0])
		return Line{P0: pen, P1: end}, end
	}
}
