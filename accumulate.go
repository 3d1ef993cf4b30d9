package glyphregion

import "math"

// Extent is the vertical range covered by the sampled points of a glyph.
type Extent struct {
	YMin, YMax float64

	// Empty is set when no point was sampled.
	Empty bool
}

// Span returns YMax-YMin, or 0 for an empty extent.
func (e Extent) Span() float64 {
	if e.Empty {
		return 0
	}
	return e.YMax - e.YMin
}

func (e *Extent) include(p Point) {
	if e.Empty {
		e.YMin, e.YMax, e.Empty = p.Y, p.Y, false
		return
	}
	e.YMin = math.Min(e.YMin, p.Y)
	e.YMax = math.Max(e.YMax, p.Y)
}

// Accumulate flattens every contour of g and returns one point sequence per
// contour along with the vertical extent of all samples.
//
// The pen starts at the origin and is carried from one contour to the next:
// each contour starts at the previous contour's final pen plus its own
// Offset.
func Accumulate(g *Glyph, resolution int, snap bool) ([][]Point, Extent) {
	ext := Extent{Empty: true}
	contours := make([][]Point, 0, len(g.Contours))
	var pen Point
	for _, c := range g.Contours {
		pen = pen.Add(c.Offset)
		var pts []Point
		pts, pen = FlattenContour(c.Segments, pen, resolution, snap)
		for _, p := range pts {
			ext.include(p)
		}
		contours = append(contours, pts)
	}
	return contours, ext
}
