package glyphregion

// FlattenContour decodes segs starting at pen and samples every curve into
// resolution points by arc length. With snap set, samples are rounded to the
// integer grid. A sample equal to any point already in the result is
// skipped, so the returned sequence never repeats a point.
//
// The returned Point is the pen position after the last segment.
func FlattenContour(segs []Segment, pen Point, resolution int, snap bool) ([]Point, Point) {
	var out pointSet
	for _, s := range segs {
		var c Curve
		c, pen = s.Decode(pen)
		for _, p := range SampleEuclidean(c, resolution) {
			if snap {
				p = p.Round()
			}
			out.add(p)
		}
	}
	return out.points, pen
}

// pointSet is an insertion-ordered set of points.
type pointSet struct {
	points []Point
	seen   map[Point]struct{}
}

func (s *pointSet) add(p Point) bool {
	if s.seen == nil {
		s.seen = make(map[Point]struct{})
	}
	if _, ok := s.seen[p]; ok {
		return false
	}
	s.seen[p] = struct{}{}
	s.points = append(s.points, p)
	return true
}
