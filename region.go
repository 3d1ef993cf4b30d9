package glyphregion

import "log/slog"

// Region is a filled planar area: an exterior boundary with zero or more
// holes inside it.
type Region struct {
	Exterior Polygon
	Holes    []Polygon
}

// Bounds returns the bounding box of the exterior.
func (r Region) Bounds() Rect {
	return r.Exterior.Bounds()
}

// Contains reports whether pt is inside the exterior and outside every
// hole.
func (r Region) Contains(pt Point) bool {
	if !r.Exterior.Contains(pt) {
		return false
	}
	for _, h := range r.Holes {
		if h.Contains(pt) {
			return false
		}
	}
	return true
}

// withHole returns a copy of r with h appended to its holes.
func (r Region) withHole(h Polygon) Region {
	holes := make([]Polygon, len(r.Holes), len(r.Holes)+1)
	copy(holes, r.Holes)
	return Region{Exterior: r.Exterior, Holes: append(holes, h)}
}

// regionList is the ordered output of the assembler. Holes always attach
// to the element at the front.
type regionList struct {
	items []Region
}

func (l *regionList) pushBack(r Region) {
	l.items = append(l.items, r)
}

func (l *regionList) popFront() (Region, bool) {
	if len(l.items) == 0 {
		return Region{}, false
	}
	r := l.items[0]
	l.items = l.items[1:]
	return r, true
}

func (l *regionList) pushFront(r Region) {
	l.items = append(l.items, Region{})
	copy(l.items[1:], l.items)
	l.items[0] = r
}

// Assemble turns transformed contour point sequences into regions.
//
// Every sequence is reversed and closed into a polygon. Counter-clockwise
// polygons are appended as new exteriors. A clockwise polygon becomes a
// hole of the region currently at the front of the list, whichever
// exterior that is; the contour order supplied by the font is trusted to
// put exteriors before their holes. A clockwise polygon with no region to
// attach to yields a *TopologyError.
//
// Sequences with fewer than three points cannot bound an area and are
// skipped.
func Assemble(contours [][]Point) ([]Region, error) {
	var list regionList
	for i, pts := range contours {
		if len(pts) < 3 {
			Logger().Debug("glyphregion: skipping degenerate contour",
				slog.Int("contour", i),
				slog.Int("points", len(pts)))
			continue
		}
		poly := Polygon(pts).Reversed()
		if poly.Winding() != Clockwise {
			list.pushBack(Region{Exterior: poly})
			continue
		}
		first, ok := list.popFront()
		if !ok {
			return nil, &TopologyError{Contour: i}
		}
		list.pushFront(first.withHole(poly))
	}
	return list.items, nil
}
