package glyphregion

// Rect is an axis-aligned box in font units with (X0, Y0) the lower-left
// and (X1, Y1) the upper-right corner.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the horizontal extent of the box.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the box.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Contour is one closed sub-path of a glyph outline.
//
// Offset is the leading moveto delta. It is applied to the pen position
// left over from the previous contour, not to the origin.
type Contour struct {
	Offset   Point
	Segments []Segment
}

// Glyph is a decoded glyph outline as supplied by a [FontProvider].
// Coordinates are in font units with Y increasing up. A Glyph is read-only
// for the duration of a build.
type Glyph struct {
	Contours []Contour

	// Advance is the horizontal advance width.
	Advance float64

	// Bounds is the glyph bounding box as recorded by the font.
	Bounds Rect
}

// IsEmpty returns true if the glyph has no contours (e.g. space).
func (g *Glyph) IsEmpty() bool {
	return len(g.Contours) == 0
}

// SegmentCount returns the total number of segments in all contours.
func (g *Glyph) SegmentCount() int {
	n := 0
	for _, c := range g.Contours {
		n += len(c.Segments)
	}
	return n
}

// FontProvider supplies glyph outlines for characters.
//
// Glyph returns ok=false when the character is not mapped by the font.
// A non-nil error reports a failure to read the font itself.
type FontProvider interface {
	Glyph(r rune) (g *Glyph, ok bool, err error)
}
