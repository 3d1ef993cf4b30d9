package font

import "github.com/gogpu/glyphregion"

// CommandOp selects what a Command draws.
type CommandOp uint8

const (
	MoveTo CommandOp = iota // start a contour at Pts[0]
	LineTo                  // straight edge to Pts[0]
	QuadTo                  // control Pts[0], end Pts[1]
	CubeTo                  // controls Pts[0] and Pts[1], end Pts[2]
)

// String returns the SVG path letter for op.
func (op CommandOp) String() string {
	if int(op) < len(commandLetters) {
		return commandLetters[op : op+1]
	}
	return "?"
}

const commandLetters = "MLQC"

// points is the number of Pts entries op uses.
func (op CommandOp) points() int {
	switch op {
	case QuadTo:
		return 2
	case CubeTo:
		return 3
	default:
		return 1
	}
}

// Command is one absolute path command as read from a font, in font
// units with Y up. Unused Pts entries are zero.
type Command struct {
	Op  CommandOp
	Pts [3]glyphregion.Point
}

// EncodeContours converts absolute path commands into contours of chained
// relative segments.
//
// The pen is never reset: a contour's Offset is measured from the end of
// the previous contour (from the origin for the first one). A MoveTo that
// is not followed by any drawing command produces no contour, and drawing
// commands before the first MoveTo start a contour at the current pen.
func EncodeContours(cmds []Command) []glyphregion.Contour {
	var (
		contours []glyphregion.Contour
		cur      *glyphregion.Contour
		pen      glyphregion.Point
		start    glyphregion.Point
	)
	open := func() {
		if cur != nil {
			return
		}
		contours = append(contours, glyphregion.Contour{Offset: start.Sub(pen)})
		cur = &contours[len(contours)-1]
		pen = start
	}
	for _, c := range cmds {
		p := c.Pts
		switch c.Op {
		case MoveTo:
			cur = nil
			start = p[0]
		case LineTo:
			open()
			cur.Segments = append(cur.Segments, glyphregion.Linear(p[0].Sub(pen)))
			pen = p[0]
		case QuadTo:
			open()
			cur.Segments = append(cur.Segments, glyphregion.Quadratic(
				p[0].Sub(pen),
				p[1].Sub(p[0]),
			))
			pen = p[1]
		case CubeTo:
			open()
			cur.Segments = append(cur.Segments, glyphregion.Cubic(
				p[0].Sub(pen),
				p[1].Sub(p[0]),
				p[2].Sub(p[1]),
			))
			pen = p[2]
		}
	}
	return contours
}
