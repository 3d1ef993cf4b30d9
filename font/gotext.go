package font

import (
	"bytes"
	"fmt"
	"log/slog"

	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/glyphregion"
)

// GoText provides glyphs from a font parsed with go-text/typesetting.
//
// GoText is safe for concurrent use. It keeps the parsed gotext.Font, which
// is read-only, and creates a lightweight gotext.Face per lookup since a
// Face is NOT safe for concurrent use.
type GoText struct {
	font *gotext.Font
}

// ParseGoText parses font data (TTF or OTF).
func ParseGoText(data []byte) (*GoText, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &GoText{font: face.Font}, nil
}

// UnitsPerEm returns the units per em for the font.
func (g *GoText) UnitsPerEm() int {
	return int(g.font.Upem())
}

// Glyph implements glyphregion.FontProvider.
func (g *GoText) Glyph(r rune) (*glyphregion.Glyph, bool, error) {
	face := gotext.NewFace(g.font)

	gid, ok := face.NominalGlyph(r)
	if !ok {
		glyphregion.Logger().Debug("font: rune not mapped", slog.String("rune", string(r)))
		return nil, false, nil
	}

	var cmds []Command
	switch data := face.GlyphData(gid).(type) {
	case gotext.GlyphOutline:
		cmds = make([]Command, 0, len(data.Segments))
		for _, seg := range data.Segments {
			if c, ok := convertSegment(seg); ok {
				cmds = append(cmds, c)
			}
		}
	case nil:
		// Empty glyph (e.g. space).
	default:
		return nil, false, fmt.Errorf("font: glyph %d (%T): %w", gid, data, ErrUnsupportedGlyph)
	}

	glyph := &glyphregion.Glyph{
		Contours: EncodeContours(cmds),
		Advance:  float64(face.HorizontalAdvance(gid)),
	}
	if ext, ok := face.GlyphExtents(gid); ok {
		// YBearing is the top edge, Height is negative.
		glyph.Bounds = glyphregion.Rect{
			X0: float64(ext.XBearing),
			Y0: float64(ext.YBearing + ext.Height),
			X1: float64(ext.XBearing + ext.Width),
			Y1: float64(ext.YBearing),
		}
	}
	return glyph, true, nil
}

var gotextOps = map[ot.SegmentOp]CommandOp{
	ot.SegmentOpMoveTo: MoveTo,
	ot.SegmentOpLineTo: LineTo,
	ot.SegmentOpQuadTo: QuadTo,
	ot.SegmentOpCubeTo: CubeTo,
}

// convertSegment converts a go-text outline segment. go-text reports
// outlines in font units with Y up, so no axis flip is needed.
func convertSegment(seg ot.Segment) (Command, bool) {
	op, ok := gotextOps[seg.Op]
	if !ok {
		return Command{}, false
	}
	c := Command{Op: op}
	for i := range op.points() {
		a := seg.Args[i]
		c.Pts[i] = glyphregion.Pt(float64(a.X), float64(a.Y))
	}
	return c, true
}
