package font

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/glyphregion"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var sfntOps = map[sfnt.SegmentOp]CommandOp{
	sfnt.SegmentOpMoveTo: MoveTo,
	sfnt.SegmentOpLineTo: LineTo,
	sfnt.SegmentOpQuadTo: QuadTo,
	sfnt.SegmentOpCubeTo: CubeTo,
}

// SFNT provides glyphs from a TrueType or OpenType font parsed with
// golang.org/x/image/font/sfnt.
//
// SFNT is safe for concurrent use: every lookup uses its own sfnt.Buffer.
type SFNT struct {
	font *sfnt.Font

	// ppem is the size at which sfnt reports coordinates in font units.
	ppem fixed.Int26_6
}

// ParseSFNT parses font data (TTF or OTF).
func ParseSFNT(data []byte) (*SFNT, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return NewSFNT(f), nil
}

// NewSFNT wraps an already parsed font.
func NewSFNT(f *sfnt.Font) *SFNT {
	return &SFNT{
		font: f,
		ppem: fixed.I(int(f.UnitsPerEm())),
	}
}

// UnitsPerEm returns the units per em for the font.
func (s *SFNT) UnitsPerEm() int {
	return int(s.font.UnitsPerEm())
}

// Glyph implements glyphregion.FontProvider.
func (s *SFNT) Glyph(r rune) (*glyphregion.Glyph, bool, error) {
	var buf sfnt.Buffer

	gid, err := s.font.GlyphIndex(&buf, r)
	if err != nil {
		return nil, false, fmt.Errorf("font: glyph index for %q: %w", r, err)
	}
	// Glyph 0 is .notdef, which sfnt reports for unmapped runes.
	if gid == 0 {
		glyphregion.Logger().Debug("font: rune not mapped", slog.String("rune", string(r)))
		return nil, false, nil
	}

	segments, err := s.font.LoadGlyph(&buf, gid, s.ppem, nil)
	if err != nil {
		// Color glyphs (COLR, sbix) fail here.
		return nil, false, fmt.Errorf("font: load glyph %d: %w", gid, err)
	}
	cmds := make([]Command, 0, len(segments))
	for _, seg := range segments {
		op, ok := sfntOps[seg.Op]
		if !ok {
			continue
		}
		c := Command{Op: op}
		for i := range op.points() {
			c.Pts[i] = fixedPointToPoint(seg.Args[i])
		}
		cmds = append(cmds, c)
	}

	// No hinting for outline extraction.
	bounds, advance, err := s.font.GlyphBounds(&buf, gid, s.ppem, xfont.HintingNone)
	if err != nil {
		return nil, false, fmt.Errorf("font: glyph bounds %d: %w", gid, err)
	}

	return &glyphregion.Glyph{
		Contours: EncodeContours(cmds),
		Advance:  fixedToFloat64(advance),
		// sfnt's Y axis points down.
		Bounds: glyphregion.Rect{
			X0: fixedToFloat64(bounds.Min.X),
			Y0: -fixedToFloat64(bounds.Max.Y),
			X1: fixedToFloat64(bounds.Max.X),
			Y1: -fixedToFloat64(bounds.Min.Y),
		},
	}, true, nil
}

// fixedPointToPoint converts a Y-down fixed.Point26_6 to a Y-up Point.
func fixedPointToPoint(p fixed.Point26_6) glyphregion.Point {
	return glyphregion.Point{
		X: fixedToFloat64(p.X),
		Y: -fixedToFloat64(p.Y),
	}
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
