package font

import "errors"

var (
	// ErrEmptyFontData is returned by the parse functions for a nil or
	// zero-length font file.
	ErrEmptyFontData = errors.New("font: no font data")

	// ErrUnsupportedGlyph is returned for glyphs stored as bitmaps or SVG
	// documents instead of vector outlines.
	ErrUnsupportedGlyph = errors.New("font: glyph has no vector outline")
)
