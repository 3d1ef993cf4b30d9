package glyphregion

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/runenames"
)

// Sentinel errors for glyphregion package.
var (
	// ErrGlyphNotFound is returned when the font does not map a character.
	ErrGlyphNotFound = errors.New("glyphregion: character not in font")

	// ErrTopology is returned when a hole contour appears before any
	// exterior contour it could belong to.
	ErrTopology = errors.New("glyphregion: hole without exterior")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("glyphregion: invalid config")

	// ErrNilGlyph is returned by Build for a nil glyph and by a zero
	// Builder.
	ErrNilGlyph = errors.New("glyphregion: nil glyph")
)

// LookupError is returned by NewBuilder when the font has no glyph for
// the requested character.
type LookupError struct {
	Rune rune
}

func (e *LookupError) Error() string {
	name := runenames.Name(e.Rune)
	if name == "" {
		return fmt.Sprintf("glyphregion: character not in font: %q (%U)", e.Rune, e.Rune)
	}
	return fmt.Sprintf("glyphregion: character not in font: %q (%U %s)", e.Rune, e.Rune, name)
}

// Unwrap returns ErrGlyphNotFound.
func (e *LookupError) Unwrap() error {
	return ErrGlyphNotFound
}

// TopologyError reports a clockwise contour that was found while no
// exterior region existed yet.
type TopologyError struct {
	// Contour is the index of the offending contour within the glyph.
	Contour int
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("glyphregion: contour %d is a hole but no exterior precedes it", e.Contour)
}

// Unwrap returns ErrTopology.
func (e *TopologyError) Unwrap() error {
	return ErrTopology
}
