// Package font turns font files into [glyphregion.FontProvider] values.
//
// [SFNT] reads TrueType and CFF outlines with golang.org/x/image/font/sfnt.
// [GoText] reads the same tables with github.com/go-text/typesetting.
// Either one can be wrapped in [Cached] to memoize lookups when the same
// characters are built repeatedly.
//
// Providers report outlines in font units, Y up, and re-encode the font's
// absolute path commands as chained relative deltas with [EncodeContours].
//
//	face, err := font.ParseSFNT(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b, err := glyphregion.NewBuilder(face, 'R')
package font
