// Command glyphsvg builds the regions of one character and writes them as
// an SVG file for inspection.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"unicode/utf8"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphregion"
	"github.com/gogpu/glyphregion/font"
)

func main() {
	var (
		fontPath   = flag.String("font", "", "TrueType/OpenType file (default: Go Regular)")
		provider   = flag.String("provider", "sfnt", "font backend: sfnt or gotext")
		char       = flag.String("char", "R", "character to build")
		height     = flag.Float64("height", 100, "target height")
		rotate     = flag.Float64("rotate", 0, "rotation in degrees")
		resolution = flag.Int("resolution", glyphregion.DefaultResolution, "samples per curve")
		halign     = flag.String("align", "left", "horizontal alignment: left, center or right")
		valign     = flag.String("valign", "bottom", "vertical alignment: bottom, middle or top")
		noSnap     = flag.Bool("nosnap", false, "do not round samples to whole font units")
		output     = flag.String("output", "glyph.svg", "output file")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		glyphregion.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	r, size := utf8.DecodeRuneInString(*char)
	if r == utf8.RuneError || size != len(*char) {
		log.Fatalf("-char must be exactly one character, got %q", *char)
	}

	face, err := loadFace(*fontPath, *provider)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	h, err := parseHorizontal(*halign)
	if err != nil {
		log.Fatal(err)
	}
	v, err := parseVertical(*valign)
	if err != nil {
		log.Fatal(err)
	}

	b, err := glyphregion.NewBuilder(face, r,
		glyphregion.WithAlignment(h, v),
		glyphregion.WithHeight(*height),
		glyphregion.WithRotation(*rotate),
		glyphregion.WithResolution(*resolution),
		glyphregion.WithSnapToGrid(!*noSnap),
	)
	if err != nil {
		log.Fatal(err)
	}
	regions, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := glyphregion.WriteSVG(f, regions); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to write SVG: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%q: %d regions saved to %s\n", r, len(regions), *output)
}

func loadFace(path, provider string) (glyphregion.FontProvider, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}
	switch provider {
	case "sfnt":
		return font.ParseSFNT(data)
	case "gotext":
		return font.ParseGoText(data)
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}

func parseHorizontal(s string) (glyphregion.HorizontalAlignment, error) {
	switch s {
	case "left":
		return glyphregion.AlignLeft, nil
	case "center":
		return glyphregion.AlignCenter, nil
	case "right":
		return glyphregion.AlignRight, nil
	}
	return 0, fmt.Errorf("unknown horizontal alignment %q", s)
}

func parseVertical(s string) (glyphregion.VerticalAlignment, error) {
	switch s {
	case "bottom":
		return glyphregion.AlignBottom, nil
	case "middle":
		return glyphregion.AlignMiddle, nil
	case "top":
		return glyphregion.AlignTop, nil
	}
	return 0, fmt.Errorf("unknown vertical alignment %q", s)
}
