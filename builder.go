package glyphregion

import (
	"context"
	"fmt"
	"log/slog"
)

// Builder turns one character of a font into regions.
//
// A Builder is a value: every configuration method returns a modified
// copy and leaves the receiver unchanged, so a base Builder can be shared
// and specialised freely.
//
//	b, err := glyphregion.NewBuilder(face, 'B')
//	if err != nil {
//		return err
//	}
//	regions, err := b.AlignCenter().AlignMiddle().Height(10).Build()
type Builder struct {
	r     rune
	glyph *Glyph
	cfg   Config
}

// NewBuilder looks up r in p and returns a Builder configured with
// DefaultConfig and opts. If the font has no glyph for r the returned
// error is a *LookupError and no Builder is produced.
func NewBuilder(p FontProvider, r rune, opts ...Option) (Builder, error) {
	g, ok, err := p.Glyph(r)
	if err != nil {
		return Builder{}, fmt.Errorf("load glyph %q: %w", r, err)
	}
	if !ok || g == nil {
		return Builder{}, &LookupError{Rune: r}
	}
	return Builder{r: r, glyph: g, cfg: NewConfig(opts...)}, nil
}

// With returns a copy of b with opts applied.
func (b Builder) With(opts ...Option) Builder {
	for _, opt := range opts {
		if opt != nil {
			opt(&b.cfg)
		}
	}
	return b
}

// Rotate sets the rotation about the glyph origin in degrees.
func (b Builder) Rotate(degrees float64) Builder {
	return b.With(WithRotation(degrees))
}

// Resolution sets the number of samples per curve.
func (b Builder) Resolution(n int) Builder {
	return b.With(WithResolution(n))
}

// AlignLeft aligns the glyph origin with x = 0.
func (b Builder) AlignLeft() Builder {
	return b.With(WithHorizontalAlignment(AlignLeft))
}

// AlignCenter aligns the middle of the advance width with x = 0.
func (b Builder) AlignCenter() Builder {
	return b.With(WithHorizontalAlignment(AlignCenter))
}

// AlignRight aligns the end of the advance width with x = 0.
func (b Builder) AlignRight() Builder {
	return b.With(WithHorizontalAlignment(AlignRight))
}

// AlignBottom applies no vertical shift.
func (b Builder) AlignBottom() Builder {
	return b.With(WithVerticalAlignment(AlignBottom))
}

// AlignMiddle shifts the glyph down by half its bounding box height.
func (b Builder) AlignMiddle() Builder {
	return b.With(WithVerticalAlignment(AlignMiddle))
}

// AlignTop shifts the glyph down by its bounding box height.
func (b Builder) AlignTop() Builder {
	return b.With(WithVerticalAlignment(AlignTop))
}

// Height sets the target height.
func (b Builder) Height(h float64) Builder {
	return b.With(WithHeight(h))
}

// TranslateX sets the horizontal offset added after scaling.
func (b Builder) TranslateX(x float64) Builder {
	b.cfg.Translation.X = x
	return b
}

// TranslateY sets the vertical offset added after scaling.
func (b Builder) TranslateY(y float64) Builder {
	b.cfg.Translation.Y = y
	return b
}

// Translate sets both offsets added after scaling.
func (b Builder) Translate(x, y float64) Builder {
	return b.With(WithTranslation(x, y))
}

// SnapToGrid enables or disables rounding samples to whole font units.
func (b Builder) SnapToGrid(snap bool) Builder {
	return b.With(WithSnapToGrid(snap))
}

// BaselineScale enables or disables scaling by Height/YMax.
func (b Builder) BaselineScale(enabled bool) Builder {
	return b.With(WithBaselineScale(enabled))
}

// Rune returns the character the Builder was created for.
func (b Builder) Rune() rune {
	return b.r
}

// Glyph returns the glyph outline. It must not be modified.
func (b Builder) Glyph() *Glyph {
	return b.glyph
}

// Config returns the current configuration.
func (b Builder) Config() Config {
	return b.cfg
}

// Build produces the regions of the glyph. The caller owns the result.
func (b Builder) Build() ([]Region, error) {
	regions, err := Build(b.glyph, b.cfg)
	if err != nil {
		return nil, fmt.Errorf("build %q: %w", b.r, err)
	}
	return regions, nil
}

// Build runs the whole pipeline on g: flatten every contour, normalize the
// points with cfg, then assemble regions. g is not modified.
func Build(g *Glyph, cfg Config) ([]Region, error) {
	if g == nil {
		return nil, ErrNilGlyph
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	contours, ext := Accumulate(g, cfg.Resolution, cfg.SnapToGrid)
	regions, err := Assemble(Normalize(contours, g, ext, cfg))
	if err != nil {
		return nil, err
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		holes := 0
		for _, r := range regions {
			holes += len(r.Holes)
		}
		l.Debug("glyphregion: built glyph",
			slog.Int("contours", len(g.Contours)),
			slog.Int("segments", g.SegmentCount()),
			slog.Int("regions", len(regions)),
			slog.Int("holes", holes),
			slog.Float64("ymin", ext.YMin),
			slog.Float64("ymax", ext.YMax))
	}
	return regions, nil
}
