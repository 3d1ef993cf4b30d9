package glyphregion

import (
	"log/slog"
	"slices"
)

// horizontalShift returns the x offset subtracted for alignment h.
func horizontalShift(h HorizontalAlignment, advance float64) float64 {
	switch h {
	case AlignCenter:
		return advance / 2
	case AlignRight:
		return advance
	default:
		return 0
	}
}

// verticalShift returns the y offset subtracted for alignment v. It uses
// the font's bounding box, not the sampled extent.
func verticalShift(v VerticalAlignment, bounds Rect) float64 {
	switch v {
	case AlignMiddle:
		return bounds.Height() / 2
	case AlignTop:
		return bounds.Height()
	default:
		return 0
	}
}

// scaleFactor returns the uniform multiplier that maps ext onto height.
// It returns 1 when the extent has no usable span.
func scaleFactor(ext Extent, height float64, baseline bool) float64 {
	if ext.Empty {
		return 1
	}
	span := ext.Span()
	if baseline {
		span = ext.YMax
	}
	m := height / span
	if span <= 0 || !isFinite(m) {
		Logger().Warn("glyphregion: degenerate vertical extent, skipping scale",
			slog.Float64("ymin", ext.YMin),
			slog.Float64("ymax", ext.YMax),
			slog.Bool("baseline", baseline))
		return 1
	}
	return m
}

// NormalizeTransform returns the map applied to every sampled point:
// rotation about the origin, alignment shift, uniform scale, translation.
func NormalizeTransform(g *Glyph, ext Extent, cfg Config) Affine {
	dx := horizontalShift(cfg.Horizontal, g.Advance)
	dy := verticalShift(cfg.Vertical, g.Bounds)
	m := scaleFactor(ext, cfg.Height, cfg.BaselineScale)

	return Identity().
		Rotate(cfg.Rotation).
		Shift(-dx, -dy).
		Scale(m).
		Shift(cfg.Translation.X, cfg.Translation.Y)
}

// Normalize maps every contour through NormalizeTransform into new
// sequences; the input is left untouched.
func Normalize(contours [][]Point, g *Glyph, ext Extent, cfg Config) [][]Point {
	t := NormalizeTransform(g, ext, cfg)
	identity := t.IsIdentity()
	out := make([][]Point, len(contours))
	for i, pts := range contours {
		if identity {
			out[i] = slices.Clone(pts)
			continue
		}
		out[i] = t.ApplyAll(pts)
	}
	return out
}
