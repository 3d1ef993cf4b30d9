package glyphregion

// Option configures a build.
// Use functional options to customize Builder behavior.
//
// Example:
//
//	// Defaults: left/bottom aligned, height 1
//	b, err := glyphregion.NewBuilder(face, 'a')
//
//	// Centered, 10 units tall
//	b, err := glyphregion.NewBuilder(face, 'a',
//		glyphregion.WithAlignment(glyphregion.AlignCenter, glyphregion.AlignMiddle),
//		glyphregion.WithHeight(10))
type Option func(*Config)

// WithRotation sets the rotation about the glyph origin in degrees.
func WithRotation(degrees float64) Option {
	return func(c *Config) {
		c.Rotation = degrees
	}
}

// WithResolution sets the number of samples per curve.
func WithResolution(n int) Option {
	return func(c *Config) {
		c.Resolution = n
	}
}

// WithAlignment sets both the horizontal and vertical alignment.
func WithAlignment(h HorizontalAlignment, v VerticalAlignment) Option {
	return func(c *Config) {
		c.Horizontal = h
		c.Vertical = v
	}
}

// WithHorizontalAlignment sets the horizontal alignment only.
func WithHorizontalAlignment(h HorizontalAlignment) Option {
	return func(c *Config) {
		c.Horizontal = h
	}
}

// WithVerticalAlignment sets the vertical alignment only.
func WithVerticalAlignment(v VerticalAlignment) Option {
	return func(c *Config) {
		c.Vertical = v
	}
}

// WithHeight sets the target height of the output.
func WithHeight(h float64) Option {
	return func(c *Config) {
		c.Height = h
	}
}

// WithTranslation sets the offset added after scaling.
func WithTranslation(x, y float64) Option {
	return func(c *Config) {
		c.Translation = Pt(x, y)
	}
}

// WithSnapToGrid enables or disables rounding of samples to whole font
// units.
func WithSnapToGrid(snap bool) Option {
	return func(c *Config) {
		c.SnapToGrid = snap
	}
}

// WithBaselineScale makes the scale factor Height/YMax, assuming the glyph
// box starts at the baseline.
func WithBaselineScale(enabled bool) Option {
	return func(c *Config) {
		c.BaselineScale = enabled
	}
}

// NewConfig returns DefaultConfig with opts applied in order.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
