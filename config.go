package glyphregion

import "fmt"

// HorizontalAlignment selects which vertical line of the glyph's advance
// box is moved onto x = 0.
type HorizontalAlignment uint8

const (
	// AlignLeft keeps the glyph origin at x = 0.
	AlignLeft HorizontalAlignment = iota

	// AlignCenter moves half the advance width onto x = 0.
	AlignCenter

	// AlignRight moves the full advance width onto x = 0.
	AlignRight
)

// String returns a string representation of the alignment.
func (a HorizontalAlignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// VerticalAlignment selects which horizontal line of the glyph's bounding
// box height is moved onto y = 0.
type VerticalAlignment uint8

const (
	// AlignBottom applies no vertical shift.
	AlignBottom VerticalAlignment = iota

	// AlignMiddle shifts down by half the bounding box height.
	AlignMiddle

	// AlignTop shifts down by the full bounding box height.
	AlignTop
)

// String returns a string representation of the alignment.
func (a VerticalAlignment) String() string {
	switch a {
	case AlignBottom:
		return "Bottom"
	case AlignMiddle:
		return "Middle"
	case AlignTop:
		return "Top"
	default:
		return "Unknown"
	}
}

// DefaultResolution is the default number of samples per curve.
const DefaultResolution = 5

// Config holds the parameters of a single build. It is fixed before the
// build starts and never modified by it.
type Config struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment

	// Rotation is applied about the glyph origin, in degrees,
	// counter-clockwise, before any alignment shift. The scale factor comes
	// from the unrotated outline, so a rotated glyph spans Height only when
	// its width and height match.
	Rotation float64

	// Height is the target height of the sampled outline.
	Height float64

	// Translation is added after scaling.
	Translation Point

	// Resolution is the number of samples taken on every curve.
	Resolution int

	// SnapToGrid rounds samples to whole font units before
	// de-duplication.
	SnapToGrid bool

	// BaselineScale scales by Height/YMax instead of
	// Height/(YMax-YMin), treating the baseline as the bottom of the box.
	BaselineScale bool
}

// DefaultConfig returns the configuration used when no option is given:
// left and bottom aligned, height 1, resolution 5, no rotation or
// translation, samples snapped to the grid.
func DefaultConfig() Config {
	return Config{
		Horizontal: AlignLeft,
		Vertical:   AlignBottom,
		Height:     1.0,
		Resolution: DefaultResolution,
		SnapToGrid: true,
	}
}

// Validate reports whether c can be used for a build.
func (c Config) Validate() error {
	if c.Resolution < 1 {
		return fmt.Errorf("%w: resolution must be positive, got %d", ErrInvalidConfig, c.Resolution)
	}
	if !isFinite(c.Height) || c.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %v", ErrInvalidConfig, c.Height)
	}
	if !isFinite(c.Rotation) {
		return fmt.Errorf("%w: rotation must be finite, got %v", ErrInvalidConfig, c.Rotation)
	}
	if !c.Translation.IsFinite() {
		return fmt.Errorf("%w: translation must be finite, got %v", ErrInvalidConfig, c.Translation)
	}
	if c.Horizontal > AlignRight {
		return fmt.Errorf("%w: unknown horizontal alignment %d", ErrInvalidConfig, c.Horizontal)
	}
	if c.Vertical > AlignTop {
		return fmt.Errorf("%w: unknown vertical alignment %d", ErrInvalidConfig, c.Vertical)
	}
	return nil
}
