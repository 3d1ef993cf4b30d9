// Package glyphregion converts vector font glyph outlines into filled
// planar regions suitable for 3D extrusion.
//
// # Overview
//
// A glyph arrives as contours of relative-coordinate line, quadratic and
// cubic segments. glyphregion decodes the segments into absolute Bezier
// curves, samples every curve by arc length, normalizes the samples
// (rotation, alignment, scale to a target height, translation) and finally
// classifies the resulting polygons by winding into exteriors and holes.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/glyphregion"
//		"github.com/gogpu/glyphregion/font"
//	)
//
//	face, err := font.ParseSFNT(ttfData)
//	if err != nil {
//		return err
//	}
//	b, err := glyphregion.NewBuilder(face, 'o')
//	if err != nil {
//		return err // *glyphregion.LookupError if 'o' is not in the font
//	}
//	regions, err := b.AlignCenter().Height(10).Build()
//
// # Pipeline
//
//   - Segment decoding: [Segment.Decode] resolves chained deltas against
//     the pen position.
//   - Flattening: [FlattenContour] samples each curve with
//     [SampleEuclidean] and drops repeated points.
//   - Accumulation: [Accumulate] walks all contours, carrying the pen from
//     one contour to the next, and records the vertical [Extent].
//   - Normalization: [Normalize] maps points through [NormalizeTransform].
//   - Assembly: [Assemble] builds [Region] values; clockwise polygons
//     become holes of the first region.
//
// # Coordinate System
//
// Font units with Y increasing up. Counter-clockwise polygons have positive
// area. Rotation angles are in degrees, counter-clockwise, about the
// glyph origin.
//
// # Concurrency
//
// Builds share no state. Concurrent builds, including builds of the same
// Builder value, are safe.
package glyphregion
