// Package glyph synthesizes the outlines of CJK brush strokes from their
// centerlines and merges the strokes of a glyph into overlap-free contours.
//
// # Overview
//
// A stroke starts as a Skeleton: named joints connected by straight or
// gently bent bones. Every archetype (横, 竖, 横折弯钩, ...) has a Generator
// that places the joints from a small set of numeric parameters. The
// synthesis pipeline then runs in a fixed order:
//
//  1. offset every bone by half the stroke weight on both sides
//  2. intersect neighboring boundaries to find the corners
//  3. refit sampled boundaries with cubic Bézier curves
//  4. round corners with fillets and add start and turn decorations
//  5. walk outer boundary, terminal, reversed inner boundary into one
//     closed Contour
//
// A pipeline run is a pure function of the skeleton and StyleParameters,
// so batches of strokes or glyphs run in parallel without locking.
//
// # Quick Start
//
//	c, err := glyph.SynthesizeStroke("heng_zhe", glyph.Params{"heng.length": 600}, glyph.DefaultStyle())
//	if err != nil {
//		return err
//	}
//
//	// Merge the strokes of a glyph, keeping its counters.
//	merged, err := glyph.ResolveOverlap([]glyph.Contour{c, other})
//
// # Coordinate System
//
// Coordinates are font units with y pointing up. The archetypes are laid
// out in a 1000-unit em centered on (500, 500). Counter-clockwise contours
// have positive area and are filled; clockwise contours are holes.
//
// # Errors
//
// Degenerate geometry (zero-length bones, parallel boundaries, oversized
// fillet radii) is clamped and never reported. A *ConsistencyError means a
// stage produced an invalid contour; batch callers should skip that glyph.
//
// # Logging
//
// The package is silent by default. SetLogger routes stage diagnostics of
// this package and its boolean engine to any slog.Handler.
package glyph
