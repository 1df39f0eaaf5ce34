// Package boolean implements boolean operations (union, intersection,
// difference, exclusive or) on sets of closed contours made of line,
// quadratic and cubic segments.
//
// # Algorithm Overview
//
// The engine works on a flattened planar graph and maps the result back to
// the original curves:
//  1. Flatten every segment into short edges, remembering the source
//     segment and parameter range of each edge
//  2. Sweep the edges in x order and record every crossing, collinear
//     overlap and T-junction
//  3. Split edges at those points and snap vertices to a 1/1024 grid
//  4. Classify each edge by the nonzero winding of both operands probed
//     just left and right of it, keeping edges that separate inside from
//     outside of the result, oriented with the inside on the left
//  5. Chain kept edges into loops, always taking the sharpest left turn
//  6. Merge consecutive edges of one source segment back into an exact
//     sub-segment of it
//
// Result loops are flat contour lists: outer boundaries wind
// counter-clockwise (positive area, y-up) and holes clockwise. Running an
// operation on its own output reproduces it exactly.
//
// # Usage
//
//	merged := boolean.Compute(boolean.Union, strokes, nil)
//	glyph := boolean.Compute(boolean.Difference, merged, holes)
package boolean
