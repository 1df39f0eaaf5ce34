package outline

import "github.com/gogpu/glyph"

// Cubic to quadratic conversion settings.
const (
	// DefaultQuadTolerance is the largest distance, in font units, between a
	// cubic and its quadratic replacement.
	DefaultQuadTolerance = 0.5

	quadSamples  = 11
	maxQuadDepth = 10
)

// ToQuadratic replaces every cubic with quadratics that stay within
// tolerance of it; lines and quadratics are kept. A cubic is approximated
// by a single quadratic when possible and otherwise split in half, so
// masters with matching cubic structure get matching quadratic structure.
// A non-positive tolerance uses DefaultQuadTolerance.
func ToQuadratic(contours []glyph.Contour, tolerance float64) []glyph.Contour {
	if tolerance <= 0 {
		tolerance = DefaultQuadTolerance
	}
	out := make([]glyph.Contour, len(contours))
	for i, c := range contours {
		q := make(glyph.Contour, 0, len(c))
		for _, s := range c {
			if s.Kind != glyph.SegmentCubic {
				q = append(q, s)
				continue
			}
			for _, qb := range cubicToQuads(s.Cubic(), tolerance, maxQuadDepth) {
				q = append(q, glyph.QuadSeg(qb.P0, qb.P1, qb.P2))
			}
		}
		out[i] = q
	}
	return out
}

func cubicToQuads(c glyph.CubicBez, tolerance float64, depth int) []glyph.QuadBez {
	q := singleQuad(c)
	if depth == 0 || quadError(c, q) <= tolerance {
		return []glyph.QuadBez{q}
	}
	a, b := c.Split(0.5)
	return append(cubicToQuads(a, tolerance, depth-1), cubicToQuads(b, tolerance, depth-1)...)
}

// singleQuad returns the quadratic sharing c's end points whose control is
// (3(c1 + c2) - (p0 + p3)) / 4.
func singleQuad(c glyph.CubicBez) glyph.QuadBez {
	ctrl := c.P1.Add(c.P2).Mul(3).Sub(c.P0.Add(c.P3)).Mul(0.25)
	return glyph.QuadBez{P0: c.P0, P1: ctrl, P2: c.P3}
}

// quadError samples the distance between c and q.
func quadError(c glyph.CubicBez, q glyph.QuadBez) float64 {
	var worst float64
	for i := range quadSamples {
		t := float64(i) / (quadSamples - 1)
		worst = max(worst, c.Eval(t).Distance(q.Eval(t)))
	}
	return worst
}
