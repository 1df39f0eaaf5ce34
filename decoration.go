package glyph

import "math"

// Decoration extents, in font units per unit of style value.
const (
	flareLengthPerValue = 20
	flareWidthFactor    = 0.25
	flareRoundRadius    = 20
	bulgeLengthPerValue = 20
)

// startFlare returns the ornament pieces spliced in before a boundary that
// starts at s and now continues from head. The flare steps outward along n
// by width, runs length along d, and steps back to the boundary; the rounded
// variant replaces the inner corner with a quadratic ending at head.
// All pieces run in the boundary's direction.
func startFlare(style StartStyle, s, head, d, n Point, length, width float64) []Segment {
	p0 := s.Add(n.Mul(width))
	p1 := p0.Add(d.Mul(length))
	pieces := []Segment{LineSeg(p0, p1)}
	if style == StartFlareRounded {
		return append(pieces, QuadSeg(p1, s.Add(d.Mul(length)), head))
	}
	return append(pieces, LineSeg(p1, head))
}

// flareExtent clamps the flare length and rounding radius to the length
// available on the first boundary and returns how far the boundary is cut
// back.
func flareExtent(style StartStyle, value, avail float64) (length, round float64) {
	length = math.Min(math.Max(0, flareLengthPerValue*value), avail)
	if style == StartFlareRounded {
		round = math.Max(0, math.Min(flareRoundRadius, avail-length))
	}
	return length, round
}

// bulgeRadius returns the distance back from a turn corner at which the
// bulge begins: half the weight over the sine of half the interior angle
// between the incoming direction d1 and the outgoing direction d2. It is
// zero when the turn is too shallow to decorate.
func bulgeRadius(d1, d2 Point, halfWeight float64) float64 {
	cosTheta := d1.Mul(-1).Dot(d2)
	sinHalf := math.Sqrt(math.Max(0, (1-cosTheta)/2))
	if sinHalf < 1e-6 || math.Abs(d1.Cross(d2)) < 1e-6 {
		return 0
	}
	return halfWeight / sinHalf
}

// turnBulge returns the pieces that replace a convex turn corner c:
// a quadratic from start1 (on the incoming boundary, 2r before c) bulging
// out along the bisector, a straight run, and a quadratic back to start2
// (on the outgoing boundary, 2r after c).
func turnBulge(c, d1, d2 Point, r, length float64, start1, start2 Point) []Segment {
	b := d1.Sub(d2).Normalize()
	ctrl1 := c.Sub(d1.Mul(r))
	end1 := ctrl1.Add(b.Mul(length))
	ctrl2 := c.Add(d2.Mul(r))
	end2 := ctrl2.Add(b.Mul(length))
	return []Segment{
		QuadSeg(start1, ctrl1, end1),
		LineSeg(end1, end2),
		QuadSeg(end2, ctrl2, start2),
	}
}
