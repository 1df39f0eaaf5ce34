package glyph

import (
	"fmt"
	"math"
)

// SegmentKind identifies the geometry stored in a Segment.
type SegmentKind uint8

const (
	// SegmentLine is a straight segment from P[0] to P[1].
	SegmentLine SegmentKind = iota
	// SegmentQuad is a quadratic Bezier: P[0] start, P[1] control, P[2] end.
	SegmentQuad
	// SegmentCubic is a cubic Bezier: P[0] start, P[1], P[2] controls, P[3] end.
	SegmentCubic
)

// String returns the kind name.
func (k SegmentKind) String() string {
	switch k {
	case SegmentLine:
		return "line"
	case SegmentQuad:
		return "quad"
	case SegmentCubic:
		return "cubic"
	default:
		return fmt.Sprintf("SegmentKind(%d)", uint8(k))
	}
}

// Segment is one directed piece of a contour. It is a plain value: segments
// compare with == and are never mutated after construction.
type Segment struct {
	Kind SegmentKind
	P    [4]Point
}

// LineSeg returns a straight segment from a to b.
func LineSeg(a, b Point) Segment {
	return Segment{Kind: SegmentLine, P: [4]Point{a, b}}
}

// QuadSeg returns a quadratic segment.
func QuadSeg(p0, ctrl, p2 Point) Segment {
	return Segment{Kind: SegmentQuad, P: [4]Point{p0, ctrl, p2}}
}

// CubicSeg returns a cubic segment.
func CubicSeg(p0, c1, c2, p3 Point) Segment {
	return Segment{Kind: SegmentCubic, P: [4]Point{p0, c1, c2, p3}}
}

// CubicSegOf wraps a CubicBez.
func CubicSegOf(c CubicBez) Segment {
	return CubicSeg(c.P0, c.P1, c.P2, c.P3)
}

// endIndex returns the index of the end point in P.
func (s Segment) endIndex() int {
	switch s.Kind {
	case SegmentQuad:
		return 2
	case SegmentCubic:
		return 3
	default:
		return 1
	}
}

// Start returns the first point of the segment.
func (s Segment) Start() Point {
	return s.P[0]
}

// End returns the last point of the segment.
func (s Segment) End() Point {
	return s.P[s.endIndex()]
}

// Quad returns the segment as a quadratic curve. Lines are raised.
func (s Segment) Quad() QuadBez {
	switch s.Kind {
	case SegmentQuad:
		return QuadBez{P0: s.P[0], P1: s.P[1], P2: s.P[2]}
	case SegmentCubic:
		// Mid-point approximation; exact only for raised quadratics.
		ctrl := s.P[1].Add(s.P[2]).Mul(3).Sub(s.P[0]).Sub(s.P[3]).Mul(0.25)
		return QuadBez{P0: s.P[0], P1: ctrl, P2: s.P[3]}
	default:
		return QuadBez{P0: s.P[0], P1: s.P[0].Midpoint(s.P[1]), P2: s.P[1]}
	}
}

// Cubic returns the segment as an exact cubic curve.
func (s Segment) Cubic() CubicBez {
	switch s.Kind {
	case SegmentQuad:
		return s.Quad().Raise()
	case SegmentCubic:
		return CubicBez{P0: s.P[0], P1: s.P[1], P2: s.P[2], P3: s.P[3]}
	default:
		return CubicBez{
			P0: s.P[0],
			P1: s.P[0].Lerp(s.P[1], 1.0/3.0),
			P2: s.P[0].Lerp(s.P[1], 2.0/3.0),
			P3: s.P[1],
		}
	}
}

// Eval evaluates the segment at parameter t.
func (s Segment) Eval(t float64) Point {
	switch s.Kind {
	case SegmentQuad:
		return s.Quad().Eval(t)
	case SegmentCubic:
		return s.Cubic().Eval(t)
	default:
		return s.P[0].Lerp(s.P[1], t)
	}
}

// Deriv returns the first derivative at t.
func (s Segment) Deriv(t float64) Point {
	switch s.Kind {
	case SegmentQuad:
		return s.Quad().Deriv(t)
	case SegmentCubic:
		return s.Cubic().Deriv(t)
	default:
		return s.P[1].Sub(s.P[0])
	}
}

// StartTangent returns the unit direction of travel at the start.
// Degenerate control points fall back to the next distinct point.
func (s Segment) StartTangent() Point {
	n := s.endIndex()
	for i := 1; i <= n; i++ {
		if d := s.P[i].Sub(s.P[0]); d.Length() > 1e-9 {
			return d.Normalize()
		}
	}
	return Point{}
}

// EndTangent returns the unit direction of travel at the end.
func (s Segment) EndTangent() Point {
	n := s.endIndex()
	for i := n - 1; i >= 0; i-- {
		if d := s.P[n].Sub(s.P[i]); d.Length() > 1e-9 {
			return d.Normalize()
		}
	}
	return Point{}
}

// Reversed returns the segment traversed in the opposite direction.
func (s Segment) Reversed() Segment {
	switch s.Kind {
	case SegmentQuad:
		return QuadSeg(s.P[2], s.P[1], s.P[0])
	case SegmentCubic:
		return CubicSeg(s.P[3], s.P[2], s.P[1], s.P[0])
	default:
		return LineSeg(s.P[1], s.P[0])
	}
}

// Subsegment returns the portion of the segment between t0 and t1. When
// t0 > t1 the result runs backwards. The full range returns s unchanged.
func (s Segment) Subsegment(t0, t1 float64) Segment {
	if t0 == 0 && t1 == 1 {
		return s
	}
	if t0 == 1 && t1 == 0 {
		return s.Reversed()
	}
	switch s.Kind {
	case SegmentQuad:
		q := s.Quad().Subsegment(t0, t1)
		return QuadSeg(q.P0, q.P1, q.P2)
	case SegmentCubic:
		return CubicSegOf(s.Cubic().Subsegment(t0, t1))
	default:
		return LineSeg(s.Eval(t0), s.Eval(t1))
	}
}

// WithEndpoints returns a copy with the start and end points replaced,
// keeping control points unchanged.
func (s Segment) WithEndpoints(start, end Point) Segment {
	s.P[0] = start
	s.P[s.endIndex()] = end
	return s
}

// Translate returns the segment moved by d.
func (s Segment) Translate(d Point) Segment {
	for i := 0; i <= s.endIndex(); i++ {
		s.P[i] = s.P[i].Add(d)
	}
	return s
}

// BoundingBox returns the tight bounding box of the segment.
func (s Segment) BoundingBox() Rect {
	switch s.Kind {
	case SegmentQuad:
		return s.Quad().BoundingBox()
	case SegmentCubic:
		return s.Cubic().BoundingBox()
	default:
		return NewRect(s.P[0], s.P[1])
	}
}

// Length returns the arc length, approximated by flattening curves.
func (s Segment) Length() float64 {
	if s.Kind == SegmentLine {
		return s.P[0].Distance(s.P[1])
	}
	pts := s.Flatten(0.01)
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Distance(pts[i])
	}
	return total
}

// IsDegenerate reports whether all points of the segment coincide within eps.
func (s Segment) IsDegenerate(eps float64) bool {
	for i := 1; i <= s.endIndex(); i++ {
		if !s.P[i].Approx(s.P[0], eps) {
			return false
		}
	}
	return true
}

// Flatten returns points along the segment including both endpoints such
// that the polyline deviates from the curve by at most tolerance.
func (s Segment) Flatten(tolerance float64) []Point {
	n := s.flattenCount(tolerance)
	pts := make([]Point, 0, n+1)
	pts = append(pts, s.P[0])
	for i := 1; i < n; i++ {
		pts = append(pts, s.Eval(float64(i)/float64(n)))
	}
	return append(pts, s.End())
}

// flattenCount uses Wang's formula to bound the uniform subdivision count.
func (s Segment) flattenCount(tolerance float64) int {
	if tolerance <= 0 {
		tolerance = 0.1
	}
	var dd float64
	switch s.Kind {
	case SegmentQuad:
		dd = 0.25 * s.P[0].Sub(s.P[1].Mul(2)).Add(s.P[2]).Length() * 2
	case SegmentCubic:
		a := s.P[0].Sub(s.P[1].Mul(2)).Add(s.P[2]).Length()
		b := s.P[1].Sub(s.P[2].Mul(2)).Add(s.P[3]).Length()
		dd = 0.75 * math.Max(a, b)
	default:
		return 1
	}
	n := int(math.Ceil(math.Sqrt(dd / tolerance)))
	return max(1, min(n, 512))
}

// area returns the segment's contribution to the signed area of a closed
// contour (Green's theorem, y-up: counter-clockwise is positive).
func (s Segment) area() float64 {
	switch s.Kind {
	case SegmentQuad:
		return quadArea(s.P[0], s.P[1], s.P[2])
	case SegmentCubic:
		return cubicArea(s.P[0], s.P[1], s.P[2], s.P[3])
	default:
		return lineArea(s.P[0], s.P[1])
	}
}

func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

func quadArea(p0, p1, p2 Point) float64 {
	c := QuadBez{P0: p0, P1: p1, P2: p2}.Raise()
	return cubicArea(c.P0, c.P1, c.P2, c.P3)
}

func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// lineCrossing returns +1/-1 when the rightward ray from pt crosses the
// upward/downward edge p0-p1, using the half-open rule so shared vertices
// count once.
func lineCrossing(p0, p1, pt Point) int {
	if p0.Y <= pt.Y {
		if p1.Y > pt.Y && p1.Sub(p0).Cross(pt.Sub(p0)) > 0 {
			return 1
		}
	} else if p1.Y <= pt.Y && p1.Sub(p0).Cross(pt.Sub(p0)) < 0 {
		return -1
	}
	return 0
}
