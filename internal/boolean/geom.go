package boolean

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

func (p Point) add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) mul(s float64) Point   { return Point{p.X * s, p.Y * s} }
func (p Point) dot(q Point) float64   { return p.X*q.X + p.Y*q.Y }
func (p Point) cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }
func (p Point) length() float64       { return math.Hypot(p.X, p.Y) }
func (p Point) lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// less orders points by x, then y.
func (p Point) less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Kind is the degree of a segment.
type Kind uint8

const (
	// Line has two points.
	Line Kind = iota
	// Quad has three points.
	Quad
	// Cubic has four points.
	Cubic
)

// Segment is a line, quadratic or cubic. Unused points are zero.
type Segment struct {
	Kind Kind
	P    [4]Point
}

// Contour is a closed chain of segments.
type Contour []Segment

func (s Segment) last() int {
	switch s.Kind {
	case Quad:
		return 2
	case Cubic:
		return 3
	default:
		return 1
	}
}

// Start returns the first point.
func (s Segment) Start() Point { return s.P[0] }

// End returns the last point.
func (s Segment) End() Point { return s.P[s.last()] }

// Eval evaluates the segment at t.
func (s Segment) Eval(t float64) Point {
	return s.blossom(t, t, t)
}

// blossom evaluates the polar form of the segment. Evaluating it at
// (t0, t0, t1) and (t0, t1, t1) yields the control points of the piece from
// t0 to t1, in either direction.
func (s Segment) blossom(a, b, c float64) Point {
	switch s.Kind {
	case Quad:
		p0 := s.P[0].lerp(s.P[1], a)
		p1 := s.P[1].lerp(s.P[2], a)
		return p0.lerp(p1, b)
	case Cubic:
		p0 := s.P[0].lerp(s.P[1], a)
		p1 := s.P[1].lerp(s.P[2], a)
		p2 := s.P[2].lerp(s.P[3], a)
		q0 := p0.lerp(p1, b)
		q1 := p1.lerp(p2, b)
		return q0.lerp(q1, c)
	default:
		return s.P[0].lerp(s.P[1], a)
	}
}

// Reversed returns the segment traversed backwards.
func (s Segment) Reversed() Segment {
	out := Segment{Kind: s.Kind}
	n := s.last()
	for i := 0; i <= n; i++ {
		out.P[i] = s.P[n-i]
	}
	return out
}

// Subsegment returns the piece between t0 and t1; t0 > t1 yields the piece
// reversed. The full ranges (0, 1) and (1, 0) return the segment and its
// exact reverse.
func (s Segment) Subsegment(t0, t1 float64) Segment {
	switch {
	case t0 == 0 && t1 == 1:
		return s
	case t0 == 1 && t1 == 0:
		return s.Reversed()
	}
	out := Segment{Kind: s.Kind}
	switch s.Kind {
	case Quad:
		out.P = [4]Point{s.Eval(t0), s.blossom(t0, t1, 0), s.Eval(t1)}
	case Cubic:
		out.P = [4]Point{s.Eval(t0), s.blossom(t0, t0, t1), s.blossom(t0, t1, t1), s.Eval(t1)}
	default:
		out.P = [4]Point{s.Eval(t0), s.Eval(t1)}
	}
	return out
}

// withEnds replaces the end points, keeping the controls.
func (s Segment) withEnds(a, b Point) Segment {
	s.P[0] = a
	s.P[s.last()] = b
	return s
}

// steps returns the number of uniform parameter steps that keep the chord
// error below tol (Wang's formula).
func (s Segment) steps(tol float64) int {
	var dd, k float64
	switch s.Kind {
	case Quad:
		dd = s.P[0].sub(s.P[1].mul(2)).add(s.P[2]).length()
		k = 0.25
	case Cubic:
		d1 := s.P[0].sub(s.P[1].mul(2)).add(s.P[2]).length()
		d2 := s.P[1].sub(s.P[2].mul(2)).add(s.P[3]).length()
		dd = math.Max(d1, d2)
		k = 0.75
	default:
		return 1
	}
	n := int(math.Ceil(math.Sqrt(k * dd / tol)))
	return max(1, min(n, 256))
}

// polygonArea returns the signed area of a closed polyline.
func polygonArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].cross(pts[j])
	}
	return a / 2
}

// crossing returns the signed contribution of edge p0-p1 to the winding
// number around pt.
func crossing(p0, p1, pt Point) int {
	if p0.Y <= pt.Y {
		if p1.Y > pt.Y && p1.sub(p0).cross(pt.sub(p0)) > 0 {
			return 1
		}
	} else if p1.Y <= pt.Y && p1.sub(p0).cross(pt.sub(p0)) < 0 {
		return -1
	}
	return 0
}
