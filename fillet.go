package glyph

import "math"

// Fillet is the rounded replacement of a sharp corner: a quadratic from
// TangentStart through the corner as control point to TangentEnd.
type Fillet struct {
	TangentStart Point
	Control      Point
	TangentEnd   Point
	Radius       float64
}

// Segment returns the fillet as a quadratic segment.
func (f Fillet) Segment() Segment {
	return QuadSeg(f.TangentStart, f.Control, f.TangentEnd)
}

// IsZero reports whether the fillet degenerates to its corner.
func (f Fillet) IsZero() bool {
	return f.Radius <= DefaultEpsilon
}

// NewFillet rounds the corner between a, which arrives at corner, and b,
// which leaves it. The radius is clamped to the distance from the corner to
// the far end of either segment, so a fillet never consumes more than the
// shorter neighbor. The tangent points lie radius back from the corner
// along each segment.
func NewFillet(corner Point, a, b Segment, radius float64) Fillet {
	pa := polyline(a.Reversed().Flatten(0.01))
	pb := polyline(b.Flatten(0.01))
	return filletOn(corner, pa, pb, farEnd(corner, a), farEnd(corner, b), radius)
}

// farEnd returns the endpoint of s farther from corner.
func farEnd(corner Point, s Segment) Point {
	if s.Start().Distance(corner) >= s.End().Distance(corner) {
		return s.Start()
	}
	return s.End()
}

// filletOn builds a fillet from two polylines that both start at the
// corner and run away from it.
func filletOn(corner Point, a, b polyline, farA, farB Point, radius float64) Fillet {
	r := math.Max(0, radius)
	r = math.Min(r, corner.Distance(farA))
	r = math.Min(r, corner.Distance(farB))
	return Fillet{
		TangentStart: a.walk(r),
		Control:      corner,
		TangentEnd:   b.walk(r),
		Radius:       r,
	}
}

// polyline is an owned, ordered point sequence.
type polyline []Point

// length returns the arc length.
func (p polyline) length() float64 {
	var l float64
	for i := 1; i < len(p); i++ {
		l += p[i].Distance(p[i-1])
	}
	return l
}

// walk returns the point at arc length d from the first point, clamped to
// the last point.
func (p polyline) walk(d float64) Point {
	pt, _ := p.walkIndex(d)
	return pt
}

// walkIndex is walk that also returns the index of the sample segment
// holding the point.
func (p polyline) walkIndex(d float64) (Point, int) {
	if len(p) == 0 {
		return Point{}, 0
	}
	for i := 1; i < len(p); i++ {
		l := p[i].Distance(p[i-1])
		if d <= l {
			if l == 0 {
				return p[i-1], i - 1
			}
			return p[i-1].Lerp(p[i], d/l), i - 1
		}
		d -= l
	}
	return p[len(p)-1], max(len(p)-2, 0)
}

// midpoint returns the point at half the arc length.
func (p polyline) midpoint() Point {
	return p.walk(p.length() / 2)
}

// reversed returns a reversed copy.
func (p polyline) reversed() polyline {
	out := make(polyline, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// cutStart drops everything before arc length d and starts the polyline at
// the point there.
func (p polyline) cutStart(d float64) polyline {
	pt, i := p.walkIndex(d)
	out := make(polyline, 0, len(p)-i)
	out = append(out, pt)
	return append(out, p[i+1:]...)
}

// cutEnd drops everything after arc length d measured back from the last
// point.
func (p polyline) cutEnd(d float64) polyline {
	return p.reversed().cutStart(d).reversed()
}

// start and end return the first and last point.
func (p polyline) start() Point { return p[0] }
func (p polyline) end() Point   { return p[len(p)-1] }
