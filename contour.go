package glyph

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the distance below which two points are considered equal
// by continuity and closure checks.
const DefaultEpsilon = 1e-6

// Contour is a closed, directed chain of segments. Positive signed area
// (counter-clockwise in a y-up system) marks an outer fill boundary,
// negative area marks a hole.
type Contour []Segment

// Area returns the signed area enclosed by the contour.
// Uses the shoelace formula extended for curves (Green's theorem).
func (c Contour) Area() float64 {
	var area float64
	for _, s := range c {
		area += s.area()
	}
	// Close any residual gap so an almost-closed contour still has a
	// meaningful area.
	if len(c) > 0 {
		area += lineArea(c[len(c)-1].End(), c[0].Start())
	}
	return area
}

// Bounds returns the tight bounding box of the contour.
// An empty contour returns an empty rectangle.
func (c Contour) Bounds() Rect {
	r := emptyRect()
	for _, s := range c {
		r = r.Union(s.BoundingBox())
	}
	return r
}

// Closed reports whether the contour ends within eps of its start.
func (c Contour) Closed(eps float64) bool {
	if len(c) == 0 {
		return false
	}
	return c[len(c)-1].End().Approx(c[0].Start(), eps)
}

// Validate checks segment continuity and closure. The returned error wraps
// ErrDiscontinuous or ErrNotClosed.
func (c Contour) Validate(eps float64) error {
	if len(c) == 0 {
		return fmt.Errorf("%w: empty contour", ErrNotClosed)
	}
	for i := 1; i < len(c); i++ {
		if !c[i-1].End().Approx(c[i].Start(), eps) {
			return fmt.Errorf("%w: gap between segment %d (%v) and %d (%v)",
				ErrDiscontinuous, i-1, c[i-1].End(), i, c[i].Start())
		}
	}
	if !c.Closed(eps) {
		return fmt.Errorf("%w: ends at %v, starts at %v", ErrNotClosed, c[len(c)-1].End(), c[0].Start())
	}
	return nil
}

// Reversed returns the contour traversed in the opposite direction.
func (c Contour) Reversed() Contour {
	out := make(Contour, len(c))
	for i, s := range c {
		out[len(c)-1-i] = s.Reversed()
	}
	return out
}

// Translate returns the contour moved by d.
func (c Contour) Translate(d Point) Contour {
	out := make(Contour, len(c))
	for i, s := range c {
		out[i] = s.Translate(d)
	}
	return out
}

// Clone returns an independent copy of the contour.
func (c Contour) Clone() Contour {
	return append(Contour(nil), c...)
}

// Flatten returns the contour as a closed polyline. The start point is not
// repeated at the end.
func (c Contour) Flatten(tolerance float64) []Point {
	var pts []Point
	for _, s := range c {
		seg := s.Flatten(tolerance)
		if len(pts) > 0 {
			seg = seg[1:]
		}
		pts = append(pts, seg...)
	}
	if n := len(pts); n > 1 && pts[n-1].Approx(pts[0], DefaultEpsilon) {
		pts = pts[:n-1]
	}
	return pts
}

// Winding returns the nonzero winding number of the contour around pt.
func (c Contour) Winding(pt Point) int {
	pts := c.Flatten(0.05)
	w := 0
	for i := range pts {
		w += lineCrossing(pts[i], pts[(i+1)%len(pts)], pt)
	}
	return w
}

// Contains reports whether pt lies inside the contour (nonzero rule).
func (c Contour) Contains(pt Point) bool {
	return c.Winding(pt) != 0
}

// AreaOf returns the summed signed area of a contour set.
func AreaOf(contours []Contour) float64 {
	var total float64
	for _, c := range contours {
		total += c.Area()
	}
	return total
}

// BoundsOf returns the bounding box of a contour set.
func BoundsOf(contours []Contour) Rect {
	r := emptyRect()
	for _, c := range contours {
		r = r.Union(c.Bounds())
	}
	return r
}

func nearlyZero(v float64) bool {
	return math.Abs(v) <= areaEpsilon
}
