package glyph

import "math"

// parallelEpsilon is the sine of the smallest angle at which two lines are
// still intersected.
const parallelEpsilon = 1e-9

// BoundaryKind distinguishes straight and sampled boundaries.
type BoundaryKind uint8

const (
	// BoundaryLine is the infinite carrier line through two points.
	BoundaryLine BoundaryKind = iota
	// BoundaryCurve is a sampled polyline.
	BoundaryCurve
)

// Boundary is one operand of Intersect.
type Boundary struct {
	Kind   BoundaryKind
	Points []Point
}

// LineBoundary returns the carrier line through a and b.
func LineBoundary(a, b Point) Boundary {
	return Boundary{Kind: BoundaryLine, Points: []Point{a, b}}
}

// CurveBoundary returns a sampled boundary. The samples are not copied.
func CurveBoundary(pts []Point) Boundary {
	return Boundary{Kind: BoundaryCurve, Points: pts}
}

// Corner is the crossing of two boundaries. Index is the sample segment of
// the first operand holding the crossing (0 for a line), OtherIndex the one
// of the second operand.
type Corner struct {
	Point      Point
	Index      int
	OtherIndex int
}

// Intersect finds where two boundaries cross. Lines are extended
// infinitely; curves are tested sample segment by sample segment and the
// crossing closest to the start of the curve (the first operand when both
// are curves) wins, the lower index breaking ties. The second result is
// false for parallel lines and for boundaries that never cross.
func Intersect(a, b Boundary) (Corner, bool) {
	if len(a.Points) < 2 || len(b.Points) < 2 {
		return Corner{}, false
	}
	switch {
	case a.Kind == BoundaryLine && b.Kind == BoundaryLine:
		p, ok := lineLine(a.Points[0], a.Points[1], b.Points[0], b.Points[1])
		return Corner{Point: p}, ok
	case a.Kind == BoundaryLine:
		p, j, ok := lineCurve(a.Points[0], a.Points[1], b.Points)
		return Corner{Point: p, OtherIndex: j}, ok
	case b.Kind == BoundaryLine:
		p, i, ok := lineCurve(b.Points[0], b.Points[1], a.Points)
		return Corner{Point: p, Index: i}, ok
	default:
		return curveCurve(a.Points, b.Points)
	}
}

// lineLine intersects the infinite lines through p0,p1 and q0,q1.
func lineLine(p0, p1, q0, q1 Point) (Point, bool) {
	d1 := p1.Sub(p0)
	d2 := q1.Sub(q0)
	den := d1.Cross(d2)
	if math.Abs(den) <= parallelEpsilon*d1.Length()*d2.Length() || den == 0 {
		return Point{}, false
	}
	t := q0.Sub(p0).Cross(d2) / den
	return p0.Add(d1.Mul(t)), true
}

// lineCurve intersects an infinite line with each sample segment of a
// polyline and returns the crossing closest to pts[0].
func lineCurve(l0, l1 Point, pts []Point) (Point, int, bool) {
	d := l1.Sub(l0)
	if d.Length() == 0 {
		return Point{}, 0, false
	}
	best, bestIdx, found := Point{}, 0, false
	bestDist := math.Inf(1)
	for j := 0; j+1 < len(pts); j++ {
		s0, s1 := pts[j], pts[j+1]
		side0 := d.Cross(s0.Sub(l0))
		side1 := d.Cross(s1.Sub(l0))
		if (side0 > 0 && side1 > 0) || (side0 < 0 && side1 < 0) {
			continue
		}
		var p Point
		if side0 == side1 {
			// Segment lies on the line.
			p = s0
		} else {
			p = s0.Lerp(s1, side0/(side0-side1))
		}
		if dist := p.Distance(pts[0]); dist < bestDist {
			best, bestIdx, bestDist, found = p, j, dist, true
		}
	}
	return best, bestIdx, found
}

// curveCurve intersects every sample segment pair and returns the crossing
// closest to a[0].
func curveCurve(a, b []Point) (Corner, bool) {
	var best Corner
	found := false
	bestDist := math.Inf(1)
	bBox := polylineBounds(b)
	for i := 0; i+1 < len(a); i++ {
		if !NewRect(a[i], a[i+1]).Overlaps(bBox) {
			continue
		}
		for j := 0; j+1 < len(b); j++ {
			p, ok := segmentSegment(a[i], a[i+1], b[j], b[j+1])
			if !ok {
				continue
			}
			if dist := p.Distance(a[0]); dist < bestDist {
				best, bestDist, found = Corner{Point: p, Index: i, OtherIndex: j}, dist, true
			}
		}
	}
	return best, found
}

// segmentSegment intersects two bounded segments. Collinear overlaps report
// the first overlapping endpoint.
func segmentSegment(p0, p1, q0, q1 Point) (Point, bool) {
	const eps = 1e-9
	d1 := p1.Sub(p0)
	d2 := q1.Sub(q0)
	den := d1.Cross(d2)
	r := q0.Sub(p0)
	if math.Abs(den) <= parallelEpsilon*d1.Length()*d2.Length() {
		if math.Abs(r.Cross(d1)) > eps*math.Max(1, d1.Length()) {
			return Point{}, false
		}
		l2 := d1.Dot(d1)
		if l2 == 0 {
			return Point{}, false
		}
		t0 := r.Dot(d1) / l2
		t1 := q1.Sub(p0).Dot(d1) / l2
		lo := math.Max(0, math.Min(t0, t1))
		hi := math.Min(1, math.Max(t0, t1))
		if lo > hi {
			return Point{}, false
		}
		return p0.Add(d1.Mul(lo)), true
	}
	t := r.Cross(d2) / den
	u := r.Cross(d1) / den
	if t < -eps || t > 1+eps || u < -eps || u > 1+eps {
		return Point{}, false
	}
	return p0.Add(d1.Mul(t)), true
}

func polylineBounds(pts []Point) Rect {
	r := emptyRect()
	for _, p := range pts {
		r = r.Extend(p)
	}
	return r
}
