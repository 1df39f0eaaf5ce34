package glyph

import "fmt"

// DefaultBendSamples is the number of centerline samples taken along a bent
// bone.
const DefaultBendSamples = 100

// OffsetPair holds the two boundaries running parallel to one bone at half
// the stroke weight. Outer and Inner run in the bone's direction and are not
// yet joined into a loop. The samples are kept so later stages can cut the
// boundaries at a corner index and refit only the part they keep.
type OffsetPair struct {
	Outer []Segment
	Inner []Segment

	OuterSamples []Point
	InnerSamples []Point
}

// Validate checks that the two boundaries correspond sample by sample.
func (p OffsetPair) Validate() error {
	if len(p.OuterSamples) != len(p.InnerSamples) {
		return fmt.Errorf("%w: outer has %d samples, inner has %d",
			ErrOffsetMismatch, len(p.OuterSamples), len(p.InnerSamples))
	}
	if len(p.OuterSamples) < 2 {
		return fmt.Errorf("%w: %d samples", ErrOffsetMismatch, len(p.OuterSamples))
	}
	return nil
}

// outerNormal returns the unit normal pointing to the outer side of a
// direction of travel: the right-hand side, or the left-hand side when the
// stroke is built in reversed orientation.
func outerNormal(dir Point, reversed bool) Point {
	n := dir.PerpCW()
	if reversed {
		return n.Mul(-1)
	}
	return n
}

// OffsetLine returns the parallels of the line from start to end at
// ±weight/2. A zero-length line is treated as pointing along +x.
func OffsetLine(start, end Point, weight float64, reversed bool) OffsetPair {
	dir := end.Sub(start).Normalize()
	if dir == (Point{}) {
		dir = Point{X: 1}
	}
	off := outerNormal(dir, reversed).Mul(weight / 2)
	outer := []Point{start.Add(off), end.Add(off)}
	inner := []Point{start.Sub(off), end.Sub(off)}
	return OffsetPair{
		Outer:        []Segment{LineSeg(outer[0], outer[1])},
		Inner:        []Segment{LineSeg(inner[0], inner[1])},
		OuterSamples: outer,
		InnerSamples: inner,
	}
}

// OffsetCurve offsets a dense centerline sample. Each sample moves along
// its local normal, estimated by central differences, and both sample
// clouds are refitted with FitCurves. The two clouds have the same length
// and direction as points.
func OffsetCurve(points []Point, weight float64, reversed bool, tolerance float64) OffsetPair {
	n := len(points)
	outer := make([]Point, n)
	inner := make([]Point, n)
	prev := Point{X: 1}
	for i, p := range points {
		dir := sampleTangent(points, i)
		if dir == (Point{}) {
			dir = prev
		}
		prev = dir
		off := outerNormal(dir, reversed).Mul(weight / 2)
		outer[i] = p.Add(off)
		inner[i] = p.Sub(off)
	}

	pair := OffsetPair{OuterSamples: outer, InnerSamples: inner}
	pair.Outer = fitSegments(outer, 0, n-1, tolerance)
	pair.Inner = fitSegments(inner, 0, n-1, tolerance)
	Logger().Debug("offset curve", "samples", n, "outer", len(pair.Outer), "inner", len(pair.Inner))
	return pair
}

// sampleTangent estimates the unit direction of travel at sample i.
func sampleTangent(points []Point, i int) Point {
	lo, hi := max(i-1, 0), min(i+1, len(points)-1)
	return points[hi].Sub(points[lo]).Normalize()
}

// SampleBend returns n samples of the quadratic bone from start through
// control to end, including both endpoints.
func SampleBend(start, control, end Point, n int) []Point {
	n = max(n, 2)
	q := QuadBez{P0: start, P1: control, P2: end}
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = q.Eval(float64(i) / float64(n-1))
	}
	pts[0], pts[n-1] = start, end
	return pts
}

// fitSegments refits points[first..last] and wraps the curves as segments.
func fitSegments(points []Point, first, last int, tolerance float64) []Segment {
	curves := FitRange(points, first, last, tolerance)
	out := make([]Segment, len(curves))
	for i, c := range curves {
		out[i] = CubicSegOf(c)
	}
	return out
}

// offsetBone offsets one bone of a skeleton.
func offsetBone(s Skeleton, b Bone, weight float64, samples int, tolerance float64) OffsetPair {
	if b.Kind == BoneBend {
		pts := SampleBend(s.Point(b.Joints[0]), s.Point(b.Joints[1]), s.Point(b.Joints[2]), samples)
		return OffsetCurve(pts, weight, s.Reversed, tolerance)
	}
	return OffsetLine(s.Point(b.Joints[0]), s.Point(b.Joints[1]), weight, s.Reversed)
}
