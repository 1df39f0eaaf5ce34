package boolean

import (
	"math"
	"slices"
)

// Op selects a boolean operation.
type Op uint8

const (
	// Union keeps points inside either operand.
	Union Op = iota
	// Intersect keeps points inside both operands.
	Intersect
	// Difference keeps points inside the subject but not the clip.
	Difference
	// Xor keeps points inside exactly one operand.
	Xor
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case Union:
		return "union"
	case Intersect:
		return "intersect"
	case Difference:
		return "difference"
	case Xor:
		return "xor"
	default:
		return "unknown"
	}
}

func (op Op) inside(a, b bool) bool {
	switch op {
	case Intersect:
		return a && b
	case Difference:
		return a && !b
	case Xor:
		return a != b
	default:
		return a || b
	}
}

const (
	// flattenTolerance is the chord error of the flattened graph.
	flattenTolerance = 0.05
	// gridScale is the inverse of the vertex snapping grid.
	gridScale = 1024
	// probeOffset is how far beside an edge winding numbers are sampled.
	probeOffset = 1.0 / 512
	// minLoopArea drops slivers left over from snapping.
	minLoopArea = 1e-9
)

// Compute applies op to the subject and clip contour sets, each filled
// with the nonzero rule. Union with a nil clip merges the subject with
// itself, removing its overlaps.
func Compute(op Op, subject, clip []Contour) []Contour {
	g := newGraph()
	g.addOperand(0, subject)
	g.addOperand(1, clip)
	if len(g.edges) == 0 {
		return nil
	}
	g.split()
	kept := g.classify(op)
	loops := g.chain(kept)

	out := make([]Contour, 0, len(loops))
	for _, l := range loops {
		if c := g.merge(l); len(c) > 0 {
			out = append(out, c)
		}
	}
	sortContours(out)
	slogger().Debug("boolean result",
		"op", op.String(), "edges", len(g.edges), "kept", len(kept), "contours", len(out))
	return out
}

// Area returns the signed area of a contour, computed on its flattening.
func Area(c Contour) float64 {
	return polygonArea(flattenContour(c))
}

func flattenContour(c Contour) []Point {
	var pts []Point
	for _, s := range c {
		n := s.steps(flattenTolerance)
		for i := range n {
			pts = append(pts, s.Eval(float64(i)/float64(n)))
		}
	}
	return pts
}

// sortContours orders contours by their start vertex, then by area, so
// results do not depend on traversal order.
func sortContours(cs []Contour) {
	slices.SortStableFunc(cs, func(a, b Contour) int {
		pa, pb := a[0].Start(), b[0].Start()
		switch {
		case pa.less(pb):
			return -1
		case pb.less(pa):
			return 1
		}
		aa, ab := Area(a), Area(b)
		switch {
		case aa < ab:
			return -1
		case aa > ab:
			return 1
		}
		return 0
	})
}

// snap rounds a coordinate onto the vertex grid.
func snap(v float64) float64 {
	return math.Round(v*gridScale) / gridScale
}

func snapPoint(p Point) Point {
	return Point{snap(p.X), snap(p.Y)}
}

// vkey identifies a snapped vertex.
type vkey struct{ x, y int64 }

func keyOf(p Point) vkey {
	return vkey{int64(math.Round(p.X * gridScale)), int64(math.Round(p.Y * gridScale))}
}
