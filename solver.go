package glyph

import "math"

// Polynomial root solving for curve extrema.

// SolveQuadratic finds real roots of ax^2 + bx + c = 0 in ascending order.
// A vanishing leading coefficient degrades to the linear case; an all-zero
// polynomial reports a single root at 0.
func SolveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		if isFinite(root) {
			return []float64{root}
		}
		if b == 0 && c == 0 {
			return []float64{0}
		}
		return nil
	}

	disc := sc1*sc1 - 4*sc0
	switch {
	case !isFinite(disc):
		// Discriminant overflow: one root dominates.
		return sortedPair(-sc1, sc0/-sc1)
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-0.5 * sc1}
	}

	// Cancellation-free form.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(disc), sc1))
	return sortedPair(root1, sc0/root1)
}

func sortedPair(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// SolveQuadraticInUnitInterval returns roots of ax^2 + bx + c = 0 in [0, 1].
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	return clampRootsToUnit(SolveQuadratic(a, b, c))
}

// clampRootsToUnit keeps roots within a small epsilon of [0, 1] and snaps
// them onto the interval.
func clampRootsToUnit(roots []float64) []float64 {
	const eps = 1e-12
	var out []float64
	for _, r := range roots {
		if r < -eps || r > 1+eps || math.IsNaN(r) {
			continue
		}
		out = append(out, math.Min(1, math.Max(0, r)))
	}
	return out
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
