package glyph

import "math"

// DefaultFitTolerance is the maximum deviation, in font units, between a
// refitted curve and its samples.
const DefaultFitTolerance = 0.5

// maxReparameterize bounds the Newton-Raphson rounds per fit attempt.
const maxReparameterize = 20

// FitCurves fits a dense point sample with a sequence of cubic curves whose
// deviation from the samples stays within tolerance. The result is
// continuous: each curve starts where the previous one ends.
func FitCurves(points []Point, tolerance float64) []CubicBez {
	return FitRange(points, 0, len(points)-1, tolerance)
}

// FitRange fits the samples points[first..last] inclusive. Callers use it
// to refit the part of a boundary before or after a corner index.
// Consecutive duplicate samples are skipped. Fewer than two distinct
// samples yield no curves.
func FitRange(points []Point, first, last int, tolerance float64) []CubicBez {
	first = max(first, 0)
	last = min(last, len(points)-1)
	if last <= first {
		return nil
	}
	if tolerance <= 0 {
		tolerance = DefaultFitTolerance
	}

	pts := make([]Point, 0, last-first+1)
	pts = append(pts, points[first])
	for _, p := range points[first+1 : last+1] {
		if !p.Approx(pts[len(pts)-1], DefaultEpsilon) {
			pts = append(pts, p)
		}
	}
	if len(pts) < 2 {
		return nil
	}

	f := fitter{pts: pts, errSq: tolerance * tolerance}
	n := len(pts)
	t1 := pts[1].Sub(pts[0]).Normalize()
	t2 := pts[n-2].Sub(pts[n-1]).Normalize()
	f.fitCubic(0, n-1, t1, t2)
	return f.out
}

// fitter implements Schneider's algorithm ("An Algorithm for Automatically
// Fitting Digitized Curves", Graphics Gems, 1990).
type fitter struct {
	pts   []Point
	errSq float64
	out   []CubicBez
}

func (f *fitter) fitCubic(first, last int, t1, t2 Point) {
	p0, p3 := f.pts[first], f.pts[last]

	if last-first == 1 {
		dist := p0.Distance(p3) / 3
		f.out = append(f.out, CubicBez{P0: p0, P1: p0.Add(t1.Mul(dist)), P2: p3.Add(t2.Mul(dist)), P3: p3})
		return
	}

	u := f.chordLengthParameterize(first, last)
	bez := f.generateBezier(first, last, u, t1, t2)
	maxErr, split := f.maxError(first, last, bez, u)
	if maxErr < f.errSq {
		f.out = append(f.out, bez)
		return
	}

	// Close misses are usually a parameterization problem; try Newton
	// iteration before subdividing.
	if maxErr < 4*f.errSq {
		for range maxReparameterize {
			uPrime := f.reparameterize(first, last, u, bez)
			bez = f.generateBezier(first, last, uPrime, t1, t2)
			maxErr, split = f.maxError(first, last, bez, uPrime)
			if maxErr < f.errSq {
				f.out = append(f.out, bez)
				return
			}
			u = uPrime
		}
	}

	split = max(first+1, min(last-1, split))
	center := f.pts[split-1].Sub(f.pts[split+1]).Normalize()
	if center == (Point{}) {
		center = f.pts[split-1].Sub(f.pts[split]).Normalize()
	}
	f.fitCubic(first, split, t1, center)
	f.fitCubic(split, last, center.Mul(-1), t2)
}

// chordLengthParameterize assigns parameters proportional to the
// accumulated polyline length.
func (f *fitter) chordLengthParameterize(first, last int) []float64 {
	u := make([]float64, last-first+1)
	for i := first + 1; i <= last; i++ {
		u[i-first] = u[i-first-1] + f.pts[i].Distance(f.pts[i-1])
	}
	total := u[len(u)-1]
	for i := range u {
		if total > 0 {
			u[i] /= total
		} else {
			u[i] = float64(i) / float64(len(u)-1)
		}
	}
	return u
}

// generateBezier solves the least-squares problem for the tangent
// magnitudes with the end tangents fixed.
func (f *fitter) generateBezier(first, last int, u []float64, t1, t2 Point) CubicBez {
	p0, p3 := f.pts[first], f.pts[last]

	var c00, c01, c11, x0, x1 float64
	for i, t := range u {
		mt := 1 - t
		b0 := mt * mt * mt
		b1 := 3 * t * mt * mt
		b2 := 3 * t * t * mt
		b3 := t * t * t

		a0 := t1.Mul(b1)
		a1 := t2.Mul(b2)
		c00 += a0.Dot(a0)
		c01 += a0.Dot(a1)
		c11 += a1.Dot(a1)

		tmp := f.pts[first+i].Sub(p0.Mul(b0 + b1)).Sub(p3.Mul(b2 + b3))
		x0 += a0.Dot(tmp)
		x1 += a1.Dot(tmp)
	}

	det := c00*c11 - c01*c01
	var alphaL, alphaR float64
	if det != 0 {
		alphaL = (x0*c11 - x1*c01) / det
		alphaR = (c00*x1 - c01*x0) / det
	}

	segLength := p0.Distance(p3)
	eps := 1e-6 * segLength
	if alphaL < eps || alphaR < eps || math.IsNaN(alphaL) || math.IsNaN(alphaR) {
		alphaL = segLength / 3
		alphaR = alphaL
	}
	return CubicBez{P0: p0, P1: p0.Add(t1.Mul(alphaL)), P2: p3.Add(t2.Mul(alphaR)), P3: p3}
}

// maxError returns the largest squared distance between a sample and its
// point on the curve, and the index of that sample.
func (f *fitter) maxError(first, last int, bez CubicBez, u []float64) (float64, int) {
	split := (first + last) / 2
	var maxDist float64
	for i := first + 1; i < last; i++ {
		d := bez.Eval(u[i-first]).Sub(f.pts[i])
		if dist := d.Dot(d); dist >= maxDist {
			maxDist = dist
			split = i
		}
	}
	return maxDist, split
}

// reparameterize improves each sample's parameter with one Newton-Raphson
// step toward the closest point on the curve.
func (f *fitter) reparameterize(first, last int, u []float64, bez CubicBez) []float64 {
	out := make([]float64, len(u))
	for i, t := range u {
		p := f.pts[first+i]
		q := bez.Eval(t)
		d1 := bez.Deriv(t)
		d2 := bez.Deriv2(t)
		diff := q.Sub(p)
		den := d1.Dot(d1) + diff.Dot(d2)
		if den == 0 {
			out[i] = t
			continue
		}
		out[i] = min(1, max(0, t-diff.Dot(d1)/den))
	}
	return out
}
