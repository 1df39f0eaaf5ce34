package glyph

import "math"

// weightSamples are the bone parameters at which EstimateWeight measures.
var weightSamples = [...]float64{0.25, 0.5, 0.75}

// EstimateWeight measures the stroke weight of an outline drawn around a
// skeleton. At interior samples of every bone it casts the bone normal in
// both directions, takes the nearest outline crossing on each side and
// averages the widths weighted by bone length. Samples where either side
// misses the outline are skipped. It returns 0 when nothing was measured.
func EstimateWeight(contours []Contour, sk Skeleton) float64 {
	bounds := BoundsOf(contours)
	if bounds.IsEmpty() {
		return 0
	}
	reach := 2 * (bounds.Width() + bounds.Height())

	var polys [][]Point
	for _, c := range contours {
		polys = append(polys, c.Flatten(DefaultFitTolerance/4))
	}

	var sum, total float64
	for _, b := range sk.Bones {
		seg := sk.boneSegment(b)
		l := seg.Length()
		if l <= DefaultEpsilon {
			continue
		}
		for _, t := range weightSamples {
			p := seg.Eval(t)
			n := seg.Deriv(t).Normalize().Perp()
			left, okL := nearestHit(polys, p, p.Add(n.Mul(reach)))
			right, okR := nearestHit(polys, p, p.Sub(n.Mul(reach)))
			if !okL || !okR {
				continue
			}
			sum += (left + right) * l
			total += l
		}
	}
	if total == 0 {
		return 0
	}
	w := sum / total
	Logger().Debug("weight estimated", "weight", w, "bones", len(sk.Bones))
	return w
}

// nearestHit returns the distance from p0 to the closest crossing of the
// segment p0-p1 with any closed polyline.
func nearestHit(polys [][]Point, p0, p1 Point) (float64, bool) {
	best := math.Inf(1)
	for _, poly := range polys {
		for i := range poly {
			q0, q1 := poly[i], poly[(i+1)%len(poly)]
			if hit, ok := segmentSegment(p0, p1, q0, q1); ok {
				best = math.Min(best, hit.Distance(p0))
			}
		}
	}
	return best, !math.IsInf(best, 1)
}
