package glyph

import (
	"math"
	"sort"
)

// Curve primitives. Based on kurbo patterns, adapted for outline synthesis.

// Rect represents an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points, normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// emptyRect is the identity for Union.
func emptyRect() Rect {
	inf := math.Inf(1)
	return Rect{Min: Point{X: inf, Y: inf}, Max: Point{X: -inf, Y: -inf}}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// IsEmpty reports whether the rectangle contains no points.
func (r Rect) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Extend returns the rectangle grown to include p.
func (r Rect) Extend(p Point) Rect {
	return r.Union(Rect{Min: p, Max: p})
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Overlaps reports whether the two rectangles share any point.
// Rectangles that only touch along an edge count as overlapping.
func (r Rect) Overlaps(other Rect) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

// Inset shrinks the rectangle by d on every side. A negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{Min: Point{r.Min.X + d, r.Min.Y + d}, Max: Point{r.Max.X - d, r.Max.Y - d}}
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve.
// P0 is the start point, P1 the control point, P2 the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Deriv returns the first derivative at t.
func (q QuadBez) Deriv(t float64) Point {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	return d0.Lerp(d1, t).Mul(2)
}

// Subsegment returns the portion of the curve from t0 to t1.
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Add(q.Deriv(t0).Mul((t1 - t0) / 2))
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Extrema returns parameter values in (0, 1) where either coordinate's
// derivative vanishes.
func (q QuadBez) Extrema() []float64 {
	var result []float64
	d0 := q.P1.Sub(q.P0)
	dd := q.P2.Sub(q.P1).Sub(d0)
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := NewRect(q.P0, q.P2)
	for _, t := range q.Extrema() {
		bbox = bbox.Extend(q.Eval(t))
	}
	return bbox
}

// Raise elevates the quadratic to an exact cubic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Lerp(q.P1, 2.0/3.0),
		P2: q.P2.Lerp(q.P1, 2.0/3.0),
		P3: q.P2,
	}
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0..P3.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t
	return Point{
		X: mt2*mt*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t2*t*c.P3.X,
		Y: mt2*mt*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t2*t*c.P3.Y,
	}
}

// Deriv returns the first derivative at t.
func (c CubicBez) Deriv(t float64) Point {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	mt := 1 - t
	return d0.Mul(3 * mt * mt).Add(d1.Mul(6 * mt * t)).Add(d2.Mul(3 * t * t))
}

// Deriv2 returns the second derivative at t.
func (c CubicBez) Deriv2(t float64) Point {
	a := c.P2.Sub(c.P1.Mul(2)).Add(c.P0)
	b := c.P3.Sub(c.P2.Mul(2)).Add(c.P1)
	return a.Lerp(b, t).Mul(6)
}

// Split divides the curve at t using de Casteljau's algorithm.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)
	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Subsegment returns the portion of the curve from t0 to t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) / 3
	return CubicBez{
		P0: p0,
		P1: p0.Add(c.Deriv(t0).Mul(scale)),
		P2: p3.Sub(c.Deriv(t1).Mul(scale)),
		P3: p3,
	}
}

// Extrema returns parameter values in [0, 1] where either coordinate's
// derivative vanishes.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	result = append(result, SolveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, SolveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)
	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		bbox = bbox.Extend(c.Eval(t))
	}
	return bbox
}
