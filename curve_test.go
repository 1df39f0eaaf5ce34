package glyph

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

// -------------------------------------------------------------------
// Rect Tests
// -------------------------------------------------------------------

func TestRect_NewRect(t *testing.T) {
	tests := []struct {
		name      string
		p1, p2    Point
		expectMin Point
		expectMax Point
	}{
		{
			name: "normal order",
			p1:   Pt(0, 0), p2: Pt(10, 10),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "reversed order",
			p1:   Pt(10, 10), p2: Pt(0, 0),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "mixed",
			p1:   Pt(5, 0), p2: Pt(0, 5),
			expectMin: Pt(0, 0), expectMax: Pt(5, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(tt.p1, tt.p2)
			if !pointsEqual(r.Min, tt.expectMin, epsilon) {
				t.Errorf("Min = %v, want %v", r.Min, tt.expectMin)
			}
			if !pointsEqual(r.Max, tt.expectMax, epsilon) {
				t.Errorf("Max = %v, want %v", r.Max, tt.expectMax)
			}
		})
	}
}

func TestRect_UnionWithEmpty(t *testing.T) {
	r := NewRect(Pt(3, 3), Pt(10, 10))
	if !emptyRect().IsEmpty() {
		t.Error("emptyRect() should be empty")
	}
	if u := emptyRect().Union(r); u != r {
		t.Errorf("empty.Union(r) = %v, want %v", u, r)
	}
	u := NewRect(Pt(0, 0), Pt(5, 5)).Union(r)
	if !pointsEqual(u.Min, Pt(0, 0), epsilon) || !pointsEqual(u.Max, Pt(10, 10), epsilon) {
		t.Errorf("Union = %v, want (0,0)-(10,10)", u)
	}
}

func TestRect_Overlaps(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(10, 10))
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"inside", NewRect(Pt(2, 2), Pt(3, 3)), true},
		{"crossing", NewRect(Pt(5, 5), Pt(15, 15)), true},
		{"touching edge", NewRect(Pt(10, 0), Pt(20, 10)), true},
		{"apart", NewRect(Pt(11, 0), Pt(20, 10)), false},
		{"above", NewRect(Pt(0, 11), Pt(10, 20)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Overlaps(tt.other); got != tt.expect {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.other, got, tt.expect)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(10, 6)).Inset(2)
	if r.Width() != 6 || r.Height() != 2 {
		t.Errorf("Inset(2) = %vx%v, want 6x2", r.Width(), r.Height())
	}
	if !r.Contains(Pt(5, 3)) || r.Contains(Pt(1, 1)) {
		t.Errorf("Inset(2) = %v has wrong extent", r)
	}
}

// -------------------------------------------------------------------
// QuadBez Tests
// -------------------------------------------------------------------

func TestQuadBez_Eval(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(5, 10), Pt(10, 0)}

	tests := []struct {
		name   string
		t      float64
		expect Point
	}{
		{"t=0", 0, Pt(0, 0)},
		{"t=1", 1, Pt(10, 0)},
		{"t=0.5", 0.5, Pt(5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := q.Eval(tt.t)
			if !pointsEqual(result, tt.expect, epsilon) {
				t.Errorf("Eval(%v) = %v, want %v", tt.t, result, tt.expect)
			}
		})
	}
}

func TestQuadBez_Subsegment(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(5, 10), Pt(10, 0)}
	sub := q.Subsegment(0.2, 0.6)
	for i := 0; i <= 10; i++ {
		u := float64(i) / 10
		if got, want := sub.Eval(u), q.Eval(0.2+0.4*u); !pointsEqual(got, want, 1e-9) {
			t.Errorf("sub.Eval(%v) = %v, want %v", u, got, want)
		}
	}
}

func TestQuadBez_Extrema(t *testing.T) {
	q := QuadBez{Pt(-1, 1), Pt(0, -1), Pt(1, 1)}
	extrema := q.Extrema()

	if len(extrema) != 1 {
		t.Fatalf("Expected 1 extremum, got %d: %v", len(extrema), extrema)
	}
	if math.Abs(extrema[0]-0.5) > epsilon {
		t.Errorf("Extremum at %v, want 0.5", extrema[0])
	}
}

func TestQuadBez_BoundingBox(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(5, 10), Pt(10, 0)}
	bbox := q.BoundingBox()
	if math.Abs(bbox.Max.Y-5) > epsilon {
		t.Errorf("BoundingBox Max.Y = %v, want 5", bbox.Max.Y)
	}
	if !bbox.Contains(q.P0) || !bbox.Contains(q.P2) {
		t.Error("BoundingBox should contain endpoints")
	}
}

func TestQuadBez_Raise(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(5, 10), Pt(10, 0)}
	c := q.Raise()

	if c.P0 != q.P0 || c.P3 != q.P2 {
		t.Errorf("Raised ends = %v, %v, want %v, %v", c.P0, c.P3, q.P0, q.P2)
	}
	for i := 0; i <= 10; i++ {
		tt := float64(i) / 10.0
		if qp, cp := q.Eval(tt), c.Eval(tt); !pointsEqual(qp, cp, 1e-9) {
			t.Errorf("Mismatch at t=%v: quad=%v, cubic=%v", tt, qp, cp)
		}
	}
}

// -------------------------------------------------------------------
// CubicBez Tests
// -------------------------------------------------------------------

func TestCubicBez_Split(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	c1, c2 := c.Split(0.5)

	if c1.P3 != c2.P0 {
		t.Errorf("Split junction: c1.P3=%v != c2.P0=%v", c1.P3, c2.P0)
	}
	for i := 0; i <= 10; i++ {
		tt := float64(i) / 10.0
		original := c.Eval(tt)
		var split Point
		if tt <= 0.5 {
			split = c1.Eval(tt * 2)
		} else {
			split = c2.Eval((tt - 0.5) * 2)
		}
		if !pointsEqual(original, split, 1e-9) {
			t.Errorf("Mismatch at t=%v: original=%v, split=%v", tt, original, split)
		}
	}
}

func TestCubicBez_Subsegment(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	sub := c.Subsegment(0.25, 0.75)

	for i := 0; i <= 10; i++ {
		tSub := float64(i) / 10.0
		if subPt, origPt := sub.Eval(tSub), c.Eval(0.25+tSub*0.5); !pointsEqual(subPt, origPt, 1e-8) {
			t.Errorf("Mismatch at tSub=%v: sub=%v, orig=%v", tSub, subPt, origPt)
		}
	}
}

func TestCubicBez_Deriv(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 1), Pt(3, 1)}
	if d0 := c.Deriv(0); !pointsEqual(d0, Pt(3, 0), epsilon) {
		t.Errorf("Deriv(0) = %v, want (3, 0)", d0)
	}
	if d1 := c.Deriv(1); !pointsEqual(d1, Pt(3, 0), epsilon) {
		t.Errorf("Deriv(1) = %v, want (3, 0)", d1)
	}
	// Numeric check of the second derivative.
	const h = 1e-5
	num := c.Deriv(0.5 + h).Sub(c.Deriv(0.5 - h)).Mul(1 / (2 * h))
	if d2 := c.Deriv2(0.5); !pointsEqual(d2, num, 1e-4) {
		t.Errorf("Deriv2(0.5) = %v, want %v", d2, num)
	}
}

func TestCubicBez_BoundingBox(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	bbox := c.BoundingBox()
	if math.Abs(bbox.Max.Y-7.5) > 1e-9 {
		t.Errorf("BoundingBox Max.Y = %v, want 7.5", bbox.Max.Y)
	}
	for i := 0; i <= 100; i++ {
		tt := float64(i) / 100.0
		if p := c.Eval(tt); !bbox.Inset(-1e-9).Contains(p) {
			t.Errorf("BoundingBox should contain point at t=%v: %v", tt, p)
		}
	}
}
