package glyph

import (
	"math"
	"testing"
)

func TestResolveOverlapFastPath(t *testing.T) {
	in := []Contour{rectContour(0, 0, 100, 100), rectContour(200, 0, 300, 100)}
	out, err := ResolveOverlap(in)
	if err != nil {
		t.Fatalf("ResolveOverlap() = %v", err)
	}
	if len(out) != 2 || &out[0] != &in[0] {
		t.Errorf("disjoint input was not returned as is: %v", out)
	}

	single := []Contour{rectContour(0, 0, 10, 10)}
	if out, _ := ResolveOverlap(single); &out[0] != &single[0] {
		t.Error("single contour was not returned as is")
	}
	if out, err := ResolveOverlap(nil); err != nil || out != nil {
		t.Errorf("ResolveOverlap(nil) = %v, %v", out, err)
	}
}

func TestResolveOverlapMergesRectangles(t *testing.T) {
	out, err := ResolveOverlap([]Contour{rectContour(0, 0, 100, 100), rectContour(50, 50, 150, 150)})
	if err != nil {
		t.Fatalf("ResolveOverlap() = %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d contours, want 1", len(out))
	}
	if a := out[0].Area(); !near(a, 10000+10000-2500, 1e-6) {
		t.Errorf("Area() = %v, want 17500", a)
	}
	if err := out[0].Validate(DefaultEpsilon); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestResolveOverlapKeepsCounter(t *testing.T) {
	// Four bars drawing 口 enclose a counter that must survive the union.
	bars := []Contour{
		rectContour(0, 0, 300, 40),
		rectContour(0, 260, 300, 300),
		rectContour(0, 0, 40, 300),
		rectContour(260, 0, 300, 300),
	}
	out, err := ResolveOverlap(bars)
	if err != nil {
		t.Fatalf("ResolveOverlap() = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d contours, want 2", len(out))
	}
	var outer, holes int
	for _, c := range out {
		if c.Area() > 0 {
			outer++
		} else {
			holes++
		}
	}
	if outer != 1 || holes != 1 {
		t.Errorf("got %d outer and %d holes, want 1 and 1", outer, holes)
	}
	if a := AreaOf(out); !near(a, 300*300-220*220, 1e-6) {
		t.Errorf("AreaOf() = %v, want %v", a, 300*300-220*220)
	}
}

func TestResolveOverlapCutsHoles(t *testing.T) {
	in := []Contour{
		rectContour(0, 0, 300, 300),
		rectContour(100, 100, 200, 200).Reversed(),
		rectContour(250, 100, 350, 200),
	}
	out, err := ResolveOverlap(in)
	if err != nil {
		t.Fatalf("ResolveOverlap() = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d contours, want 2", len(out))
	}
	want := 300*300 + 50*100 - 100*100.0
	if a := AreaOf(out); !near(a, want, 1e-6) {
		t.Errorf("AreaOf() = %v, want %v", a, want)
	}
	winding := func(p Point) int {
		return out[0].Winding(p) + out[1].Winding(p)
	}
	if w := winding(Pt(150, 150)); w != 0 {
		t.Errorf("winding inside the hole = %d, want 0", w)
	}
	if w := winding(Pt(50, 50)); w != 1 {
		t.Errorf("winding inside the fill = %d, want 1", w)
	}
}

func TestResolveOverlapIgnoresErasingHole(t *testing.T) {
	in := []Contour{
		rectContour(0, 0, 100, 100),
		rectContour(-10, -10, 110, 110).Reversed(),
	}
	out, err := ResolveOverlap(in)
	if err != nil {
		t.Fatalf("ResolveOverlap() = %v", err)
	}
	if len(out) != 1 || !near(out[0].Area(), 10000, 1e-6) {
		t.Errorf("got %d contours with area %v, want the filled square", len(out), AreaOf(out))
	}
}

func TestResolveOverlapAllHoles(t *testing.T) {
	in := []Contour{
		rectContour(0, 0, 100, 100).Reversed(),
		rectContour(50, 50, 150, 150).Reversed(),
	}
	out, err := ResolveOverlap(in)
	if err != nil {
		t.Fatalf("ResolveOverlap() = %v", err)
	}
	if len(out) != 1 || !near(out[0].Area(), 17500, 1e-6) {
		t.Errorf("got %d contours with area %v, want one with 17500", len(out), AreaOf(out))
	}
}

func TestResolveOverlapIsIdempotent(t *testing.T) {
	inputs := map[string][]Contour{
		"squares": {rectContour(0, 0, 100, 100), rectContour(50, 50, 150, 150)},
		"counter": {
			rectContour(0, 0, 300, 40), rectContour(0, 260, 300, 300),
			rectContour(0, 0, 40, 300), rectContour(260, 0, 300, 300),
		},
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			once, err := ResolveOverlap(in)
			if err != nil {
				t.Fatal(err)
			}
			twice, err := ResolveOverlap(once)
			if err != nil {
				t.Fatal(err)
			}
			if len(once) != len(twice) {
				t.Fatalf("%d contours after one pass, %d after two", len(once), len(twice))
			}
			for i := range once {
				if len(once[i]) != len(twice[i]) {
					t.Errorf("contour %d: %d segments vs %d", i, len(once[i]), len(twice[i]))
					continue
				}
				for j := range once[i] {
					if once[i][j] != twice[i][j] {
						t.Errorf("contour %d segment %d: %v vs %v", i, j, once[i][j], twice[i][j])
					}
				}
			}
		})
	}
}

func TestResolveOverlapCrossStrokes(t *testing.T) {
	heng, err := SynthesizeStroke("heng", nil, DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	shu, err := SynthesizeStroke("shu", nil, DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	out, err := ResolveOverlap([]Contour{heng, shu})
	if err != nil {
		t.Fatalf("ResolveOverlap() = %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d contours, want 1", len(out))
	}
	want := heng.Area() + shu.Area() - 40*40
	if a := out[0].Area(); math.Abs(a-want) > 1e-6 {
		t.Errorf("Area() = %v, want %v", a, want)
	}
}

func TestResolveOverlapBatch(t *testing.T) {
	glyphs := [][]Contour{
		{rectContour(0, 0, 100, 100), rectContour(50, 50, 150, 150)},
		nil,
		{rectContour(0, 0, 10, 10), rectContour(20, 0, 30, 10)},
	}
	results := ResolveOverlapBatch(glyphs)
	if len(results) != len(glyphs) {
		t.Fatalf("got %d results, want %d", len(results), len(glyphs))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("glyph %d: %v", i, r.Err)
		}
	}
	if len(results[0].Contours) != 1 || len(results[1].Contours) != 0 || len(results[2].Contours) != 2 {
		t.Errorf("contour counts = %d, %d, %d, want 1, 0, 2",
			len(results[0].Contours), len(results[1].Contours), len(results[2].Contours))
	}
}

func BenchmarkResolveOverlap(b *testing.B) {
	heng, _ := SynthesizeStroke("heng", nil, DefaultStyle())
	hook, _ := SynthesizeStroke("heng_zhe_wan_gou", nil, DefaultStyle())
	in := []Contour{heng, hook}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := ResolveOverlap(in); err != nil {
			b.Fatal(err)
		}
	}
}
