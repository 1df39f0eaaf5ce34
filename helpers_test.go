package glyph

import "math"

// rectContour returns a counter-clockwise rectangle.
func rectContour(x0, y0, x1, y1 float64) Contour {
	a, b, c, d := Pt(x0, y0), Pt(x1, y0), Pt(x1, y1), Pt(x0, y1)
	return Contour{LineSeg(a, b), LineSeg(b, c), LineSeg(c, d), LineSeg(d, a)}
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
