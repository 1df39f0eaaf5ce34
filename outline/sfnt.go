// Package outline converts glyph contours into the segment formats used by
// font tooling and renders them into preview images.
//
// Contours are in font units with y pointing up. The sfnt conversions use
// the 26.6 fixed point, y-down segments that sfnt.Font.LoadGlyph returns;
// the go-text conversions keep font units and y-up.
package outline

import (
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyph"
)

// ToSFNT converts contours into sfnt segments. Every contour starts with a
// MoveTo; lines, quadratics and cubics keep their kind.
func ToSFNT(contours []glyph.Contour) sfnt.Segments {
	var segs sfnt.Segments
	for _, c := range contours {
		if len(c) == 0 {
			continue
		}
		segs = append(segs, sfnt.Segment{
			Op:   sfnt.SegmentOpMoveTo,
			Args: [3]fixed.Point26_6{toFixed(c[0].Start())},
		})
		for _, s := range c {
			switch s.Kind {
			case glyph.SegmentLine:
				segs = append(segs, sfnt.Segment{
					Op:   sfnt.SegmentOpLineTo,
					Args: [3]fixed.Point26_6{toFixed(s.P[1])},
				})
			case glyph.SegmentQuad:
				segs = append(segs, sfnt.Segment{
					Op:   sfnt.SegmentOpQuadTo,
					Args: [3]fixed.Point26_6{toFixed(s.P[1]), toFixed(s.P[2])},
				})
			case glyph.SegmentCubic:
				segs = append(segs, sfnt.Segment{
					Op:   sfnt.SegmentOpCubeTo,
					Args: [3]fixed.Point26_6{toFixed(s.P[1]), toFixed(s.P[2]), toFixed(s.P[3])},
				})
			}
		}
	}
	return segs
}

// FromSFNT converts sfnt segments, as loaded from a font, back into
// contours. A contour that does not end on its start point is closed with a
// line.
func FromSFNT(segs sfnt.Segments) []glyph.Contour {
	var (
		out     []glyph.Contour
		cur     glyph.Contour
		start   glyph.Point
		current glyph.Point
	)
	flush := func() {
		if len(cur) == 0 {
			return
		}
		if !current.Approx(start, glyph.DefaultEpsilon) {
			cur = append(cur, glyph.LineSeg(current, start))
		}
		out = append(out, cur)
		cur = nil
	}
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			start = fromFixed(s.Args[0])
			current = start
		case sfnt.SegmentOpLineTo:
			p := fromFixed(s.Args[0])
			cur = append(cur, glyph.LineSeg(current, p))
			current = p
		case sfnt.SegmentOpQuadTo:
			p := fromFixed(s.Args[1])
			cur = append(cur, glyph.QuadSeg(current, fromFixed(s.Args[0]), p))
			current = p
		case sfnt.SegmentOpCubeTo:
			p := fromFixed(s.Args[2])
			cur = append(cur, glyph.CubicSeg(current, fromFixed(s.Args[0]), fromFixed(s.Args[1]), p))
			current = p
		}
	}
	flush()
	return out
}

// toFixed converts a font-unit point to 26.6 fixed point, flipping y.
func toFixed(p glyph.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(-p.Y * 64)),
	}
}

func fromFixed(p fixed.Point26_6) glyph.Point {
	return glyph.Pt(float64(p.X)/64, -float64(p.Y)/64)
}
