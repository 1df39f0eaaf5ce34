package outline

import (
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/glyph"
)

// ToGoText converts contours into go-text outline segments, in font units
// with y up.
func ToGoText(contours []glyph.Contour) []opentype.Segment {
	var segs []opentype.Segment
	for _, c := range contours {
		if len(c) == 0 {
			continue
		}
		segs = append(segs, opentype.Segment{
			Op:   opentype.SegmentOpMoveTo,
			Args: [3]opentype.SegmentPoint{toPoint(c[0].Start())},
		})
		for _, s := range c {
			var seg opentype.Segment
			switch s.Kind {
			case glyph.SegmentLine:
				seg.Op = opentype.SegmentOpLineTo
				seg.Args[0] = toPoint(s.P[1])
			case glyph.SegmentQuad:
				seg.Op = opentype.SegmentOpQuadTo
				seg.Args[0], seg.Args[1] = toPoint(s.P[1]), toPoint(s.P[2])
			case glyph.SegmentCubic:
				seg.Op = opentype.SegmentOpCubeTo
				seg.Args[0], seg.Args[1], seg.Args[2] = toPoint(s.P[1]), toPoint(s.P[2]), toPoint(s.P[3])
			}
			segs = append(segs, seg)
		}
	}
	return segs
}

func toPoint(p glyph.Point) opentype.SegmentPoint {
	return opentype.SegmentPoint{X: float32(p.X), Y: float32(p.Y)}
}
