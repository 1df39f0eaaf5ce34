package outline

import (
	"bytes"
	"image"
	"testing"

	"github.com/go-text/typesetting/font/opentype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyph"
)

// rect returns a counter-clockwise rectangle contour.
func rect(x0, y0, x1, y1 float64) glyph.Contour {
	a, b, c, d := glyph.Pt(x0, y0), glyph.Pt(x1, y0), glyph.Pt(x1, y1), glyph.Pt(x0, y1)
	return glyph.Contour{glyph.LineSeg(a, b), glyph.LineSeg(b, c), glyph.LineSeg(c, d), glyph.LineSeg(d, a)}
}

func TestToSFNT(t *testing.T) {
	segs := ToSFNT([]glyph.Contour{rect(0, 0, 100, 50)})
	require.Len(t, segs, 5)

	assert.Equal(t, sfnt.SegmentOpMoveTo, segs[0].Op)
	assert.Equal(t, fixed.Point26_6{}, segs[0].Args[0])
	for _, s := range segs[1:] {
		assert.Equal(t, sfnt.SegmentOpLineTo, s.Op)
	}
	// y grows downward in sfnt segments.
	assert.Equal(t, fixed.Point26_6{X: 6400, Y: -3200}, segs[2].Args[0])

	b := segs.Bounds()
	assert.Equal(t, fixed.Point26_6{X: 0, Y: -3200}, b.Min)
	assert.Equal(t, fixed.Point26_6{X: 6400, Y: 0}, b.Max)
}

func TestToSFNTCurves(t *testing.T) {
	c := glyph.Contour{
		glyph.QuadSeg(glyph.Pt(0, 0), glyph.Pt(50, 100), glyph.Pt(100, 0)),
		glyph.CubicSeg(glyph.Pt(100, 0), glyph.Pt(70, -30), glyph.Pt(30, -30), glyph.Pt(0, 0)),
	}
	segs := ToSFNT([]glyph.Contour{c})
	require.Len(t, segs, 3)
	assert.Equal(t, sfnt.SegmentOpQuadTo, segs[1].Op)
	assert.Equal(t, fixed.Point26_6{X: 3200, Y: -6400}, segs[1].Args[0])
	assert.Equal(t, sfnt.SegmentOpCubeTo, segs[2].Op)
	assert.Equal(t, fixed.Point26_6{X: 0, Y: 0}, segs[2].Args[2])
}

func TestFromSFNTRoundTrip(t *testing.T) {
	in := []glyph.Contour{rect(0, 0, 100, 50), rect(200, 0, 300, 300).Reversed()}
	out := FromSFNT(ToSFNT(in))
	require.Len(t, out, 2)
	for i := range in {
		assert.Equal(t, in[i], out[i])
	}
}

func TestFromSFNTClosesOpenContour(t *testing.T) {
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{{X: 0, Y: 0}}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{{X: 640, Y: 0}}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{{X: 640, Y: -640}}},
	}
	out := FromSFNT(segs)
	require.Len(t, out, 1)
	require.Len(t, out[0], 3)
	assert.True(t, out[0].Closed(glyph.DefaultEpsilon))
	assert.NoError(t, out[0].Validate(glyph.DefaultEpsilon))
	assert.InDelta(t, 50, out[0].Area(), 1e-9)
}

func TestToGoText(t *testing.T) {
	segs := ToGoText([]glyph.Contour{rect(0, 0, 100, 50)})
	require.Len(t, segs, 5)
	assert.Equal(t, opentype.SegmentOpMoveTo, segs[0].Op)
	assert.Equal(t, opentype.SegmentOpLineTo, segs[2].Op)
	// Font units, y up.
	assert.Equal(t, opentype.SegmentPoint{X: 100, Y: 50}, segs[2].Args[0])

	cubic := glyph.Contour{
		glyph.CubicSeg(glyph.Pt(0, 0), glyph.Pt(10, 20), glyph.Pt(30, 20), glyph.Pt(40, 0)),
		glyph.LineSeg(glyph.Pt(40, 0), glyph.Pt(0, 0)),
	}
	segs = ToGoText([]glyph.Contour{cubic})
	require.Len(t, segs, 3)
	assert.Equal(t, opentype.SegmentOpCubeTo, segs[1].Op)
	assert.Equal(t, opentype.SegmentPoint{X: 30, Y: 20}, segs[1].Args[1])
}

func TestToQuadraticExactForRaisedQuad(t *testing.T) {
	q := glyph.QuadBez{P0: glyph.Pt(0, 0), P1: glyph.Pt(50, 100), P2: glyph.Pt(100, 0)}
	c := glyph.Contour{glyph.CubicSegOf(q.Raise()), glyph.LineSeg(glyph.Pt(100, 0), glyph.Pt(0, 0))}

	out := ToQuadratic([]glyph.Contour{c}, 0)
	require.Len(t, out, 1)
	require.Len(t, out[0], 2)
	assert.Equal(t, glyph.SegmentQuad, out[0][0].Kind)
	assert.InDelta(t, 50, out[0][0].P[1].X, 1e-9)
	assert.InDelta(t, 100, out[0][0].P[1].Y, 1e-9)
	assert.Equal(t, glyph.SegmentLine, out[0][1].Kind)
}

func TestToQuadraticSplitsWithinTolerance(t *testing.T) {
	// Quarter circle of radius 500.
	const k = 0.5522847498 * 500
	arc := glyph.CubicSeg(glyph.Pt(500, 0), glyph.Pt(500, k), glyph.Pt(k, 500), glyph.Pt(0, 500))
	c := glyph.Contour{arc, glyph.LineSeg(glyph.Pt(0, 500), glyph.Pt(0, 0)), glyph.LineSeg(glyph.Pt(0, 0), glyph.Pt(500, 0))}

	out := ToQuadratic([]glyph.Contour{c}, DefaultQuadTolerance)
	require.Len(t, out, 1)
	quads := out[0][:len(out[0])-2]
	assert.Greater(t, len(quads), 1)
	assert.NoError(t, out[0].Validate(glyph.DefaultEpsilon))

	// Each piece stays within tolerance of the matching part of the arc.
	cubic := arc.Cubic()
	n := float64(len(quads))
	for i, s := range quads {
		require.Equal(t, glyph.SegmentQuad, s.Kind)
		part := cubic.Subsegment(float64(i)/n, float64(i+1)/n)
		assert.LessOrEqual(t, quadError(part, s.Quad()), DefaultQuadTolerance+1e-9)
	}
}

func TestRasterizeCoverage(t *testing.T) {
	tests := []struct {
		name     string
		contours []glyph.Contour
		want     float64
	}{
		{"quarter", []glyph.Contour{rect(0, 0, 500, 500)}, 0.25},
		{"hole", []glyph.Contour{rect(0, 0, 1000, 1000), rect(250, 250, 750, 750).Reversed()}, 0.75},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := Rasterize(tt.contours, 100, 100, EmView)
			assert.InDelta(t, tt.want, Coverage(img), 0.01)
		})
	}
}

func TestRasterizeFlipsY(t *testing.T) {
	// The bottom half of the em lands in the bottom rows of the image.
	img := Rasterize([]glyph.Contour{rect(0, 0, 1000, 500)}, 10, 10, EmView)
	assert.Equal(t, uint8(0), img.AlphaAt(5, 2).A)
	assert.Equal(t, uint8(255), img.AlphaAt(5, 7).A)
}

func TestRasterizeDegenerateView(t *testing.T) {
	img := Rasterize([]glyph.Contour{rect(0, 0, 10, 10)}, 8, 8, glyph.Rect{})
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
	assert.Zero(t, Coverage(img))
}

func TestSynthesizedStrokeRoundTrip(t *testing.T) {
	c, err := glyph.SynthesizeStroke("heng_zhe_wan_gou", nil, glyph.DefaultStyle())
	require.NoError(t, err)

	img := Rasterize([]glyph.Contour{c}, 128, 128, EmView)
	assert.Greater(t, Coverage(img), 0.01)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	back := FromSFNT(ToSFNT([]glyph.Contour{c}))
	require.Len(t, back, 1)
	assert.InDelta(t, c.Area(), back[0].Area(), c.Area()*1e-3)
}
