package outline

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/gogpu/glyph"
)

// EmView is the 1000-unit em square in which strokes are synthesized.
var EmView = glyph.Rect{Max: glyph.Pt(1000, 1000)}

// Rasterize fills contours with the nonzero rule into a width × height
// coverage mask. view is the font-unit rectangle mapped onto the image;
// y is flipped so the image shows the glyph upright.
func Rasterize(contours []glyph.Contour, width, height int, view glyph.Rect) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, width, height))
	if view.Width() <= 0 || view.Height() <= 0 || width <= 0 || height <= 0 {
		return img
	}
	sx := float64(width) / view.Width()
	sy := float64(height) / view.Height()
	at := func(p glyph.Point) (float32, float32) {
		return float32((p.X - view.Min.X) * sx), float32((view.Max.Y - p.Y) * sy)
	}

	r := vector.NewRasterizer(width, height)
	for _, c := range contours {
		if len(c) == 0 {
			continue
		}
		r.MoveTo(at(c[0].Start()))
		for _, s := range c {
			switch s.Kind {
			case glyph.SegmentLine:
				r.LineTo(at(s.P[1]))
			case glyph.SegmentQuad:
				x1, y1 := at(s.P[1])
				x2, y2 := at(s.P[2])
				r.QuadTo(x1, y1, x2, y2)
			case glyph.SegmentCubic:
				x1, y1 := at(s.P[1])
				x2, y2 := at(s.P[2])
				x3, y3 := at(s.P[3])
				r.CubeTo(x1, y1, x2, y2, x3, y3)
			}
		}
		r.ClosePath()
	}
	r.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	return img
}

// Coverage returns the mean alpha of a mask, from 0 to 1.
func Coverage(img *image.Alpha) float64 {
	b := img.Bounds()
	if b.Empty() {
		return 0
	}
	var sum float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sum += float64(img.AlphaAt(x, y).A) / 255
		}
	}
	return sum / float64(b.Dx()*b.Dy())
}

// WritePNG encodes a mask as black ink on white.
func WritePNG(w io.Writer, mask *image.Alpha) error {
	b := mask.Bounds()
	img := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetGray(x, y, color.Gray{Y: 255 - mask.AlphaAt(x, y).A})
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("outline: encode png: %w", err)
	}
	return nil
}
