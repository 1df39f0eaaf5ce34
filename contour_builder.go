package glyph

import "fmt"

// ContourBuilder accumulates segments into a contour. It is append-only:
// segments already added are never modified, and the first continuity
// violation is remembered and reported by Close.
//
// MoveTo/LineTo/QuadTo/CubicTo start from the current point and cannot
// produce gaps. Append takes a segment computed elsewhere and verifies it
// starts where the chain currently ends.
type ContourBuilder struct {
	segs    []Segment
	start   Point
	current Point
	started bool
	eps     float64
	err     error
}

// NewContourBuilder returns a builder that treats points closer than eps as
// coincident. A non-positive eps uses DefaultEpsilon.
func NewContourBuilder(eps float64) *ContourBuilder {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	return &ContourBuilder{eps: eps}
}

// MoveTo sets the start of the contour. It may only be called once.
func (b *ContourBuilder) MoveTo(p Point) *ContourBuilder {
	if b.started {
		b.fail(fmt.Errorf("%w: second MoveTo at %v", ErrDiscontinuous, p))
		return b
	}
	b.start, b.current, b.started = p, p, true
	return b
}

// LineTo adds a straight segment. Zero-length lines are skipped.
func (b *ContourBuilder) LineTo(p Point) *ContourBuilder {
	if !b.ensureStarted(p) || p.Approx(b.current, b.eps) {
		return b
	}
	return b.push(LineSeg(b.current, p))
}

// QuadTo adds a quadratic segment. Fully degenerate curves are skipped.
func (b *ContourBuilder) QuadTo(ctrl, p Point) *ContourBuilder {
	if !b.ensureStarted(p) {
		return b
	}
	seg := QuadSeg(b.current, ctrl, p)
	if seg.IsDegenerate(b.eps) {
		return b
	}
	return b.push(seg)
}

// CubicTo adds a cubic segment. Fully degenerate curves are skipped.
func (b *ContourBuilder) CubicTo(c1, c2, p Point) *ContourBuilder {
	if !b.ensureStarted(p) {
		return b
	}
	seg := CubicSeg(b.current, c1, c2, p)
	if seg.IsDegenerate(b.eps) {
		return b
	}
	return b.push(seg)
}

// Append adds a precomputed segment. The segment must start at the current
// point within eps; a tiny mismatch is absorbed by snapping the segment's
// start, anything larger is recorded as ErrDiscontinuous.
func (b *ContourBuilder) Append(seg Segment) *ContourBuilder {
	if !b.started {
		b.MoveTo(seg.Start())
	}
	if !seg.Start().Approx(b.current, b.eps) {
		b.fail(fmt.Errorf("%w: segment %d starts at %v, chain ends at %v",
			ErrDiscontinuous, len(b.segs), seg.Start(), b.current))
		return b
	}
	seg = seg.WithEndpoints(b.current, seg.End())
	if seg.IsDegenerate(b.eps) {
		return b
	}
	return b.push(seg)
}

// AppendAll appends every segment in order.
func (b *ContourBuilder) AppendAll(segs []Segment) *ContourBuilder {
	for _, s := range segs {
		b.Append(s)
	}
	return b
}

// Current returns the end of the chain built so far.
func (b *ContourBuilder) Current() Point {
	return b.current
}

// Len returns the number of segments added.
func (b *ContourBuilder) Len() int {
	return len(b.segs)
}

// Close adds a closing line back to the start when needed and freezes the
// chain into a Contour. The contour is validated before it is returned.
func (b *ContourBuilder) Close() (Contour, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.started {
		return nil, fmt.Errorf("%w: nothing was drawn", ErrNotClosed)
	}
	b.LineTo(b.start)
	if len(b.segs) == 0 {
		return nil, fmt.Errorf("%w: contour collapsed to a point", ErrNotClosed)
	}
	c := make(Contour, len(b.segs))
	copy(c, b.segs)
	last := c[len(c)-1]
	c[len(c)-1] = last.WithEndpoints(last.Start(), b.start)
	if err := c.Validate(b.eps); err != nil {
		return nil, err
	}
	return c, nil
}

func (b *ContourBuilder) ensureStarted(p Point) bool {
	if !b.started {
		b.fail(fmt.Errorf("%w: drawing to %v before MoveTo", ErrDiscontinuous, p))
		return false
	}
	return b.err == nil
}

func (b *ContourBuilder) push(seg Segment) *ContourBuilder {
	if b.err != nil {
		return b
	}
	b.segs = append(b.segs, seg)
	b.current = seg.End()
	return b
}

func (b *ContourBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
