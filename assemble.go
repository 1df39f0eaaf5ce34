package glyph

import "math"

// DefaultMiterLimit is the default distance, in multiples of the stroke
// weight, that a corner may lie from its bone joint before it is beveled.
const DefaultMiterLimit = 4

// pipelineConfig carries the numeric knobs of one synthesis run.
type pipelineConfig struct {
	tolerance  float64
	samples    int
	miterLimit float64
	epsilon    float64
}

func defaultPipelineConfig() pipelineConfig {
	return pipelineConfig{
		tolerance:  DefaultFitTolerance,
		samples:    DefaultBendSamples,
		miterLimit: DefaultMiterLimit,
		epsilon:    DefaultEpsilon,
	}
}

// boundary is one side (outer or inner) of one bone while the assembler
// trims and cuts it. Cuts are recorded and applied last so every junction
// sees the trimmed but uncut geometry.
type boundary struct {
	pts  polyline
	line bool

	headCut, tailCut float64
	head, tail       Point
	hasHead, hasTail bool
}

func (b *boundary) cutHead(d float64, p Point) {
	b.headCut, b.head, b.hasHead = d, p, true
}

func (b *boundary) cutTail(d float64, p Point) {
	b.tailCut, b.tail, b.hasTail = d, p, true
}

// boundaryOf returns the intersection operand for a side.
func (b *boundary) boundaryOf() Boundary {
	if b.line && len(b.pts) == 2 {
		return LineBoundary(b.pts[0], b.pts[1])
	}
	return CurveBoundary(b.pts)
}

// final applies the recorded cuts and returns the finished polyline.
func (b *boundary) final() polyline {
	pts := b.pts
	if b.hasTail {
		pts = pts.cutEnd(b.tailCut)
		pts[len(pts)-1] = b.tail
	}
	if b.hasHead {
		pts = pts.cutStart(b.headCut)
		pts[0] = b.head
	}
	return pts
}

// segments converts the finished side into contour segments: straight runs
// for line bones, a refit for bent bones.
func (b *boundary) segments(tolerance float64) []Segment {
	pts := b.final()
	if !b.line {
		return fitSegments(pts, 0, len(pts)-1, tolerance)
	}
	var out []Segment
	for i := 1; i < len(pts); i++ {
		if !pts[i].Approx(pts[i-1], DefaultEpsilon) {
			out = append(out, LineSeg(pts[i-1], pts[i]))
		}
	}
	return out
}

// assembler turns one skeleton into one closed contour.
type assembler struct {
	sk    Skeleton
	style StyleParameters
	cfg   pipelineConfig

	weight float64
	outer  []*boundary
	inner  []*boundary
	dirs   []Point

	outerJunctions [][]Segment
	innerJunctions [][]Segment
	outerStart     []Segment
	innerStart     []Segment
}

// Assemble synthesizes the outline of a skeleton with the default
// pipeline configuration.
func Assemble(sk Skeleton, style StyleParameters) (Contour, error) {
	return assemble(sk, style, defaultPipelineConfig())
}

func assemble(sk Skeleton, style StyleParameters, cfg pipelineConfig) (Contour, error) {
	if err := sk.Validate(); err != nil {
		return nil, consistencyErr("skeleton", err)
	}
	a := &assembler{sk: sk, style: style, cfg: cfg, weight: style.weight()}
	if err := a.offset(); err != nil {
		return nil, err
	}
	n := len(sk.Bones)
	for k := 0; k+1 < n; k++ {
		a.trim(k)
	}
	a.outerJunctions = make([][]Segment, n-1)
	a.innerJunctions = make([][]Segment, n-1)
	for k := 0; k+1 < n; k++ {
		a.outerJunctions[k] = a.junction(k, a.outer[k], a.outer[k+1], sk.Reversed)
		a.innerJunctions[k] = a.junction(k, a.inner[k], a.inner[k+1], !sk.Reversed)
	}
	if a.decorated() {
		n0 := outerNormal(a.dirs[0], sk.Reversed)
		a.outerStart = a.decorateStart(a.outer[0], n0)
		a.innerStart = a.decorateStart(a.inner[0], n0.Mul(-1))
	}
	return a.walk()
}

// offset computes the offset pair of every bone.
func (a *assembler) offset() error {
	for i, b := range a.sk.Bones {
		pair := offsetBone(a.sk, b, a.weight, a.cfg.samples, a.cfg.tolerance)
		if err := pair.Validate(); err != nil {
			return consistencyErr("offset", err)
		}
		line := b.Kind == BoneLine
		a.outer = append(a.outer, &boundary{pts: append(polyline(nil), pair.OuterSamples...), line: line})
		a.inner = append(a.inner, &boundary{pts: append(polyline(nil), pair.InnerSamples...), line: line})

		seg := a.sk.boneSegment(b)
		dir := seg.End().Sub(seg.Start()).Normalize()
		if dir == (Point{}) {
			dir = Point{X: 1}
		}
		a.dirs = append(a.dirs, dir)
		Logger().Debug("bone offset", "bone", i, "kind", b.Kind, "samples", len(pair.OuterSamples))
	}
	return nil
}

// trim cuts both sides at junction k back to their common corner.
func (a *assembler) trim(k int) {
	joint := a.sk.Point(a.sk.Bones[k+1].Joints[0])
	a.trimSide(a.outer[k], a.outer[k+1], joint)
	a.trimSide(a.inner[k], a.inner[k+1], joint)
}

func (a *assembler) trimSide(prev, next *boundary, joint Point) {
	c, ok := Intersect(prev.boundaryOf(), next.boundaryOf())
	keep, skip := c.Index, c.OtherIndex
	if !ok {
		// No crossing: extend both sides along their end tangents, or bevel
		// when those are parallel too.
		n := len(prev.pts)
		p, tangentOK := lineLine(prev.pts[n-2], prev.pts[n-1], next.pts[0], next.pts[1])
		if !tangentOK {
			p = prev.pts.end()
		}
		c.Point, keep, skip = p, n-1, -1
		Logger().Debug("corner fallback", "point", c.Point, "tangent", tangentOK)
	}
	if c.Point.Distance(joint) > a.cfg.miterLimit*a.weight {
		c.Point, keep, skip = prev.pts.end(), len(prev.pts)-1, -1
	}
	prev.pts = append(append(polyline(nil), prev.pts[:keep+1]...), c.Point)
	next.pts = append(polyline{c.Point}, next.pts[skip+1:]...)
}

// consumes reports whether junction k rounds or decorates its corner and
// so uses up part of both adjoining sides.
func (a *assembler) consumes(k int) bool {
	kind := a.sk.corner(k)
	if a.style.cornerRadius(kind) > 0 {
		return true
	}
	return a.bulged(k)
}

// bulged reports whether junction k gets a turn bulge.
func (a *assembler) bulged(k int) bool {
	return a.sk.corner(k) == CornerTurn &&
		a.style.TurnStyle == TurnBulge && a.style.TurnValue > 0 &&
		a.sk.Bones[k].Kind == BoneLine && a.sk.Bones[k+1].Kind == BoneLine
}

func (a *assembler) decorated() bool {
	return a.style.StartStyle != StartNone && a.style.StartValue > 0 &&
		a.sk.Bones[0].Kind == BoneLine
}

// farStart returns how far back a junction at the end of bone k may reach
// on side b: the side's start, or its midpoint when the start is also used.
func (a *assembler) farStart(k int, b *boundary) Point {
	if (k == 0 && a.decorated()) || (k > 0 && a.consumes(k-1)) {
		return b.pts.midpoint()
	}
	return b.pts.start()
}

// farEnd is farStart for the far end of bone k.
func (a *assembler) farEnd(k int, b *boundary) Point {
	if k+1 < len(a.sk.Bones) && a.consumes(k) {
		return b.pts.midpoint()
	}
	return b.pts.end()
}

// junction returns the pieces replacing the corner between prev (side of
// bone k) and next (side of bone k+1), recording the cuts they need. left
// tells whether the side lies left of the direction of travel.
func (a *assembler) junction(k int, prev, next *boundary, left bool) []Segment {
	c := prev.pts.end()
	farA := a.farStart(k, prev)
	farB := a.farEnd(k+1, next)

	if a.bulged(k) {
		d1, d2 := a.dirs[k], a.dirs[k+1]
		// The convex side of a right turn is on the left.
		if (d1.Cross(d2) < 0) != left {
			return nil
		}
		r := bulgeRadius(d1, d2, a.weight/2)
		r = math.Min(r, math.Min(c.Distance(farA), c.Distance(farB))/2)
		if r <= a.cfg.epsilon {
			return nil
		}
		start1 := prev.pts.reversed().walk(2 * r)
		start2 := next.pts.walk(2 * r)
		prev.cutTail(2*r, start1)
		next.cutHead(2*r, start2)
		return turnBulge(c, d1, d2, r, bulgeLengthPerValue*a.style.TurnValue, start1, start2)
	}

	radius := a.style.cornerRadius(a.sk.corner(k))
	if radius <= 0 {
		return nil
	}
	f := filletOn(c, prev.pts.reversed(), next.pts, farA, farB, radius)
	if f.IsZero() {
		return nil
	}
	prev.cutTail(f.Radius, f.TangentStart)
	next.cutHead(f.Radius, f.TangentEnd)
	return []Segment{f.Segment()}
}

// decorateStart builds the start flare of the first side and records the
// cut it needs. n points away from the stroke on that side.
func (a *assembler) decorateStart(b *boundary, n Point) []Segment {
	avail := b.pts.length()
	if len(a.sk.Bones) > 1 && a.consumes(0) {
		avail = b.pts.start().Distance(b.pts.midpoint())
	}
	length, round := flareExtent(a.style.StartStyle, a.style.StartValue, avail)
	if length <= a.cfg.epsilon {
		return nil
	}
	s := b.pts.start()
	head := b.pts.walk(length + round)
	b.cutHead(length+round, head)
	return startFlare(a.style.StartStyle, s, head, a.dirs[0], n, length, flareWidthFactor*a.weight)
}

// walk stitches the pieces into a contour: outer boundary forward, butt
// cap at the terminal, inner boundary backward, closing line at the start.
func (a *assembler) walk() (Contour, error) {
	outer := a.chain(a.outerStart, a.outer, a.outerJunctions)
	inner := a.chain(a.innerStart, a.inner, a.innerJunctions)

	start := a.outer[0].final().start()
	if len(outer) > 0 {
		start = outer[0].Start()
	}
	innerEnd := a.inner[len(a.inner)-1].final().end()

	b := NewContourBuilder(a.cfg.epsilon)
	b.MoveTo(start)
	b.AppendAll(outer)
	b.LineTo(innerEnd)
	for i := len(inner) - 1; i >= 0; i-- {
		b.Append(inner[i].Reversed())
	}
	c, err := b.Close()
	if err != nil {
		return nil, consistencyErr("assemble", err)
	}
	if c.Area() < 0 {
		c = c.Reversed()
	}
	Logger().Debug("stroke assembled", "archetype", a.sk.Archetype, "segments", len(c), "area", c.Area())
	return c, nil
}

// chain concatenates one side's pieces in the direction of travel.
func (a *assembler) chain(prefix []Segment, sides []*boundary, junctions [][]Segment) []Segment {
	out := append([]Segment(nil), prefix...)
	for k, s := range sides {
		out = append(out, s.segments(a.cfg.tolerance)...)
		if k < len(junctions) {
			out = append(out, junctions[k]...)
		}
	}
	return out
}
