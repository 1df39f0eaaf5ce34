package boolean

import (
	"math"
	"slices"
)

// edge is one flattened piece of a source segment, before splitting.
type edge struct {
	a, b   Point
	src    int // index into graph.sources, -1 for closing lines
	t0, t1 float64
	cuts   []cut
}

// cut is a split point on an edge at edge parameter t.
type cut struct {
	t float64
	p Point
}

func (e *edge) addCut(t float64, p Point) {
	if t <= 1e-12 || t >= 1-1e-12 {
		return
	}
	e.cuts = append(e.cuts, cut{t, p})
}

// param maps an edge parameter to a source segment parameter.
func (e *edge) param(t float64) float64 {
	switch t {
	case 0:
		return e.t0
	case 1:
		return e.t1
	}
	return e.t0 + (e.t1-e.t0)*t
}

// piece is a split, snapped edge of the planar graph.
type piece struct {
	a, b   Point
	ka, kb vkey
	src    int
	t0, t1 float64
}

func (p piece) reversed() piece {
	return piece{a: p.b, b: p.a, ka: p.kb, kb: p.ka, src: p.src, t0: p.t1, t1: p.t0}
}

type graph struct {
	sources []Segment
	edges   []edge
	pieces  []piece
	// polys holds the flattened input polygons of each operand, used for
	// winding numbers.
	polys [2][][]Point
}

func newGraph() *graph {
	return &graph{}
}

// addOperand flattens the contours of one operand into the graph.
func (g *graph) addOperand(op int, contours []Contour) {
	for _, c := range contours {
		if len(c) == 0 {
			continue
		}
		var poly []Point
		for _, s := range c {
			id := len(g.sources)
			g.sources = append(g.sources, s)
			n := s.steps(flattenTolerance)
			prev := s.Start()
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				p := s.End()
				if i < n {
					p = s.Eval(t)
				}
				g.edges = append(g.edges, edge{a: prev, b: p, src: id, t0: float64(i-1) / float64(n), t1: t})
				poly = append(poly, prev)
				prev = p
			}
		}
		if first, last := c[0].Start(), c[len(c)-1].End(); keyOf(first) != keyOf(last) {
			g.edges = append(g.edges, edge{a: last, b: first, src: -1, t0: 0, t1: 1})
		}
		g.polys[op] = append(g.polys[op], poly)
	}
}

// split finds every crossing with an x-sorted sweep, then cuts the edges
// into snapped, deduplicated pieces.
func (g *graph) split() {
	type span struct {
		i                      int
		minX, maxX, minY, maxY float64
	}
	spans := make([]span, len(g.edges))
	for i, e := range g.edges {
		spans[i] = span{i,
			math.Min(e.a.X, e.b.X), math.Max(e.a.X, e.b.X),
			math.Min(e.a.Y, e.b.Y), math.Max(e.a.Y, e.b.Y)}
	}
	slices.SortFunc(spans, func(a, b span) int {
		switch {
		case a.minX < b.minX:
			return -1
		case a.minX > b.minX:
			return 1
		}
		return a.i - b.i
	})

	const slack = 1e-9
	for ii, si := range spans {
		for _, sj := range spans[ii+1:] {
			if sj.minX > si.maxX+slack {
				break
			}
			if sj.minY > si.maxY+slack || sj.maxY < si.minY-slack {
				continue
			}
			g.intersect(&g.edges[si.i], &g.edges[sj.i])
		}
	}

	seen := make(map[[2]vkey]struct{}, len(g.edges))
	for i := range g.edges {
		e := &g.edges[i]
		slices.SortFunc(e.cuts, func(a, b cut) int {
			switch {
			case a.t < b.t:
				return -1
			case a.t > b.t:
				return 1
			}
			return 0
		})
		ts := make([]float64, 0, len(e.cuts)+2)
		ps := make([]Point, 0, len(e.cuts)+2)
		ts, ps = append(ts, 0), append(ps, e.a)
		for _, c := range e.cuts {
			ts, ps = append(ts, c.t), append(ps, c.p)
		}
		ts, ps = append(ts, 1), append(ps, e.b)

		for k := 1; k < len(ts); k++ {
			a, b := snapPoint(ps[k-1]), snapPoint(ps[k])
			ka, kb := keyOf(a), keyOf(b)
			if ka == kb {
				continue
			}
			id := [2]vkey{ka, kb}
			if kb.x < ka.x || (kb.x == ka.x && kb.y < ka.y) {
				id = [2]vkey{kb, ka}
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			g.pieces = append(g.pieces, piece{
				a: a, b: b, ka: ka, kb: kb,
				src: e.src, t0: e.param(ts[k-1]), t1: e.param(ts[k]),
			})
		}
	}
}

// intersect records where two edges cross, overlap or touch.
func (g *graph) intersect(e1, e2 *edge) {
	const eps = 1e-9
	d1, d2 := e1.b.sub(e1.a), e2.b.sub(e2.a)
	l1, l2 := d1.length(), d2.length()
	if l1 == 0 || l2 == 0 {
		return
	}
	r := e2.a.sub(e1.a)
	den := d1.cross(d2)

	if math.Abs(den) <= 1e-12*l1*l2 {
		// Parallel: only collinear overlaps matter.
		if math.Abs(r.cross(d1)) > eps*l1 {
			return
		}
		for _, q := range [2]Point{e2.a, e2.b} {
			e1.addCut(q.sub(e1.a).dot(d1)/(l1*l1), q)
		}
		for _, q := range [2]Point{e1.a, e1.b} {
			e2.addCut(q.sub(e2.a).dot(d2)/(l2*l2), q)
		}
		return
	}

	t := r.cross(d2) / den
	u := r.cross(d1) / den
	if t < -eps || t > 1+eps || u < -eps || u > 1+eps {
		return
	}
	t = math.Max(0, math.Min(1, t))
	u = math.Max(0, math.Min(1, u))
	var p Point
	switch {
	case u <= eps:
		p = e2.a
	case u >= 1-eps:
		p = e2.b
	case t <= eps:
		p = e1.a
	case t >= 1-eps:
		p = e1.b
	default:
		p = e1.a.add(d1.mul(t))
	}
	e1.addCut(t, p)
	e2.addCut(u, p)
}

// winding returns the nonzero winding number of one operand around pt.
func (g *graph) winding(op int, pt Point) int {
	w := 0
	for _, poly := range g.polys[op] {
		for i := range poly {
			w += crossing(poly[i], poly[(i+1)%len(poly)], pt)
		}
	}
	return w
}

// classify keeps the pieces that separate the inside of the result from
// its outside, oriented with the inside on the left.
func (g *graph) classify(op Op) []piece {
	var kept []piece
	for _, p := range g.pieces {
		d := p.b.sub(p.a)
		d = d.mul(1 / d.length())
		n := Point{-d.Y, d.X}
		m := p.a.lerp(p.b, 0.5)
		left := m.add(n.mul(probeOffset))
		right := m.sub(n.mul(probeOffset))

		inL := op.inside(g.winding(0, left) != 0, g.winding(1, left) != 0)
		inR := op.inside(g.winding(0, right) != 0, g.winding(1, right) != 0)
		switch {
		case inL == inR:
		case inL:
			kept = append(kept, p)
		default:
			kept = append(kept, p.reversed())
		}
	}
	return kept
}

// chain links kept pieces into closed loops. At a vertex with several
// exits it takes the sharpest left turn, which traces each face of the
// result separately. Chains that cannot be closed are dropped.
func (g *graph) chain(kept []piece) [][]piece {
	out := make(map[vkey][]int, len(kept))
	for i, p := range kept {
		out[p.ka] = append(out[p.ka], i)
	}
	used := make([]bool, len(kept))

	var loops [][]piece
	for i := range kept {
		if used[i] {
			continue
		}
		used[i] = true
		loop := []piece{kept[i]}
		start := kept[i].ka
		cur := kept[i]
		for cur.kb != start {
			din := cur.b.sub(cur.a)
			next, best := -1, math.Inf(-1)
			for _, j := range out[cur.kb] {
				if used[j] {
					continue
				}
				dout := kept[j].b.sub(kept[j].a)
				if turn := math.Atan2(din.cross(dout), din.dot(dout)); turn > best {
					next, best = j, turn
				}
			}
			if next < 0 {
				slogger().Warn("boolean: dropping open chain", "edges", len(loop), "at", cur.b)
				loop = nil
				break
			}
			used[next] = true
			cur = kept[next]
			loop = append(loop, cur)
		}
		if len(loop) >= 2 {
			loops = append(loops, loop)
		}
	}
	return loops
}

// mergeGap is the largest parameter gap bridged when merging consecutive
// pieces of one source segment.
const mergeGap = 0.05

// contiguous reports whether q continues p along the same source segment
// in the same direction.
func contiguous(p, q piece) bool {
	if p.src < 0 || p.src != q.src {
		return false
	}
	if (p.t1 > p.t0) != (q.t1 > q.t0) {
		return false
	}
	gap := q.t0 - p.t1
	if p.t1 < p.t0 {
		gap = -gap
	}
	return gap >= -1e-12 && gap <= mergeGap
}

// merge turns a loop of pieces back into curve segments.
func (g *graph) merge(loop []piece) Contour {
	n := len(loop)
	brk := 0
	for i := range loop {
		if !contiguous(loop[(i+n-1)%n], loop[i]) {
			brk = i
			break
		}
	}
	loop = append(loop[brk:], loop[:brk]...)

	var c Contour
	for i := 0; i < n; {
		j := i
		for j+1 < n && contiguous(loop[j], loop[j+1]) {
			j++
		}
		first, last := loop[i], loop[j]
		i = j + 1
		if first.ka == last.kb {
			continue
		}
		if first.src < 0 || g.sources[first.src].Kind == Line {
			c = append(c, Segment{Kind: Line, P: [4]Point{first.a, last.b}})
			continue
		}
		c = append(c, g.sources[first.src].Subsegment(first.t0, last.t1).withEnds(first.a, last.b))
	}
	if len(c) < 2 || math.Abs(Area(c)) < minLoopArea {
		return nil
	}

	lo := 0
	for i := range c {
		if c[i].Start().less(c[lo].Start()) {
			lo = i
		}
	}
	return append(c[lo:], c[:lo]...)
}
