package glyph

import (
	"math"

	"github.com/gogpu/glyph/internal/boolean"
	"github.com/gogpu/glyph/internal/parallel"
)

// areaEpsilon is the signed area below which a contour or a boolean result
// counts as empty.
const areaEpsilon = 1e-6

// Resolver removes the overlaps between the stroke outlines of a glyph,
// keeping intentional holes. It is safe for concurrent use.
type Resolver struct {
	opts options
}

// NewResolver creates a resolver. Only WithWorkers and WithLogger affect it.
func NewResolver(opts ...Option) *Resolver {
	return &Resolver{opts: newOptions(opts)}
}

var defaultResolver = NewResolver()

// ResolveOverlap merges the contours of one glyph into a set of contours
// that do not overlap, using the default resolver.
func ResolveOverlap(contours []Contour) ([]Contour, error) {
	return defaultResolver.Resolve(contours)
}

// Resolve merges the contours of one glyph into a set of contours that do
// not overlap.
//
// Contours with positive area are filled regions and contours with negative
// area are holes. The positive contours are united first and every hole is
// then cut out of the union, so counters survive. When only one kind is
// present, or the cut leaves nothing, everything is united instead.
//
// A set whose bounding boxes are pairwise disjoint is returned as is.
// The result is deterministic and Resolve(Resolve(c)) equals Resolve(c).
func (r *Resolver) Resolve(contours []Contour) ([]Contour, error) {
	if len(contours) <= 1 || boundsDisjoint(contours) {
		return contours, nil
	}

	var pos, neg []boolean.Contour
	for _, c := range contours {
		switch a := c.Area(); {
		case a > areaEpsilon:
			pos = append(pos, toBoolean(c))
		case a < -areaEpsilon:
			neg = append(neg, toBoolean(c))
		}
	}

	var res []boolean.Contour
	if len(pos) > 0 && len(neg) > 0 {
		res = boolean.Compute(boolean.Union, pos, nil)
		for _, hole := range neg {
			next := boolean.Compute(boolean.Difference, res, []boolean.Contour{hole})
			if math.Abs(booleanArea(next)) > areaEpsilon {
				res = next
			}
		}
		if math.Abs(booleanArea(res)) <= areaEpsilon {
			Logger().Warn("glyph: hole cut left an empty glyph, uniting all contours",
				"contours", len(contours))
			res = nil
		}
	}
	if res == nil {
		all := make([]boolean.Contour, len(contours))
		for i, c := range contours {
			all[i] = toBoolean(c)
		}
		res = boolean.Compute(boolean.Union, all, nil)
	}
	if len(res) == 0 {
		Logger().Warn("glyph: union is empty, keeping the input contours",
			"contours", len(contours))
		return contours, nil
	}

	out := make([]Contour, len(res))
	for i, c := range res {
		out[i] = fromBoolean(c)
		if err := out[i].Validate(DefaultEpsilon); err != nil {
			return nil, consistencyErr("overlap", err)
		}
	}
	Logger().Debug("overlap resolved", "in", len(contours), "out", len(out),
		"outer", len(pos), "holes", len(neg))
	return out, nil
}

// BatchResult is the outcome for one glyph of a batch.
type BatchResult struct {
	Contours []Contour
	Err      error
}

// ResolveBatch resolves every glyph of a batch in parallel. A failure in
// one glyph is reported in its result and does not stop the others.
func (r *Resolver) ResolveBatch(glyphs [][]Contour) []BatchResult {
	results := make([]BatchResult, len(glyphs))
	pool := parallel.NewPool(r.opts.workers)
	defer pool.Close()
	pool.Run(len(glyphs), func(i int) {
		cs, err := r.Resolve(glyphs[i])
		results[i] = BatchResult{Contours: cs, Err: err}
	})

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	r.opts.log().Info("overlap batch done", "glyphs", len(glyphs), "failed", failed,
		"workers", pool.Workers())
	return results
}

// ResolveOverlapBatch resolves a batch of glyphs with the default resolver.
func ResolveOverlapBatch(glyphs [][]Contour) []BatchResult {
	return defaultResolver.ResolveBatch(glyphs)
}

// boundsDisjoint reports whether no two contours have overlapping bounding
// boxes.
func boundsDisjoint(contours []Contour) bool {
	boxes := make([]Rect, len(contours))
	for i, c := range contours {
		boxes[i] = c.Bounds()
	}
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			if boxes[i].Overlaps(boxes[j]) {
				return false
			}
		}
	}
	return true
}

func booleanArea(cs []boolean.Contour) float64 {
	var a float64
	for _, c := range cs {
		a += boolean.Area(c)
	}
	return a
}

func toBoolean(c Contour) boolean.Contour {
	out := make(boolean.Contour, len(c))
	for i, s := range c {
		b := boolean.Segment{Kind: boolean.Kind(s.Kind)}
		for j, p := range s.P {
			b.P[j] = boolean.Point{X: p.X, Y: p.Y}
		}
		out[i] = b
	}
	return out
}

func fromBoolean(c boolean.Contour) Contour {
	out := make(Contour, len(c))
	for i, s := range c {
		g := Segment{Kind: SegmentKind(s.Kind)}
		for j, p := range s.P {
			g.P[j] = Point{X: p.X, Y: p.Y}
		}
		out[i] = g
	}
	return out
}
