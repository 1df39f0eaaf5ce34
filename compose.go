package glyph

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/glyph/cache"
	"github.com/gogpu/glyph/internal/parallel"
)

// Component is one stroke of a glyph: an archetype, its parameters and
// where the stroke sits in the em square.
type Component struct {
	Archetype string `yaml:"archetype"`
	Params    Params `yaml:"params,omitempty"`
	Offset    Point  `yaml:"offset,omitempty"`
}

// GlyphSpec describes a glyph as a list of strokes drawn in one style.
type GlyphSpec struct {
	Name       string          `yaml:"name"`
	Style      StyleParameters `yaml:"style,omitempty"`
	Components []Component     `yaml:"components"`
}

// Glyph is the resolved outline of a GlyphSpec.
type Glyph struct {
	Name     string
	Contours []Contour
}

// GlyphResult is the outcome for one glyph of a batch.
type GlyphResult struct {
	Glyph Glyph
	Err   error
}

// Composer builds glyphs from stroke components. Synthesized strokes are
// memoized, so glyphs sharing a stroke with the same parameters reuse its
// outline. A Composer is safe for concurrent use.
type Composer struct {
	opts     options
	synth    *Synthesizer
	resolver *Resolver
}

// NewComposer creates a composer. The stroke cache is enabled with
// cache.DefaultCapacity entries per shard unless WithCacheCapacity says
// otherwise.
func NewComposer(opts ...Option) *Composer {
	all := append([]Option{WithCacheCapacity(cache.DefaultCapacity)}, opts...)
	return &Composer{
		opts:     newOptions(all),
		synth:    NewSynthesizer(all...),
		resolver: NewResolver(all...),
	}
}

// Synthesizer returns the stroke synthesizer used by the composer.
func (c *Composer) Synthesizer() *Synthesizer {
	return c.synth
}

// Strokes synthesizes every component of spec and moves it into place,
// without resolving overlaps.
func (c *Composer) Strokes(spec GlyphSpec) ([]Contour, error) {
	out := make([]Contour, 0, len(spec.Components))
	for i, comp := range spec.Components {
		stroke, err := c.synth.Stroke(comp.Archetype, comp.Params, spec.Style)
		if err != nil {
			return nil, fmt.Errorf("glyph %q component %d (%s): %w", spec.Name, i, comp.Archetype, err)
		}
		if comp.Offset != (Point{}) {
			stroke = stroke.Translate(comp.Offset)
		}
		out = append(out, stroke)
	}
	return out, nil
}

// BuildGlyph synthesizes the strokes of spec and removes their overlaps.
func (c *Composer) BuildGlyph(spec GlyphSpec) (Glyph, error) {
	strokes, err := c.Strokes(spec)
	if err != nil {
		return Glyph{}, err
	}
	contours, err := c.resolver.Resolve(strokes)
	if err != nil {
		return Glyph{}, fmt.Errorf("glyph %q: %w", spec.Name, err)
	}
	return Glyph{Name: spec.Name, Contours: contours}, nil
}

// BuildGlyphs builds a batch of glyphs in parallel. Results are in input
// order; a failing glyph carries its error and does not stop the batch.
func (c *Composer) BuildGlyphs(specs []GlyphSpec) []GlyphResult {
	results := make([]GlyphResult, len(specs))
	pool := parallel.NewPool(c.opts.workers)
	defer pool.Close()
	pool.Run(len(specs), func(i int) {
		g, err := c.BuildGlyph(specs[i])
		results[i] = GlyphResult{Glyph: g, Err: err}
	})

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			c.opts.log().Warn("glyph build failed", "err", r.Err)
		}
	}
	stats := c.synth.CacheStats()
	c.opts.log().Info("glyph batch done", "glyphs", len(specs), "failed", failed,
		"cache_hits", stats.Hits, "cache_misses", stats.Misses)
	return results
}

// LoadGlyphSpecs decodes a YAML stream of glyph specs, either a single
// document holding a list or one spec per document. A spec without a style
// uses DefaultStyle, and a partial style overrides only the fields it sets.
func LoadGlyphSpecs(r io.Reader) ([]GlyphSpec, error) {
	dec := yaml.NewDecoder(r)
	var specs []GlyphSpec
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("glyph: decode specs: %w", err)
		}
		if len(doc.Content) == 0 {
			continue
		}
		nodes := []*yaml.Node{doc.Content[0]}
		if doc.Content[0].Kind == yaml.SequenceNode {
			nodes = doc.Content[0].Content
		}
		for _, n := range nodes {
			spec := GlyphSpec{Style: DefaultStyle()}
			if err := n.Decode(&spec); err != nil {
				return nil, fmt.Errorf("glyph: decode spec at line %d: %w", n.Line, err)
			}
			specs = append(specs, spec)
		}
	}
	return specs, nil
}
