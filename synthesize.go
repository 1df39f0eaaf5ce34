package glyph

import (
	"github.com/gogpu/glyph/cache"
)

// Synthesizer turns archetype parameters into stroke outlines. It is safe
// for concurrent use; with WithCacheCapacity it memoizes results by
// archetype, resolved parameters and style.
type Synthesizer struct {
	opts  options
	cache *cache.Sharded[string, Contour]
}

// NewSynthesizer creates a synthesizer.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{opts: newOptions(opts)}
	if s.opts.cacheCapacity > 0 {
		s.cache = cache.New[string, Contour](s.opts.cacheCapacity, cache.StringHasher)
	}
	return s
}

var defaultSynthesizer = NewSynthesizer()

// SynthesizeStroke builds the closed outline of one stroke with the default
// synthesizer. The returned contour is closed and has positive area for
// any positive weight.
func SynthesizeStroke(archetype string, params Params, style StyleParameters) (Contour, error) {
	return defaultSynthesizer.Stroke(archetype, params, style)
}

// Stroke builds the closed outline of one stroke. Unknown archetypes return
// ErrUnknownArchetype; a *ConsistencyError means the pipeline produced an
// invalid contour and the stroke must not be exported.
func (s *Synthesizer) Stroke(archetype string, params Params, style StyleParameters) (Contour, error) {
	g, err := Lookup(archetype)
	if err != nil {
		return nil, err
	}
	build := func() (Contour, error) {
		sk := g.Skeleton(params.resolve(g.Params()), style)
		return assemble(sk, style, s.opts.pipeline)
	}
	if s.cache == nil {
		return build()
	}
	key := g.Archetype() + "|" + params.key(g.Params()) + "|" + style.key()
	c, err := s.cache.GetOrCompute(key, build)
	if err != nil {
		return nil, err
	}
	// Cached contours are shared; hand out a copy.
	return c.Clone(), nil
}

// Skeleton outlines a hand-built or edited skeleton.
func (s *Synthesizer) Skeleton(sk Skeleton, style StyleParameters) (Contour, error) {
	return assemble(sk, style, s.opts.pipeline)
}

// CacheStats reports memoization counters. It is the zero value when the
// cache is disabled.
func (s *Synthesizer) CacheStats() cache.Stats {
	if s.cache == nil {
		return cache.Stats{}
	}
	return s.cache.Stats()
}
