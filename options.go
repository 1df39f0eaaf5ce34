package glyph

import "log/slog"

// Option configures a Synthesizer, Composer or Resolver.
// Use functional options to customize behavior.
//
// Example:
//
//	// Default configuration
//	s := glyph.NewSynthesizer()
//
//	// Tighter refit and a bigger stroke cache
//	s := glyph.NewSynthesizer(glyph.WithTolerance(0.1), glyph.WithCacheCapacity(512))
type Option func(*options)

// options holds optional configuration shared by the pipeline types.
type options struct {
	pipeline      pipelineConfig
	logger        *slog.Logger
	cacheCapacity int
	workers       int
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		pipeline:      defaultPipelineConfig(),
		cacheCapacity: 0, // no memoization
		workers:       0, // GOMAXPROCS
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// log returns the configured logger, falling back to the package logger.
func (o options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// WithTolerance sets the curve refit tolerance in font units.
// Non-positive values keep the default (DefaultFitTolerance).
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.pipeline.tolerance = tol
		}
	}
}

// WithCurveSamples sets how many centerline samples a bent bone is offset
// from. Values below 3 keep the default (DefaultBendSamples).
func WithCurveSamples(n int) Option {
	return func(o *options) {
		if n >= 3 {
			o.pipeline.samples = n
		}
	}
}

// WithMiterLimit sets how far, in multiples of the stroke weight, a corner
// may lie from its joint before it is beveled.
func WithMiterLimit(limit float64) Option {
	return func(o *options) {
		if limit > 0 {
			o.pipeline.miterLimit = limit
		}
	}
}

// WithLogger sets the logger used for batch summaries. Stage diagnostics
// always go to the package logger (see SetLogger).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCacheCapacity enables stroke memoization with the given per-shard
// capacity. Zero disables the cache.
func WithCacheCapacity(n int) Option {
	return func(o *options) {
		o.cacheCapacity = max(n, 0)
	}
}

// WithWorkers sets the number of batch workers. Zero or negative uses
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
