package synth

import "math/rand/v2"

// RandSource supplies randomness for filler-word selection. *rand.Rand from
// math/rand/v2 satisfies it, so tests can inject a seeded generator while the
// default remains unseeded for UI-facing variety.
type RandSource interface {
	IntN(n int) int
}

// globalRand routes to the package-level math/rand/v2 generator.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Option configures a Resolver or Synthesizer.
type Option func(*config)

// config holds shared configuration for resolution and synthesis passes.
type config struct {
	logger      Logger
	maxRefDepth int
	rnd         RandSource
	fillerPool  []string
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:      NopLogger{},
		maxRefDepth: MaxRefDepth,
		rnd:         globalRand{},
		fillerPool:  defaultFillerPool,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger used to report degraded resolutions and
// synthesis fallbacks. The default is NopLogger.
func WithLogger(l Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithMaxRefDepth overrides the maximum reference-resolution depth.
// Values less than 1 keep the default.
func WithMaxRefDepth(depth int) Option {
	return func(cfg *config) {
		if depth > 0 {
			cfg.maxRefDepth = depth
		}
	}
}

// WithRand injects the random source used for filler-word selection,
// making synthesized output reproducible in tests.
func WithRand(r RandSource) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.rnd = r
		}
	}
}

// WithFillerPool replaces the pool of filler words used for strings that
// match no format or property-name heuristic.
func WithFillerPool(words []string) Option {
	return func(cfg *config) {
		if len(words) > 0 {
			cfg.fillerPool = words
		}
	}
}
