package matching

import "github.com/rs/zerolog"

// config collects the options governing one Greedy, AugmentingPath, or
// MaximumMatching call. The zero value logs nothing, matching the teacher's
// "opt-in diagnostics, silent by default" convention.
type config struct {
	logger zerolog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures Greedy, AugmentingPath, or MaximumMatching.
type Option func(*config)

// WithLogger attaches a structured logger that receives one diagnostic event
// per seed pass, per augmentation, and per blossom contraction. The default
// (no WithLogger) is zerolog.Nop(), which emits nothing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
