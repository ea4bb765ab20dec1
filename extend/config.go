package extend

// Config bounds a PathExtender's growth loop.
type Config struct {
	// MaxLoops caps consecutive repetitions of any simple cycle a path may
	// accumulate before RemoveLoop trims it. Must be positive.
	MaxLoops int

	// InvestigateShortLoops enables invoking a shortloop.Resolver whenever
	// growth lands on an edge_in_short_loop configuration.
	InvestigateShortLoops bool
}

// Option configures a PathExtender at construction.
type Option func(*Config)

// WithMaxLoops overrides the default cycle-repetition cap (10).
func WithMaxLoops(n int) Option {
	return func(c *Config) { c.MaxLoops = n }
}

// WithShortLoopInvestigation toggles short-loop resolution (enabled by
// default).
func WithShortLoopInvestigation(enabled bool) Option {
	return func(c *Config) { c.InvestigateShortLoops = enabled }
}

func newConfig(opts ...Option) (Config, error) {
	cfg := Config{MaxLoops: 10, InvestigateShortLoops: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxLoops <= 0 {
		return Config{}, ErrConfigInvalid
	}

	return cfg, nil
}
