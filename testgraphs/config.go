package testgraphs

// Config holds the knobs shared by every fixture constructor.
type Config struct {
	prefix     string
	edgeLength int
}

// Option customizes a Config before a fixture is built.
type Option func(*Config)

// WithPrefix sets the vertex ID prefix used for generated names (default
// "v"). A no-op if prefix is empty.
func WithPrefix(prefix string) Option {
	return func(cfg *Config) {
		if prefix != "" {
			cfg.prefix = prefix
		}
	}
}

// WithEdgeLength sets the length every generated edge carries (default 1).
// A no-op if n <= 0.
func WithEdgeLength(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.edgeLength = n
		}
	}
}

func newConfig(opts ...Option) Config {
	cfg := Config{prefix: "v", edgeLength: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
