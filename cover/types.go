package cover

import (
	"github.com/katalvlaran/contigo/bpath"
	"github.com/katalvlaran/contigo/coverage"
	"github.com/katalvlaran/contigo/extend"
)

// SeedPair is a forward path and its conjugate, already ordered, as
// supplied by upstream seed construction.
type SeedPair struct {
	Forward   *bpath.Path
	Conjugate *bpath.Path
}

// Report carries the driver's optional diagnostics alongside its result.
type Report struct {
	// ScaffoldSizes is the scaffolding extender's sizes[] histogram, if the
	// configured extender exposes one.
	ScaffoldSizes []int

	// Diagnostics holds non-fatal inconsistency notes gathered during the
	// run (coverage-map warnings, subpath-removal containment mismatches).
	Diagnostics []string
}

// Driver is the CoveringDriver of §4.5: it owns the coverage map for a
// single run and orchestrates growth, deduplication, and length filtering
// over a set of seed pairs.
type Driver struct {
	arena    *bpath.Arena
	extender extend.PathExtender
	covMap   *coverage.Map
	minLen   int
}

// Option configures a Driver at construction.
type Option func(*Driver)

// WithMinPathLength sets the minimum edge count a result path must reach
// to survive the final filter pass (default 0: no filtering).
func WithMinPathLength(n int) Option {
	return func(d *Driver) { d.minLen = n }
}

// NewDriver builds a Driver that grows paths with extender.
func NewDriver(extender extend.PathExtender, opts ...Option) *Driver {
	d := &Driver{
		arena:    bpath.NewArena(),
		extender: extender,
		covMap:   coverage.NewMap(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// CoverageMap exposes the driver's coverage map for inspection after a run.
func (d *Driver) CoverageMap() *coverage.Map { return d.covMap }

// sizesReporter is implemented by extenders that track a scaffolding-jump
// histogram (extend.ScaffoldingPathExtender and
// extend.ScaffoldingOnlyPathExtender).
type sizesReporter interface {
	Sizes() []int
}
