package extend

import (
	"github.com/katalvlaran/contigo/bpath"
	"github.com/katalvlaran/contigo/dbg"
	"github.com/katalvlaran/contigo/extension"
	"github.com/katalvlaran/contigo/loopdetect"
	"github.com/katalvlaran/contigo/shortloop"
)

// PathExtender grows a Path by one step, reporting whether it grew at all.
type PathExtender interface {
	Grow(path *bpath.Path) (grew bool, err error)
}

// SimplePathExtender implements the core growth loop of §4.2: repeatedly
// append the sole surviving candidate, resolve short loops, and trim
// cycles, stopping the first time a step yields zero or multiple
// candidates or a cycle is trimmed.
type SimplePathExtender struct {
	base
}

// NewSimplePathExtender constructs a SimplePathExtender over g, driven by
// chooser, det and resolver.
func NewSimplePathExtender(
	g *dbg.Graph,
	chooser extension.Chooser,
	det *loopdetect.Detector,
	resolver shortloop.Resolver,
	opts ...Option,
) (*SimplePathExtender, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &SimplePathExtender{base: base{g: g, chooser: chooser, det: det, resolver: resolver, cfg: cfg}}, nil
}

// Grow runs the growth loop to its stopping condition, returning whether
// at least one edge was appended.
func (e *SimplePathExtender) Grow(path *bpath.Path) (bool, error) {
	grew := false
	for {
		stepped, done, err := e.stepOnce(path)
		if err != nil {
			return grew, err
		}
		grew = grew || stepped
		if done {
			return grew, nil
		}
	}
}
