package extend

import (
	"github.com/katalvlaran/contigo/bpath"
	"github.com/katalvlaran/contigo/dbg"
	"github.com/katalvlaran/contigo/extension"
	"github.com/katalvlaran/contigo/loopdetect"
	"github.com/katalvlaran/contigo/shortloop"
)

// scaffolding holds the sink-jumping machinery shared by
// ScaffoldingPathExtender and ScaffoldingOnlyPathExtender.
type scaffolding struct {
	chooser extension.Chooser // scaffolding_chooser of §4.4
	sources []extension.Candidate
	sizes   []int
}

// Sizes returns the histogram of how many candidates the scaffolding
// chooser returned on each consultation: sizes[k] counts consultations
// that returned exactly k candidates.
func (s *scaffolding) Sizes() []int {
	return append([]int(nil), s.sizes...)
}

func (s *scaffolding) recordSize(k int) {
	for len(s.sizes) <= k {
		s.sizes = append(s.sizes, 0)
	}
	s.sizes[k]++
}

// tryJump consults the scaffolding chooser against the sources list and,
// if it narrows to exactly one source, appends it to path with its
// returned distance as the scaffold gap. It reports whether a jump was
// made.
func (s *scaffolding) tryJump(path *bpath.Path) bool {
	chosen := s.chooser.Filter(path, s.sources)
	s.recordSize(len(chosen))
	if len(chosen) != 1 {
		return false
	}

	path.PushBack(chosen[0].Edge, chosen[0].Distance)

	return true
}

// ScaffoldingPathExtender layers sink-jumping on top of SimplePathExtender:
// when normal growth stalls at a sink, it consults the sources list for a
// single scaffold jump and, if one is taken, resumes normal growth.
type ScaffoldingPathExtender struct {
	base
	scaffolding
}

// NewScaffoldingPathExtender constructs a ScaffoldingPathExtender.
// scaffoldChooser narrows the precomputed sources list to the single edge
// (if any) a sink should jump to.
func NewScaffoldingPathExtender(
	g *dbg.Graph,
	chooser extension.Chooser,
	det *loopdetect.Detector,
	resolver shortloop.Resolver,
	scaffoldChooser extension.Chooser,
	opts ...Option,
) (*ScaffoldingPathExtender, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	sources, err := sourceEdges(g)
	if err != nil {
		return nil, err
	}

	return &ScaffoldingPathExtender{
		base:        base{g: g, chooser: chooser, det: det, resolver: resolver, cfg: cfg},
		scaffolding: scaffolding{chooser: scaffoldChooser, sources: sources},
	}, nil
}

// Grow alternates normal growth steps with sink jumps until neither
// produces further progress.
func (e *ScaffoldingPathExtender) Grow(path *bpath.Path) (bool, error) {
	grew := false
	for {
		stepped, done, err := e.stepOnce(path)
		if err != nil {
			return grew, err
		}
		grew = grew || stepped
		if !done {
			continue
		}

		atSink, err := e.isAtSink(path)
		if err != nil {
			return grew, err
		}
		if !atSink || !e.tryJump(path) {
			return grew, nil
		}
		grew = true
	}
}

// ScaffoldingOnlyPathExtender performs only the sink jump: it never runs
// the normal edge-by-edge growth loop.
type ScaffoldingOnlyPathExtender struct {
	base
	scaffolding
}

// NewScaffoldingOnlyPathExtender constructs a ScaffoldingOnlyPathExtender.
func NewScaffoldingOnlyPathExtender(
	g *dbg.Graph,
	scaffoldChooser extension.Chooser,
	opts ...Option,
) (*ScaffoldingOnlyPathExtender, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	sources, err := sourceEdges(g)
	if err != nil {
		return nil, err
	}

	return &ScaffoldingOnlyPathExtender{
		base:        base{g: g, cfg: cfg},
		scaffolding: scaffolding{chooser: scaffoldChooser, sources: sources},
	}, nil
}

// Grow consults the sources list exactly once, jumping if it narrows to a
// single source.
func (e *ScaffoldingOnlyPathExtender) Grow(path *bpath.Path) (bool, error) {
	atSink, err := e.isAtSink(path)
	if err != nil {
		return false, err
	}
	if !atSink {
		return false, nil
	}

	return e.tryJump(path), nil
}
