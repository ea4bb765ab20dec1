package extend

import (
	"fmt"

	"github.com/katalvlaran/contigo/bpath"
	"github.com/katalvlaran/contigo/dbg"
	"github.com/katalvlaran/contigo/extension"
	"github.com/katalvlaran/contigo/loopdetect"
	"github.com/katalvlaran/contigo/shortloop"
)

// base holds the machinery every PathExtender variant shares: the graph to
// grow against, the chooser deciding candidates, the loop detector, the
// short-loop resolver, and the growth config.
type base struct {
	g        *dbg.Graph
	chooser  extension.Chooser
	det      *loopdetect.Detector
	resolver shortloop.Resolver
	cfg      Config
}

// stepOnce advances path by exactly one edge if the chooser narrows
// candidates to a single one, applying short-loop resolution and cycle
// trimming as side effects. grew reports whether an edge was appended;
// done reports that the caller should stop calling stepOnce again (either
// because growth stalled or because a cycle was just trimmed).
func (b *base) stepOnce(path *bpath.Path) (grew, done bool, err error) {
	head, ok := path.Back()
	if !ok {
		return false, true, nil
	}

	candidates, err := b.candidatesFrom(path, head.Edge)
	if err != nil {
		return false, true, err
	}
	if len(candidates) != 1 {
		return false, true, nil
	}

	c := candidates[0]
	path.PushBack(c.Edge, c.Distance)

	if b.cfg.InvestigateShortLoops {
		if loop, exit, ok := b.det.EdgeInShortLoop(c.Edge); ok {
			b.resolver.Resolve(b.chooser, path, c.Edge, loop, exit)
		}
	}

	if period, repeats, cycled := b.det.IsCycled(path, b.cfg.MaxLoops); cycled {
		b.det.RemoveLoop(path, period, repeats)
		return true, true, nil
	}

	return true, false, nil
}

// candidatesFrom lists head's successor edges as candidates and narrows
// them through the chooser.
func (b *base) candidatesFrom(path *bpath.Path, head dbg.EdgeID) ([]extension.Candidate, error) {
	v, err := b.g.End(head)
	if err != nil {
		return nil, fmt.Errorf("extend: %w", dbg.ErrGraphInconsistent)
	}
	outs, err := b.g.Outgoing(v)
	if err != nil {
		return nil, fmt.Errorf("extend: %w", dbg.ErrGraphInconsistent)
	}

	raw := make([]extension.Candidate, len(outs))
	for i, o := range outs {
		raw[i] = extension.Candidate{Edge: o, Distance: 0}
	}

	return b.chooser.Filter(path, raw), nil
}

// isAtSink reports whether path's back edge ends at an out-degree-zero
// vertex.
func (b *base) isAtSink(path *bpath.Path) (bool, error) {
	head, ok := path.Back()
	if !ok {
		return false, nil
	}
	v, err := b.g.End(head.Edge)
	if err != nil {
		return false, fmt.Errorf("extend: %w", dbg.ErrGraphInconsistent)
	}
	deg, err := b.g.OutDegree(v)
	if err != nil {
		return false, fmt.Errorf("extend: %w", dbg.ErrGraphInconsistent)
	}

	return deg == 0, nil
}

// sourceEdges returns every edge in g whose start vertex has in-degree
// zero — the precomputed "sources" set a ScaffoldingPathExtender jumps to.
func sourceEdges(g *dbg.Graph) ([]extension.Candidate, error) {
	var out []extension.Candidate
	for _, e := range g.Edges() {
		v, err := g.Start(e)
		if err != nil {
			return nil, fmt.Errorf("extend: %w", dbg.ErrGraphInconsistent)
		}
		deg, err := g.InDegree(v)
		if err != nil {
			return nil, fmt.Errorf("extend: %w", dbg.ErrGraphInconsistent)
		}
		if deg == 0 {
			out = append(out, extension.Candidate{Edge: e, Distance: 0})
		}
	}

	return out, nil
}
