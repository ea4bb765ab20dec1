package testgraphs

import (
	"github.com/katalvlaran/contigo/dbg"
)

// ForkEdges names the edges of a Fork fixture.
type ForkEdges struct {
	Seed    dbg.EdgeID // S -> A, the sole edge into the branch vertex
	BranchA dbg.EdgeID // A -> B
	BranchB dbg.EdgeID // A -> C
}

// Fork builds a single branch point: vertex A with two outgoing edges of
// equal standing. A growth step from Seed narrows candidates to exactly
// BranchA and BranchB, the minimal fixture for exercising an
// extension.Chooser's tie-breaking (or lack of it).
func Fork(opts ...Option) (*dbg.Graph, ForkEdges, error) {
	cfg := newConfig(opts...)

	g := dbg.NewGraph()
	s := vname(cfg, "S")
	a := vname(cfg, "A")
	b := vname(cfg, "B")
	c := vname(cfg, "C")
	for _, v := range []dbg.VertexID{s, a, b, c} {
		if err := g.AddVertexPair(v, v+"'"); err != nil {
			return nil, ForkEdges{}, err
		}
	}

	seed, _, err := g.AddEdgePair(s, a, cfg.edgeLength)
	if err != nil {
		return nil, ForkEdges{}, err
	}
	branchA, _, err := g.AddEdgePair(a, b, cfg.edgeLength)
	if err != nil {
		return nil, ForkEdges{}, err
	}
	branchB, _, err := g.AddEdgePair(a, c, cfg.edgeLength)
	if err != nil {
		return nil, ForkEdges{}, err
	}

	return g, ForkEdges{Seed: seed, BranchA: branchA, BranchB: branchB}, nil
}
