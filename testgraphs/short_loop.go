package testgraphs

import (
	"github.com/katalvlaran/contigo/dbg"
)

// ShortLoopEdges names the edges of a ShortLoopMotif fixture.
type ShortLoopEdges struct {
	Seed dbg.EdgeID // X -> A, the seed a path starts from
	Head dbg.EdgeID // A -> B, the sole candidate out of A
	Loop dbg.EdgeID // B -> A, closing the short loop
	Exit dbg.EdgeID // B -> C, the way out
}

// ShortLoopMotif builds the canonical short-loop branch point: a vertex B
// with exactly two outgoing edges, one closing a one-vertex loop back to A
// and one exiting to C, preceded by a single unambiguous edge into B. A
// PathExtender growing from Seed appends Head unambiguously, finds Loop and
// Exit tied at B, and defers to a shortloop.Resolver.
func ShortLoopMotif(opts ...Option) (*dbg.Graph, ShortLoopEdges, error) {
	cfg := newConfig(opts...)

	g := dbg.NewGraph()
	x := vname(cfg, "X")
	a := vname(cfg, "A")
	b := vname(cfg, "B")
	c := vname(cfg, "C")
	for _, v := range []dbg.VertexID{x, a, b, c} {
		if err := g.AddVertexPair(v, v+"'"); err != nil {
			return nil, ShortLoopEdges{}, err
		}
	}

	seed, _, err := g.AddEdgePair(x, a, cfg.edgeLength)
	if err != nil {
		return nil, ShortLoopEdges{}, err
	}
	head, _, err := g.AddEdgePair(a, b, cfg.edgeLength)
	if err != nil {
		return nil, ShortLoopEdges{}, err
	}
	loop, _, err := g.AddEdgePair(b, a, cfg.edgeLength)
	if err != nil {
		return nil, ShortLoopEdges{}, err
	}
	exit, _, err := g.AddEdgePair(b, c, cfg.edgeLength)
	if err != nil {
		return nil, ShortLoopEdges{}, err
	}

	return g, ShortLoopEdges{Seed: seed, Head: head, Loop: loop, Exit: exit}, nil
}

func vname(cfg Config, suffix string) dbg.VertexID {
	return dbg.VertexID(cfg.prefix + suffix)
}
