package testgraphs

import (
	"fmt"

	"github.com/katalvlaran/contigo/dbg"
)

// LinearChain builds an unbranched path of n vertices (n-1 edges), each
// vertex paired with a distinct prime-suffixed conjugate. A
// SimplePathExtender seeded on the first edge grows it to the last with no
// ambiguity at any step.
func LinearChain(n int, opts ...Option) (*dbg.Graph, []dbg.EdgeID, error) {
	if n < 2 {
		return nil, nil, ErrTooFewVertices
	}
	cfg := newConfig(opts...)

	g := dbg.NewGraph()
	verts := make([]dbg.VertexID, n)
	for i := 0; i < n; i++ {
		verts[i] = dbg.VertexID(fmt.Sprintf("%s%d", cfg.prefix, i))
		if err := g.AddVertexPair(verts[i], verts[i]+"'"); err != nil {
			return nil, nil, err
		}
	}

	edges := make([]dbg.EdgeID, 0, n-1)
	for i := 0; i+1 < n; i++ {
		e, _, err := g.AddEdgePair(verts[i], verts[i+1], cfg.edgeLength)
		if err != nil {
			return nil, nil, err
		}
		edges = append(edges, e)
	}

	return g, edges, nil
}
