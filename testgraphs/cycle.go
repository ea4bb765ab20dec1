package testgraphs

import (
	"fmt"

	"github.com/katalvlaran/contigo/dbg"
)

// SelfSustainingCycle builds a pure period-vertex ring with no exit: every
// vertex has out-degree exactly 1, pointing at its successor mod period. A
// path seeded anywhere on the ring grows forever absent a loop detector's
// intervention, making this the fixture for testable property #4
// (cycle trimming stops growth within bounded iterations).
func SelfSustainingCycle(period int, opts ...Option) (*dbg.Graph, []dbg.EdgeID, error) {
	if period < 2 {
		return nil, nil, ErrTooFewVertices
	}
	cfg := newConfig(opts...)

	g := dbg.NewGraph()
	verts := make([]dbg.VertexID, period)
	for i := 0; i < period; i++ {
		verts[i] = dbg.VertexID(fmt.Sprintf("%s%d", cfg.prefix, i))
		if err := g.AddVertexPair(verts[i], verts[i]+"'"); err != nil {
			return nil, nil, err
		}
	}

	edges := make([]dbg.EdgeID, period)
	for i := 0; i < period; i++ {
		e, _, err := g.AddEdgePair(verts[i], verts[(i+1)%period], cfg.edgeLength)
		if err != nil {
			return nil, nil, err
		}
		edges[i] = e
	}

	return g, edges, nil
}
