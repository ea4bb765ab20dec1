package testgraphs

import (
	"fmt"

	"github.com/katalvlaran/contigo/dbg"
)

// ScaffoldGraph is a pair of disjoint linear chains with no edge connecting
// them: Left ends at an out-degree-zero sink, Right begins at an
// in-degree-zero source. Neither a SimplePathExtender nor a normal growth
// step can cross the gap; only a ScaffoldingPathExtender's sink jump onto
// Right's source edge can.
type ScaffoldGraph struct {
	Left  []dbg.EdgeID
	Right []dbg.EdgeID
}

// ScaffoldingGap builds a ScaffoldGraph with leftLen edges in Left and
// rightLen edges in Right.
func ScaffoldingGap(leftLen, rightLen int, opts ...Option) (*dbg.Graph, ScaffoldGraph, error) {
	if leftLen < 1 || rightLen < 1 {
		return nil, ScaffoldGraph{}, ErrTooFewVertices
	}
	cfg := newConfig(opts...)

	g := dbg.NewGraph()

	left, err := chainInto(g, cfg, "L", leftLen)
	if err != nil {
		return nil, ScaffoldGraph{}, err
	}
	right, err := chainInto(g, cfg, "R", rightLen)
	if err != nil {
		return nil, ScaffoldGraph{}, err
	}

	return g, ScaffoldGraph{Left: left, Right: right}, nil
}

// chainInto adds n+1 vertices named prefix+letter+i and n sequential edges
// between them to g, returning the edges in order.
func chainInto(g *dbg.Graph, cfg Config, letter string, n int) ([]dbg.EdgeID, error) {
	verts := make([]dbg.VertexID, n+1)
	for i := range verts {
		verts[i] = dbg.VertexID(fmt.Sprintf("%s%s%d", cfg.prefix, letter, i))
		if err := g.AddVertexPair(verts[i], verts[i]+"'"); err != nil {
			return nil, err
		}
	}

	edges := make([]dbg.EdgeID, n)
	for i := 0; i < n; i++ {
		e, _, err := g.AddEdgePair(verts[i], verts[i+1], cfg.edgeLength)
		if err != nil {
			return nil, err
		}
		edges[i] = e
	}

	return edges, nil
}
