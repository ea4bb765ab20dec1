package dbg

import (
	"sync"

	"github.com/katalvlaran/contigo/core"
)

// VertexID opaquely identifies a vertex (a k-mer) in the assembly graph.
type VertexID string

// EdgeID opaquely identifies an edge ((k+1)-mer) in the assembly graph.
type EdgeID string

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithCapacityHint pre-sizes the internal conjugate maps for an expected
// vertex/edge count, avoiding rehashing while the graph is built.
func WithCapacityHint(vertices, edges int) GraphOption {
	return func(g *Graph) {
		g.vConj = make(map[VertexID]VertexID, vertices)
		g.eConj = make(map[EdgeID]EdgeID, edges)
	}
}

// Graph is a directed multigraph (via core.Graph) plus a conjugate
// involution over its vertices and edges. It is read-only for the lifetime
// of an extension run (per the driver's concurrency model) but is built up
// mutably beforehand via AddVertexPair/AddEdgePair.
type Graph struct {
	mu sync.RWMutex // guards vConj/eConj; core.Graph guards itself

	core  *core.Graph
	vConj map[VertexID]VertexID
	eConj map[EdgeID]EdgeID
}

// NewGraph returns an empty assembly graph: directed, multi-edge, loop- and
// weight-capable (edge length lives in core's Weight field).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		core: core.NewGraph(
			core.WithDirected(true),
			core.WithMultiEdges(),
			core.WithLoops(),
			core.WithWeighted(),
		),
		vConj: make(map[VertexID]VertexID),
		eConj: make(map[EdgeID]EdgeID),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
