package dbg

import (
	"fmt"

	"github.com/katalvlaran/contigo/core"
)

// AddVertexPair registers v and its conjugate vc as mutually involutive.
// Re-registering the same pair is a no-op. Registering v (or vc) against a
// different conjugate than previously recorded is ErrGraphInconsistent.
// A palindromic vertex is registered by calling AddVertexPair(v, v).
//
// Complexity: O(1).
func (g *Graph) AddVertexPair(v, vc VertexID) error {
	if v == "" || vc == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.vConj[v]; ok && existing != vc {
		return fmt.Errorf("dbg: AddVertexPair(%s,%s): %w", v, vc, ErrGraphInconsistent)
	}
	if existing, ok := g.vConj[vc]; ok && existing != v {
		return fmt.Errorf("dbg: AddVertexPair(%s,%s): %w", v, vc, ErrGraphInconsistent)
	}

	if err := g.core.AddVertex(string(v)); err != nil {
		return err
	}
	if v != vc {
		if err := g.core.AddVertex(string(vc)); err != nil {
			return err
		}
	}

	g.vConj[v] = vc
	g.vConj[vc] = v

	return nil
}

// AddEdgePair adds an edge from->to of the given length, plus its conjugate
// edge conjugate(to)->conjugate(from) of the same length. Both from and to
// (and their conjugates) must already be registered via AddVertexPair.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdgePair(from, to VertexID, length int) (e, ec EdgeID, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	fromC, ok := g.vConj[from]
	if !ok {
		return "", "", fmt.Errorf("dbg: AddEdgePair: from=%s: %w", from, ErrVertexNotFound)
	}
	toC, ok := g.vConj[to]
	if !ok {
		return "", "", fmt.Errorf("dbg: AddEdgePair: to=%s: %w", to, ErrVertexNotFound)
	}

	eid, err := g.core.AddEdge(string(from), string(to), int64(length))
	if err != nil {
		return "", "", fmt.Errorf("dbg: AddEdgePair: %w", err)
	}
	ecid, err := g.core.AddEdge(string(toC), string(fromC), int64(length))
	if err != nil {
		return "", "", fmt.Errorf("dbg: AddEdgePair: %w", err)
	}

	g.eConj[EdgeID(eid)] = EdgeID(ecid)
	g.eConj[EdgeID(ecid)] = EdgeID(eid)

	return EdgeID(eid), EdgeID(ecid), nil
}

// Start returns the source vertex of e.
func (g *Graph) Start(e EdgeID) (VertexID, error) {
	edge, err := g.core.GetEdge(string(e))
	if err != nil {
		return "", ErrEdgeNotFound
	}

	return VertexID(edge.From), nil
}

// End returns the destination vertex of e.
func (g *Graph) End(e EdgeID) (VertexID, error) {
	edge, err := g.core.GetEdge(string(e))
	if err != nil {
		return "", ErrEdgeNotFound
	}

	return VertexID(edge.To), nil
}

// Length returns the number of bases edge e contributes.
func (g *Graph) Length(e EdgeID) (int, error) {
	edge, err := g.core.GetEdge(string(e))
	if err != nil {
		return 0, ErrEdgeNotFound
	}

	return int(edge.Weight), nil
}

// Outgoing returns the edges leaving v, sorted by EdgeID.
func (g *Graph) Outgoing(v VertexID) ([]EdgeID, error) {
	edges, err := g.core.Neighbors(string(v))
	if err != nil {
		return nil, translateVertexErr(err)
	}

	out := make([]EdgeID, 0, len(edges))
	for _, e := range edges {
		out = append(out, EdgeID(e.ID))
	}

	return out, nil
}

// Incoming returns the edges arriving at v, sorted by EdgeID.
func (g *Graph) Incoming(v VertexID) ([]EdgeID, error) {
	edges, err := g.core.Incoming(string(v))
	if err != nil {
		return nil, translateVertexErr(err)
	}

	out := make([]EdgeID, 0, len(edges))
	for _, e := range edges {
		out = append(out, EdgeID(e.ID))
	}

	return out, nil
}

// OutDegree returns the number of edges leaving v.
func (g *Graph) OutDegree(v VertexID) (int, error) {
	n, err := g.core.OutDegree(string(v))

	return n, translateVertexErr(err)
}

// InDegree returns the number of edges arriving at v.
func (g *Graph) InDegree(v VertexID) (int, error) {
	n, err := g.core.InDegree(string(v))

	return n, translateVertexErr(err)
}

// ConjugateEdge returns the conjugate of e.
func (g *Graph) ConjugateEdge(e EdgeID) (EdgeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ec, ok := g.eConj[e]
	if !ok {
		return "", ErrEdgeNotFound
	}

	return ec, nil
}

// ConjugateVertex returns the conjugate of v.
func (g *Graph) ConjugateVertex(v VertexID) (VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vc, ok := g.vConj[v]
	if !ok {
		return "", ErrVertexNotFound
	}

	return vc, nil
}

// Edges returns every edge ID in the graph, sorted.
func (g *Graph) Edges() []EdgeID {
	edges := g.core.Edges()
	out := make([]EdgeID, 0, len(edges))
	for _, e := range edges {
		out = append(out, EdgeID(e.ID))
	}

	return out
}

// HasVertex reports whether v is registered.
func (g *Graph) HasVertex(v VertexID) bool {
	return g.core.HasVertex(string(v))
}

// Stats delegates to the underlying core.Graph's read-only summary.
func (g *Graph) Stats() *core.GraphStats {
	return g.core.Stats()
}

// translateVertexErr maps core's vertex sentinels onto dbg's own, keeping
// the error identity stable for callers using errors.Is against this package.
func translateVertexErr(err error) error {
	switch err {
	case nil:
		return nil
	case core.ErrEmptyVertexID:
		return ErrEmptyVertexID
	case core.ErrVertexNotFound:
		return ErrVertexNotFound
	default:
		return err
	}
}
