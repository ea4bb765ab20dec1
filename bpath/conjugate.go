package bpath

import "github.com/katalvlaran/contigo/dbg"

// NewConjugate builds the reverse-complement of src under g's edge
// conjugation: src's edges are conjugated and replayed back-to-front, so
// walking the result reads src's sequence backwards on the opposite strand.
// An empty src yields an empty conjugate. g must have every edge in src
// registered via AddEdgePair, or NewConjugate returns the first lookup
// error encountered.
func NewConjugate(g *dbg.Graph, id PathID, seed bool, src *Path, listeners ...Listener) (*Path, error) {
	edges := src.Edges()
	out := New(id, seed, listeners...)
	for i := len(edges) - 1; i >= 0; i-- {
		ce, err := g.ConjugateEdge(edges[i].Edge)
		if err != nil {
			return nil, err
		}
		gap := 0
		if i < len(edges)-1 {
			gap = edges[i+1].Gap
		}
		out.PushBack(ce, gap)
	}

	return out, nil
}
