package extension

import (
	"github.com/katalvlaran/contigo/bpath"
	"github.com/katalvlaran/contigo/dbg"
)

// Candidate is a next-edge option: an outgoing edge and the gap it would
// introduce if chosen (0 for an adjacent edge, positive for a scaffolded
// jump).
type Candidate struct {
	Edge     dbg.EdgeID
	Distance int
}

// Chooser is the pluggable policy PathExtender consults at every growth
// step. Implementations must be deterministic (identical inputs yield
// identical outputs, same order and weights) and must never return an edge
// absent from candidates.
type Chooser interface {
	// Filter narrows candidates down to the edge(s) the policy selects.
	Filter(path *bpath.Path, candidates []Candidate) []Candidate

	// CountWeight scores a single edge against path's history. 0 means no
	// evidence; loop resolution treats 0-weight edges as non-viable.
	CountWeight(path *bpath.Path, edge dbg.EdgeID) float64
}

// WeightFunc maps (path, edge) to raw paired-read support, as already
// computed by upstream paired-read ingestion. 0 means no evidence.
type WeightFunc func(path *bpath.Path, edge dbg.EdgeID) float64
