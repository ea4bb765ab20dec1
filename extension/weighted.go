package extension

import (
	"github.com/katalvlaran/contigo/bpath"
	"github.com/katalvlaran/contigo/dbg"
	"github.com/katalvlaran/contigo/dtw"
)

// Weighted scores candidates from an externally-supplied WeightFunc and
// keeps only the highest-scoring edge(s). When a Library is attached, the
// raw weight is refined by aligning the path's gap profile against the
// library's expected insert-size curve.
type Weighted struct {
	g        *dbg.Graph
	weightFn WeightFunc
	lib      *Library
	dtwOpts  dtw.Options
}

// WeightedOption configures a Weighted chooser at construction.
type WeightedOption func(*Weighted)

// WithLibrary attaches a paired-read fragment-length Library, enabling
// DTW-based gap-profile refinement of the raw weight.
func WithLibrary(lib *Library) WeightedOption {
	return func(w *Weighted) { w.lib = lib }
}

// WithDTWOptions overrides the DTW options used for gap-profile alignment.
// Ignored unless a Library is also attached.
func WithDTWOptions(opts dtw.Options) WeightedOption {
	return func(w *Weighted) { w.dtwOpts = opts }
}

// NewWeighted builds a Weighted chooser over g, scoring edges with weightFn.
func NewWeighted(g *dbg.Graph, weightFn WeightFunc, opts ...WeightedOption) *Weighted {
	w := &Weighted{g: g, weightFn: weightFn, dtwOpts: dtw.DefaultOptions()}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Filter keeps the candidate(s) with the strictly highest CountWeight.
// A non-positive best weight means no candidate is viable: Filter returns
// nil rather than guessing.
func (w *Weighted) Filter(path *bpath.Path, candidates []Candidate) []Candidate {
	var best []Candidate
	bestWeight := 0.0
	for _, c := range candidates {
		wt := w.CountWeight(path, c.Edge)
		switch {
		case wt > bestWeight:
			bestWeight = wt
			best = []Candidate{c}
		case wt == bestWeight && wt > 0:
			best = append(best, c)
		}
	}

	return best
}

// CountWeight returns weightFn's raw score when no Library is attached (or
// the raw score is non-positive), preserving exact externally-supplied
// weight semantics. With a Library attached and a positive raw score, the
// score is refined by how closely path's gap profile tracks the library's
// expected insert-size curve at edge's position.
func (w *Weighted) CountWeight(path *bpath.Path, edge dbg.EdgeID) float64 {
	base := w.weightFn(path, edge)
	if base <= 0 || w.lib == nil || w.lib.InsertSize <= 0 {
		return base
	}

	observed := gapProfile(path, w.g)
	next := append(append([]float64(nil), observed...), lastCum(observed)+float64(mustLength(w.g, edge)))
	expected := w.lib.expectedProfile(len(next))

	opts := w.dtwOpts
	dist, _, err := dtw.DTW(next, expected, &opts)
	if err != nil {
		return base
	}

	return base / (1 + dist/w.lib.InsertSize)
}

func lastCum(observed []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	return observed[len(observed)-1]
}
