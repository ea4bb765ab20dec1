package extension

import (
	"math"

	"github.com/katalvlaran/contigo/bpath"
	"github.com/katalvlaran/contigo/dbg"
)

// Library summarizes a paired-read fragment-length distribution: the
// insert-size curve a Weighted chooser aligns candidate gap profiles
// against.
type Library struct {
	InsertSize float64
	StdDev     float64
	ReadLength int
}

// NewLibraryFromSamples builds a Library from observed fragment lengths
// (e.g. estimated from initial read mapping upstream of this package).
func NewLibraryFromSamples(fragmentLengths []float64, readLength int) *Library {
	mean, _, stddev := libraryStats(fragmentLengths)

	return &Library{InsertSize: mean, StdDev: stddev, ReadLength: readLength}
}

// libraryStats returns the mean, variance and standard deviation of xs.
// An empty xs yields all zeros.
func libraryStats(xs []float64) (mean, variance, stddev float64) {
	n := len(xs)
	if n == 0 {
		return 0, 0, 0
	}

	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean = sum / float64(n)

	var sqDiff float64
	for _, x := range xs {
		d := x - mean
		sqDiff += d * d
	}
	variance = sqDiff / float64(n)
	stddev = math.Sqrt(variance)

	return mean, variance, stddev
}

// expectedProfile returns a linear ramp of n cumulative-distance samples
// spanning 0..InsertSize, the expected gap/length profile a path of n
// positions should exhibit under this library's insert size.
func (lib *Library) expectedProfile(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lib.InsertSize
		return out
	}
	step := lib.InsertSize / float64(n-1)
	for i := range out {
		out[i] = step * float64(i)
	}

	return out
}

// gapProfile returns the cumulative edge-length-plus-gap distance at each
// position along path, as walked through g.
func gapProfile(path *bpath.Path, g *dbg.Graph) []float64 {
	edges := path.Edges()
	out := make([]float64, 0, len(edges))
	var cum float64
	for _, eg := range edges {
		cum += float64(mustLength(g, eg.Edge)) + float64(eg.Gap)
		out = append(out, cum)
	}

	return out
}

// mustLength returns e's length, or 0 if g has no record of e. A path's
// edges are always graph members by construction, so this only degrades
// gracefully for edges built outside the normal extension flow (e.g. in
// tests).
func mustLength(g *dbg.Graph, e dbg.EdgeID) int {
	n, err := g.Length(e)
	if err != nil {
		return 0
	}

	return n
}
