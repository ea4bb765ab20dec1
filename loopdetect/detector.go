package loopdetect

import (
	"github.com/katalvlaran/contigo/bpath"
	"github.com/katalvlaran/contigo/dbg"
)

// Detector classifies cycling behavior against a read-only assembly graph.
type Detector struct {
	g *dbg.Graph
}

// NewDetector binds a Detector to the graph it will classify against.
func NewDetector(g *dbg.Graph) *Detector {
	return &Detector{g: g}
}

// EdgeInShortLoop reports whether head ends at a vertex with exactly two
// outgoing edges, one of which closes back to start(head) (loop) and the
// other of which leaves (exit). If the configuration is not present, ok is
// false and the resolver that consults this is a no-op.
func (d *Detector) EdgeInShortLoop(head dbg.EdgeID) (loopEdge, exitEdge dbg.EdgeID, ok bool) {
	v, err := d.g.End(head)
	if err != nil {
		return "", "", false
	}
	start, err := d.g.Start(head)
	if err != nil {
		return "", "", false
	}
	outs, err := d.g.Outgoing(v)
	if err != nil || len(outs) != 2 {
		return "", "", false
	}

	var loop, exit dbg.EdgeID
	var haveLoop, haveExit bool
	for _, e := range outs {
		end, err := d.g.End(e)
		if err != nil {
			return "", "", false
		}
		if end == start && !haveLoop {
			loop, haveLoop = e, true
		} else {
			exit, haveExit = e, true
		}
	}
	if !haveLoop || !haveExit {
		return "", "", false
	}

	return loop, exit, true
}

// IsCycled reports whether path's trailing edges consist of some period-p
// block repeated more than maxLoops times. It returns the detected period
// and repeat count alongside the verdict; both are 0 when cycled is false.
func (d *Detector) IsCycled(p *bpath.Path, maxLoops int) (period, repeats int, cycled bool) {
	ids := edgeIDs(p)
	n := len(ids)
	for candidate := 1; candidate*2 <= n; candidate++ {
		r := trailingRepeats(ids, candidate)
		if r > maxLoops {
			return candidate, r, true
		}
	}

	return 0, 0, false
}

// RemoveLoop trims path back to the first occurrence of the repeating
// period-length block: it pops (repeats-1)*period edges from the back,
// discarding every repeat after the first.
func (d *Detector) RemoveLoop(p *bpath.Path, period, repeats int) {
	toRemove := (repeats - 1) * period
	for i := 0; i < toRemove; i++ {
		p.PopBack()
	}
}

func edgeIDs(p *bpath.Path) []string {
	edges := p.Edges()
	out := make([]string, len(edges))
	for i, eg := range edges {
		out[i] = string(eg.Edge)
	}

	return out
}

// trailingRepeats counts how many consecutive period-length blocks, scanned
// backward from the tail, equal the last one (including the last one
// itself).
func trailingRepeats(ids []string, period int) int {
	n := len(ids)
	if period <= 0 || period > n {
		return 0
	}
	ref := ids[n-period:]
	count := 1
	for i := n - 2*period; i >= 0; i -= period {
		if compare(ids[i:i+period], ref) != 0 {
			break
		}
		count++
	}

	return count
}

// compare lexicographically compares two equal-length string slices. Each
// window trailingRepeats scans is already phase-aligned (it walks back in
// exact period-sized strides from the tail), so a straight positional
// comparison is sufficient; no rotation-invariant canonicalization is
// needed to recognize a block a path's own growth just appended verbatim.
func compare(a, b []string) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return 0
}
