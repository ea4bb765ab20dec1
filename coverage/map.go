package coverage

import (
	"fmt"

	"github.com/katalvlaran/contigo/bpath"
	"github.com/katalvlaran/contigo/dbg"
)

// Map is an EdgeId → multiset<*bpath.Path> index: for every path P and edge
// e in P, P appears in cov[e] exactly once per occurrence of e in P.
//
// Map is not safe for concurrent use.
type Map struct {
	cov      map[dbg.EdgeID][]*bpath.Path
	warnings []string
}

// NewMap returns an empty coverage map.
func NewMap() *Map {
	return &Map{cov: make(map[dbg.EdgeID][]*bpath.Path)}
}

// OnPathEvent implements bpath.Listener. Edge-added events register p under
// the mutated edge; edge-removed events deregister it.
func (m *Map) OnPathEvent(p *bpath.Path, ev bpath.Event) {
	switch ev.Kind {
	case bpath.BackEdgeAdded, bpath.FrontEdgeAdded:
		m.register(ev.Edge, p)
	case bpath.BackEdgeRemoved, bpath.FrontEdgeRemoved:
		m.deregister(ev.Edge, p)
	}
}

// Replay registers every edge p currently holds, in path order, as though
// each had just been pushed to the back. Used right after subscribing a
// listener to a path that was cloned with pre-existing edges, since
// subscription does not retroactively deliver past events.
func (m *Map) Replay(p *bpath.Path) {
	for _, eg := range p.Edges() {
		m.register(eg.Edge, p)
	}
}

func (m *Map) register(e dbg.EdgeID, p *bpath.Path) {
	m.cov[e] = append(m.cov[e], p)
}

func (m *Map) deregister(e dbg.EdgeID, p *bpath.Path) {
	list := m.cov[e]
	for i, q := range list {
		if q == p {
			m.cov[e] = append(list[:i], list[i+1:]...)
			return
		}
	}
	// CoverageInconsistent: deregistering from a slot this path never
	// occupied. Warning only; the map is already in the state it should be.
	m.warnings = append(m.warnings, fmt.Sprintf(
		"coverage: path %d deregistered from edge %s without prior registration", p.ID(), e))
}

// Coverage returns |cov[e]|, counting multiplicity.
func (m *Map) Coverage(e dbg.EdgeID) int { return len(m.cov[e]) }

// UniqueCoverage returns the number of distinct paths covering e.
func (m *Map) UniqueCoverage(e dbg.EdgeID) int {
	seen := make(map[*bpath.Path]struct{}, len(m.cov[e]))
	for _, p := range m.cov[e] {
		seen[p] = struct{}{}
	}

	return len(seen)
}

// CoveringPaths returns a defensive copy of the paths registered on e.
func (m *Map) CoveringPaths(e dbg.EdgeID) []*bpath.Path {
	out := make([]*bpath.Path, len(m.cov[e]))
	copy(out, m.cov[e])

	return out
}

// PathCoverage returns min over i of Coverage(path[i]), or 0 for an empty
// path.
func (m *Map) PathCoverage(p *bpath.Path) int {
	edges := p.Edges()
	if len(edges) == 0 {
		return 0
	}
	min := -1
	for _, eg := range edges {
		c := m.Coverage(eg.Edge)
		if min == -1 || c < min {
			min = c
		}
	}

	return min
}

// PathUniqueCoverage returns min over i of UniqueCoverage(path[i]), or 0
// for an empty path. Used to detect whether a seed is now subsumed by
// some other covering path.
func (m *Map) PathUniqueCoverage(p *bpath.Path) int {
	edges := p.Edges()
	if len(edges) == 0 {
		return 0
	}
	min := -1
	for _, eg := range edges {
		c := m.UniqueCoverage(eg.Edge)
		if min == -1 || c < min {
			min = c
		}
	}

	return min
}

// Warnings returns every CoverageInconsistent warning recorded so far.
func (m *Map) Warnings() []string {
	return append([]string(nil), m.warnings...)
}

// Verify cross-checks that every edge each of paths contains is indeed
// registered as covering that edge in the map, returning one warning string
// per mismatch rather than failing.
func (m *Map) Verify(paths ...*bpath.Path) []string {
	var out []string
	for _, p := range paths {
		for _, eg := range p.Edges() {
			found := false
			for _, q := range m.cov[eg.Edge] {
				if q == p {
					found = true
					break
				}
			}
			if !found {
				out = append(out, fmt.Sprintf(
					"coverage: path %d contains edge %s but is not registered on it", p.ID(), eg.Edge))
			}
		}
	}

	return out
}

// UncoveredEdges returns every edge of g with zero coverage.
func (m *Map) UncoveredEdges(g *dbg.Graph) []dbg.EdgeID {
	var out []dbg.EdgeID
	for _, e := range g.Edges() {
		if m.Coverage(e) == 0 {
			out = append(out, e)
		}
	}

	return out
}
