package bpath

import "github.com/katalvlaran/contigo/dbg"

// Path is an ordered sequence of (EdgeId, gap) pairs growing at either end.
// Forward extension (the common case) always appends via PushBack; PushFront
// and the front_edge_* events exist for symmetry and for extenders that grow
// from both ends, but the covering driver in this module only ever uses
// PushBack/PopBack on its clones.
//
// Path is not safe for concurrent use.
type Path struct {
	id            PathID
	seed          bool
	edges         []EdgeGap
	listeners     []Listener
	conjugate     *Path
	backEdgeCount uint64
}

// New creates an empty Path with the given identity, seed marker, and the
// listeners that will observe every subsequent mutation.
func New(id PathID, seed bool, listeners ...Listener) *Path {
	return &Path{
		id:        id,
		seed:      seed,
		listeners: append([]Listener(nil), listeners...),
	}
}

// ID returns the path's unique identifier.
func (p *Path) ID() PathID { return p.id }

// Seed reports whether this path was marked as a seed at construction.
func (p *Path) Seed() bool { return p.seed }

// Len returns the number of edges in the path.
func (p *Path) Len() int { return len(p.edges) }

// Empty reports whether the path currently holds no edges.
func (p *Path) Empty() bool { return len(p.edges) == 0 }

// Edges returns a defensive copy of the path's (edge, gap) sequence.
func (p *Path) Edges() []EdgeGap {
	return append([]EdgeGap(nil), p.edges...)
}

// EdgeAt returns the i-th (edge, gap) pair.
func (p *Path) EdgeAt(i int) EdgeGap { return p.edges[i] }

// Back returns the last edge in the path — the active growth tip that
// PathExtender consults for outgoing candidates. ok is false for an empty
// path.
func (p *Path) Back() (e EdgeGapRef, ok bool) {
	n := len(p.edges)
	if n == 0 {
		return EdgeGapRef{}, false
	}

	return EdgeGapRef{Edge: p.edges[n-1].Edge, Gap: p.edges[n-1].Gap}, true
}

// Front returns the first edge in the path. ok is false for an empty path.
func (p *Path) Front() (e EdgeGapRef, ok bool) {
	if len(p.edges) == 0 {
		return EdgeGapRef{}, false
	}

	return EdgeGapRef{Edge: p.edges[0].Edge, Gap: p.edges[0].Gap}, true
}

// EdgeGapRef is a read-only view of an EdgeGap returned by Back/Front.
type EdgeGapRef = EdgeGap

// Conjugate returns the sibling path representing the reverse-complement
// sequence, or nil if none was linked.
func (p *Path) Conjugate() *Path { return p.conjugate }

// SetConjugate links p and c as conjugate siblings. The driver edits both
// sides explicitly; Path never mirrors edits automatically.
func (p *Path) SetConjugate(c *Path) { p.conjugate = c }

// PushBack appends edge with the given preceding gap, growing the path's
// active tip. Fires BackEdgeAdded and advances the back-edge counter that
// CheckPrevious reads.
func (p *Path) PushBack(edge dbg.EdgeID, gap int) {
	p.edges = append(p.edges, EdgeGap{Edge: edge, Gap: gap})
	p.backEdgeCount++
	p.notify(Event{Kind: BackEdgeAdded, Edge: edge, Gap: gap})
}

// BackEdgeCount returns the number of edges ever appended via PushBack,
// monotonically increasing over the path's lifetime. Unlike Len, it never
// decreases when PopBack or Clear removes edges, so it can serve as a
// progress watermark across separate observations.
func (p *Path) BackEdgeCount() uint64 { return p.backEdgeCount }

// CheckPrevious reports whether p's back-edge counter has advanced past
// last, the value a caller last observed (typically via a prior
// CheckPrevious or BackEdgeCount call on this same Path). current is the
// counter's present value, for the caller to store as its next last. This
// is how a conjugate pair detects "has the sibling clone's back advanced
// since I last looked" without diffing edge slices directly.
func (p *Path) CheckPrevious(last uint64) (advanced bool, current uint64) {
	current = p.backEdgeCount

	return current > last, current
}

// PopBack removes and returns the last edge, firing BackEdgeRemoved. ok is
// false for an empty path.
func (p *Path) PopBack() (edge dbg.EdgeID, ok bool) {
	n := len(p.edges)
	if n == 0 {
		return "", false
	}
	last := p.edges[n-1]
	p.edges = p.edges[:n-1]
	p.notify(Event{Kind: BackEdgeRemoved, Edge: last.Edge, Gap: last.Gap})

	return last.Edge, true
}

// PushFront prepends edge to the start of the path. gapToNext is the gap
// that now precedes the edge that used to be first (the distance from the
// new edge's end to that edge's start); it is ignored if the path was
// previously empty. Fires FrontEdgeAdded.
func (p *Path) PushFront(edge dbg.EdgeID, gapToNext int) {
	if len(p.edges) > 0 {
		p.edges[0].Gap = gapToNext
	}
	p.edges = append([]EdgeGap{{Edge: edge, Gap: 0}}, p.edges...)
	p.notify(Event{Kind: FrontEdgeAdded, Edge: edge, Gap: gapToNext})
}

// PopFront removes and returns the first edge, firing FrontEdgeRemoved. The
// new first edge (if any) has its Gap reset to 0, since it no longer has a
// predecessor. ok is false for an empty path.
func (p *Path) PopFront() (edge dbg.EdgeID, ok bool) {
	if len(p.edges) == 0 {
		return "", false
	}
	first := p.edges[0]
	p.edges = p.edges[1:]
	if len(p.edges) > 0 {
		p.edges[0].Gap = 0
	}
	p.notify(Event{Kind: FrontEdgeRemoved, Edge: first.Edge, Gap: first.Gap})

	return first.Edge, true
}

// Clear empties the path, firing BackEdgeRemoved for every edge from tail to
// head so coverage observers un-register cleanly. The Path struct itself
// stays alive — callers keep holding cleared paths as valid, empty elements
// of a result set.
func (p *Path) Clear() {
	for len(p.edges) > 0 {
		p.PopBack()
	}
}

// Contains reports whether edge appears anywhere in the path.
func (p *Path) Contains(edge dbg.EdgeID) bool {
	for _, eg := range p.edges {
		if eg.Edge == edge {
			return true
		}
	}

	return false
}

// ContainsSubpath reports whether sub's edge sequence appears as a
// contiguous run within p, in order. An empty sub is trivially contained.
func (p *Path) ContainsSubpath(sub *Path) bool {
	if sub.Len() == 0 {
		return true
	}
	if sub.Len() > p.Len() {
		return false
	}
	for start := 0; start+sub.Len() <= p.Len(); start++ {
		match := true
		for i := 0; i < sub.Len(); i++ {
			if p.edges[start+i].Edge != sub.edges[i].Edge {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}

// notify delivers ev to every registered listener, in registration order.
func (p *Path) notify(ev Event) {
	for _, l := range p.listeners {
		l.OnPathEvent(p, ev)
	}
}
