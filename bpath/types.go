package bpath

import (
	"sync/atomic"

	"github.com/katalvlaran/contigo/dbg"
)

// PathID uniquely identifies a Path within a single extension run's arena.
type PathID uint64

// Arena hands out unique, monotonically increasing PathIDs. Safe for
// concurrent use, unlike Path itself.
type Arena struct {
	next uint64
}

// NewArena returns an empty arena.
func NewArena() *Arena { return &Arena{} }

// NewID reserves and returns the next PathID.
func (a *Arena) NewID() PathID {
	return PathID(atomic.AddUint64(&a.next, 1))
}

// EdgeGap pairs an edge with the gap preceding it: the inferred distance
// between end(edges[i-1]) and start(edges[i]). Gap is 0 for the first edge
// in a path and for adjacent (non-scaffolded) edges; Gap > 0 marks a
// scaffolded jump.
type EdgeGap struct {
	Edge dbg.EdgeID
	Gap  int
}

// EventKind classifies a Path mutation.
type EventKind int

const (
	// FrontEdgeAdded fires when an edge is prepended to the path (PushFront).
	FrontEdgeAdded EventKind = iota
	// BackEdgeAdded fires when an edge is appended to the path (PushBack) —
	// the common case, used by every PathExtender to grow the active tip.
	BackEdgeAdded
	// FrontEdgeRemoved fires when the first edge is removed (PopFront).
	FrontEdgeRemoved
	// BackEdgeRemoved fires when the last edge is removed (PopBack), the
	// case used by loop trimming and by Clear.
	BackEdgeRemoved
)

// Event describes a single Path mutation, delivered synchronously to every
// listener registered at construction time, in registration order.
type Event struct {
	Kind EventKind
	Edge dbg.EdgeID
	Gap  int
}

// Listener receives Path mutation events. Subscriptions are established at
// path creation and are never revoked before the path is torn down.
type Listener interface {
	OnPathEvent(p *Path, ev Event)
}
