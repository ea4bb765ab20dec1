package shortloop

import (
	"github.com/katalvlaran/contigo/bpath"
	"github.com/katalvlaran/contigo/dbg"
	"github.com/katalvlaran/contigo/extension"
)

// Resolver appends the edges needed to traverse a detected short-loop
// motif onto path. head is path's current back edge, loop is the edge
// closing back to start(head), exit is the edge leaving the motif.
type Resolver interface {
	Resolve(chooser extension.Chooser, path *bpath.Path, head, loop, exit dbg.EdgeID)
}

// Simple appends [loop, head, exit] unconditionally, traversing the loop
// exactly once regardless of evidence.
type Simple struct{}

// NewSimple returns a Simple short-loop resolver.
func NewSimple() *Simple { return &Simple{} }

// Resolve implements Resolver.
func (s *Simple) Resolve(_ extension.Chooser, path *bpath.Path, head, loop, exit dbg.EdgeID) {
	path.PushBack(loop, 0)
	path.PushBack(head, 0)
	path.PushBack(exit, 0)
}
