package shortloop

import (
	"github.com/katalvlaran/contigo/bpath"
	"github.com/katalvlaran/contigo/dbg"
	"github.com/katalvlaran/contigo/extension"
)

// maxSearchIter bounds the weighted search over additional loop
// traversals; it is also the termination guarantee §5 relies on.
const maxSearchIter = 10

// Weighted chooses the number of additional loop traversals by a bounded
// search, maximizing (weight, weight-minus-next-loop-weight) lexically
// and preferring the earliest iteration on a further tie.
type Weighted struct{}

// NewWeighted returns a Weighted short-loop resolver.
func NewWeighted() *Weighted { return &Weighted{} }

// Resolve implements Resolver.
func (w *Weighted) Resolve(chooser extension.Chooser, path *bpath.Path, head, loop, exit dbg.EdgeID) {
	baseline := chooser.CountWeight(path, exit) - chooser.CountWeight(path, loop)
	maxWeight := chooser.CountWeight(path, exit)
	maxIter := 0
	diff := baseline

	trial := clonePath(path)
	for i := 1; i <= maxSearchIter; i++ {
		if chooser.CountWeight(trial, loop) == 0 {
			break
		}
		trial.PushBack(loop, 0)
		trial.PushBack(head, 0)

		wExit := chooser.CountWeight(trial, exit)
		wLoop := chooser.CountWeight(trial, loop)
		if wExit > maxWeight || (wExit == maxWeight && wExit-wLoop > diff) {
			maxWeight = wExit
			maxIter = i
			diff = wExit - wLoop
		}
	}

	for i := 0; i < maxIter; i++ {
		path.PushBack(loop, 0)
		path.PushBack(head, 0)
	}
	path.PushBack(exit, 0)
}

// clonePath copies edge contents into a fresh, unsubscribed path so the
// search can probe candidate traversal counts without mutating path or
// notifying any of its listeners.
func clonePath(path *bpath.Path) *bpath.Path {
	clone := bpath.New(path.ID(), path.Seed())
	for _, eg := range path.Edges() {
		clone.PushBack(eg.Edge, eg.Gap)
	}

	return clone
}
