package loopdetect_test

import (
	"testing"

	"github.com/katalvlaran/contigo/bpath"
	"github.com/katalvlaran/contigo/dbg"
	"github.com/katalvlaran/contigo/loopdetect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_EdgeInShortLoop(t *testing.T) {
	g := dbg.NewGraph()
	require.NoError(t, g.AddVertexPair("A", "A'"))
	require.NoError(t, g.AddVertexPair("B", "B'"))
	require.NoError(t, g.AddVertexPair("C", "C'"))

	a, _, err := g.AddEdgePair("A", "B", 3)
	require.NoError(t, err)
	loop, _, err := g.AddEdgePair("B", "A", 3)
	require.NoError(t, err)
	exit, _, err := g.AddEdgePair("B", "C", 3)
	require.NoError(t, err)

	det := loopdetect.NewDetector(g)
	gotLoop, gotExit, ok := det.EdgeInShortLoop(a)
	require.True(t, ok)
	assert.Equal(t, loop, gotLoop)
	assert.Equal(t, exit, gotExit)
}

func TestDetector_EdgeInShortLoop_NoMatchOnLinearChain(t *testing.T) {
	g := dbg.NewGraph()
	require.NoError(t, g.AddVertexPair("A", "A'"))
	require.NoError(t, g.AddVertexPair("B", "B'"))
	require.NoError(t, g.AddVertexPair("C", "C'"))

	a, _, err := g.AddEdgePair("A", "B", 3)
	require.NoError(t, err)
	_, _, err = g.AddEdgePair("B", "C", 3)
	require.NoError(t, err)

	det := loopdetect.NewDetector(g)
	_, _, ok := det.EdgeInShortLoop(a)
	assert.False(t, ok)
}

func TestDetector_IsCycledAndRemoveLoop(t *testing.T) {
	g := dbg.NewGraph()
	require.NoError(t, g.AddVertexPair("A", "A'"))
	require.NoError(t, g.AddVertexPair("B", "B'"))
	require.NoError(t, g.AddVertexPair("C", "C'"))

	ab, _, err := g.AddEdgePair("A", "B", 3)
	require.NoError(t, err)
	bc, _, err := g.AddEdgePair("B", "C", 3)
	require.NoError(t, err)
	ca, _, err := g.AddEdgePair("C", "A", 3)
	require.NoError(t, err)

	det := loopdetect.NewDetector(g)
	p := bpath.New(1, true)
	p.PushBack(ab, 0)
	// Repeat the a→b→c→a cycle 4 times total (max_loops=3 should trip on the 4th).
	for i := 0; i < 4; i++ {
		p.PushBack(bc, 0)
		p.PushBack(ca, 0)
		if i < 3 {
			p.PushBack(ab, 0)
		}
	}

	period, repeats, cycled := det.IsCycled(p, 3)
	require.True(t, cycled)
	assert.Equal(t, 3, period)
	assert.Greater(t, repeats, 3)

	lenBefore := p.Len()
	det.RemoveLoop(p, period, repeats)
	assert.Less(t, p.Len(), lenBefore)
}

func TestDetector_IsCycled_FalseBelowThreshold(t *testing.T) {
	g := dbg.NewGraph()
	require.NoError(t, g.AddVertexPair("A", "A'"))
	require.NoError(t, g.AddVertexPair("B", "B'"))

	e, _, err := g.AddEdgePair("A", "B", 3)
	require.NoError(t, err)

	det := loopdetect.NewDetector(g)
	p := bpath.New(1, true)
	p.PushBack(e, 0)

	_, _, cycled := det.IsCycled(p, 3)
	assert.False(t, cycled)
}
