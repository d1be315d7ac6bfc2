package dynpath_test

import (
	"testing"

	"github.com/katalvlaran/dynpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPath concatenates len(costs)+1 freshly minted leaves (numbered
// 0..len(costs)) into a single path, costs[i] being the cost of the edge
// between vertex i and vertex i+1. It returns the resulting root and the
// stable leaf handles in vertex order.
func buildPath[V dynpath.Number](t *testing.T, costs []V) (*dynpath.Node[V], []*dynpath.Node[V]) {
	t.Helper()
	require.NotEmpty(t, costs)

	leaves := make([]*dynpath.Node[V], len(costs)+1)
	for i := range leaves {
		leaves[i] = dynpath.GenNewNode[V](i)
	}

	root := leaves[0]
	for i, c := range costs {
		root = dynpath.Concatenate(root, leaves[i+1], c)
	}
	return root, leaves
}

func sequence(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Scenario 1: construction and read-back, A = [0,1,...,19].
func TestConstructionAndReadback(t *testing.T) {
	costs := sequence(20)
	root, leaves := buildPath(t, costs)

	assert.Equal(t, costs, dynpath.VectorizeEdges(root))

	wantVertices := make([]int, 21)
	for i := range wantVertices {
		wantVertices[i] = i
	}
	assert.Equal(t, wantVertices, dynpath.VectorizeVertices(root))

	assert.Equal(t, 0, dynpath.Head(root).NodeIndex)
	assert.Equal(t, 20, dynpath.Tail(root).NodeIndex)

	costAfterHead, ok := dynpath.PCostAfter(leaves[0])
	require.True(t, ok)
	assert.InDelta(t, 0, costAfterHead, 1e-9)

	costBeforeTail, ok := dynpath.PCostBefore(leaves[20])
	require.True(t, ok)
	assert.InDelta(t, 19, costBeforeTail, 1e-9)

	minBefore, ok := dynpath.PMinCostBefore(root)
	require.True(t, ok)
	assert.Equal(t, 1, minBefore.NodeIndex)

	minAfter, ok := dynpath.PMinCostAfter(root)
	require.True(t, ok)
	assert.Equal(t, 0, minAfter.NodeIndex)
}

// splitRange isolates the edges [s, t) of root via two SplitBefore calls
// and returns the mid fragment plus the pieces needed to reassemble.
func splitRange(t *testing.T, root *dynpath.Node[float64], leaves []*dynpath.Node[float64], s, tt int) (pre, mid, post *dynpath.Node[float64], preCost, postCost float64, havePre, havePost bool) {
	t.Helper()
	pre, rest, preCost, havePre := dynpath.SplitBefore(leaves[s])
	if tt == len(leaves)-1 {
		mid, post, havePost = rest, nil, false
		return
	}
	mid, post, postCost, havePost = dynpath.SplitBefore(leaves[tt])
	return
}

func reassemble[V dynpath.Number](pre, mid, post *dynpath.Node[V], preCost, postCost V, havePre, havePost bool) *dynpath.Node[V] {
	if havePost {
		mid = dynpath.Concatenate(mid, post, postCost)
	}
	if havePre {
		return dynpath.Concatenate(pre, mid, preCost)
	}
	return mid
}

// Scenarios 2 and 3: range-add.
func TestRangeAdd(t *testing.T) {
	costs := sequence(20)
	root, leaves := buildPath(t, costs)

	pre, mid, post, preCost, postCost, havePre, havePost := splitRange(t, root, leaves, 0, 15)
	dynpath.PUpdate(mid, 5)
	root = reassemble(pre, mid, post, preCost, postCost, havePre, havePost)

	want := append([]float64{}, costs...)
	for i := 0; i < 15; i++ {
		want[i] += 5
	}
	assert.InDeltaSlice(t, want, dynpath.VectorizeEdges(root), 1e-9)

	leaves2 := leaves // handles stable across reassembly
	pre, mid, post, preCost, postCost, havePre, havePost = splitRange(t, root, leaves2, 5, 20)
	dynpath.PUpdate(mid, -6)
	root = reassemble(pre, mid, post, preCost, postCost, havePre, havePost)

	for i := 5; i < 20; i++ {
		want[i] -= 6
	}
	assert.InDeltaSlice(t, want, dynpath.VectorizeEdges(root), 1e-9)
}

// Scenario 4: tied minimum.
func TestTiedMinimum(t *testing.T) {
	costs := sequence(20)
	for i := 6; i <= 11; i++ {
		costs[i] = 3.14
	}
	// make sure every other entry strictly exceeds the tie.
	for i := range costs {
		if i < 6 || i > 11 {
			costs[i] += 100
		}
	}
	root, leaves := buildPath(t, costs)

	pre, mid, post, preCost, postCost, havePre, havePost := splitRange(t, root, leaves, 6, 12)

	first, ok := dynpath.PMinCostBefore(mid)
	require.True(t, ok)
	assert.Equal(t, 7, first.NodeIndex)
	firstCost, ok := dynpath.PCostBefore(first)
	require.True(t, ok)
	assert.InDelta(t, 3.14, firstCost, 1e-9)

	last, ok := dynpath.PMinCostAfter(mid)
	require.True(t, ok)
	assert.Equal(t, 11, last.NodeIndex)
	lastCost, ok := dynpath.PCostAfter(last)
	require.True(t, ok)
	assert.InDelta(t, 3.14, lastCost, 1e-9)

	_ = reassemble(pre, mid, post, preCost, postCost, havePre, havePost)
}

// Scenario 5: singleton midsection.
func TestSingletonMidsection(t *testing.T) {
	costs := sequence(10)
	root, leaves := buildPath(t, costs)

	p1, q1, x1, ok1 := dynpath.SplitBefore(leaves[4])
	require.True(t, ok1)
	p2, q2, x2, ok2 := dynpath.SplitAfter(leaves[4])
	require.True(t, ok2)
	_ = p1

	assert.True(t, p2.External())
	assert.Equal(t, 4, p2.NodeIndex)
	_, minOK := dynpath.PMinCostBefore(p2)
	assert.False(t, minOK)

	root = dynpath.Concatenate(p2, q2, x2)
	root = dynpath.Concatenate(p1, root, x1)
	assert.InDeltaSlice(t, costs, dynpath.VectorizeEdges(root), 1e-9)
}

// Scenario 6: head/tail edge cases.
func TestHeadTailEdgeCases(t *testing.T) {
	costs := sequence(5)
	root, leaves := buildPath(t, costs)

	p, q, _, ok := dynpath.SplitBefore(leaves[0])
	assert.False(t, ok)
	assert.Nil(t, p)
	assert.Same(t, root, q)

	p, q, _, ok = dynpath.SplitAfter(leaves[5])
	assert.False(t, ok)
	assert.Nil(t, q)
	assert.Same(t, root, p)
}

// Neighbor consistency invariant.
func TestNeighborConsistency(t *testing.T) {
	costs := sequence(8)
	_, leaves := buildPath(t, costs)

	for _, v := range leaves {
		if before, ok := dynpath.Before(v); ok {
			after, ok := dynpath.After(before)
			require.True(t, ok)
			assert.Same(t, v, after)
		}
	}
}

// Balance invariant after range-add and split/concatenate churn.
func TestBalanceStaysLogarithmic(t *testing.T) {
	costs := sequence(500)
	root, leaves := buildPath(t, costs)

	for i := 0; i < 50; i++ {
		s := i
		tt := len(leaves) - 1 - i
		if s >= tt {
			break
		}
		pre, mid, post, preCost, postCost, havePre, havePost := splitRange(t, root, leaves, s, tt)
		dynpath.PUpdate(mid, 1.0)
		root = reassemble(pre, mid, post, preCost, postCost, havePre, havePost)
	}

	limit := 2 * 12 // generous bound; log2(501) ~ 9
	assert.LessOrEqual(t, root.Height(), limit)
}
