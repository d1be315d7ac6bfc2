package pathindex

import (
	"math"

	"github.com/katalvlaran/dynpath"
)

// Index is an ordered, index-addressable view over a dynpath tree: vertex
// i (0 <= i <= Len()) is always reachable via a stable leaf handle, and
// edge i (0 <= i < Len()) is the edge between vertex i and vertex i+1.
//
// Index owns no balancing logic of its own: every method below is exactly
// one or two dynpath.SplitBefore calls, one dynpath primitive call, and
// one or two dynpath.Concatenate calls.
type Index[V dynpath.Number] struct {
	leaves []*dynpath.Node[V]
	root   *dynpath.Node[V]
	cfg    config
}

// New builds an Index from a sequence of edge costs: costs[i] becomes the
// cost of the edge between vertex i and vertex i+1, so New(costs) produces
// len(costs)+1 vertices numbered 0..len(costs).
func New[V dynpath.Number](costs []V, opts ...Option) (*Index[V], error) {
	if len(costs) == 0 {
		return nil, ErrEmptyInput
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	leaves := make([]*dynpath.Node[V], len(costs)+1)
	for i := range leaves {
		leaves[i] = dynpath.GenNewNode[V](i)
	}

	root := leaves[0]
	for i, c := range costs {
		root = dynpath.Concatenate(root, leaves[i+1], c)
	}

	idx := &Index[V]{leaves: leaves, root: root, cfg: cfg}
	idx.checkHeight()
	return idx, nil
}

// Len returns the number of edges currently indexed (one fewer than the
// number of vertices).
func (idx *Index[V]) Len() int {
	return len(idx.leaves) - 1
}

// Root exposes the current dynpath root, for callers that need to drop
// down to the core primitives directly.
func (idx *Index[V]) Root() *dynpath.Node[V] {
	return idx.root
}

// Vectorize returns the gross cost of every edge in path order.
func (idx *Index[V]) Vectorize() []V {
	return dynpath.VectorizeEdges(idx.root)
}

// Height returns the current balanced-tree height of the root.
func (idx *Index[V]) Height() int {
	return idx.root.Height()
}

func (idx *Index[V]) checkHeight() {
	if !idx.cfg.checkHeight {
		return
	}
	n := idx.Len()
	if n < 1 {
		return
	}
	limit := int(2*math.Log2(float64(n+1))) + 1
	dynpath.AssertHeight(idx.root.Height() <= limit)
}

func (idx *Index[V]) validateRange(start, end int) error {
	if start < 0 || end > idx.Len() || start >= end {
		return ErrIndexRange
	}
	return nil
}

// withMid splits the tree around [start, end), hands the isolated
// mid-segment (vertices start..end, edges start..end-1) to fn, then
// reassembles the full path and stores the result as the new root. fn may
// mutate mid in place (e.g. dynpath.PUpdate) or only read from it (e.g.
// dynpath.PMinCostBefore); either way the mid fragment's identity is
// preserved across the reassembly, so handles captured inside fn remain
// valid to query again afterwards.
func (idx *Index[V]) withMid(start, end int, fn func(mid *dynpath.Node[V])) error {
	if err := idx.validateRange(start, end); err != nil {
		return err
	}

	pre, rest, preCost, preOK := dynpath.SplitBefore(idx.leaves[start])

	var mid, post *dynpath.Node[V]
	var midCost V
	if end == idx.Len() {
		mid = rest
	} else {
		mid, post, midCost, _ = dynpath.SplitBefore(idx.leaves[end])
	}

	fn(mid)

	if post != nil {
		mid = dynpath.Concatenate(mid, post, midCost)
	}
	if preOK {
		idx.root = dynpath.Concatenate(pre, mid, preCost)
	} else {
		idx.root = mid
	}

	idx.checkHeight()
	return nil
}

// UpdateConstant adds delta to every edge in the sub-path [start, end).
func (idx *Index[V]) UpdateConstant(start, end int, delta V) error {
	return idx.withMid(start, end, func(mid *dynpath.Node[V]) {
		dynpath.PUpdate(mid, delta)
	})
}

// MinCostFirst locates the head-closest minimum-cost edge within the
// sub-path [start, end) and returns its right endpoint's vertex index, the
// edge's index (vertexIndex-1), and its gross cost.
func (idx *Index[V]) MinCostFirst(start, end int) (vertexIndex, edgeIndex int, cost V, err error) {
	var leaf *dynpath.Node[V]
	err = idx.withMid(start, end, func(mid *dynpath.Node[V]) {
		leaf, _ = dynpath.PMinCostBefore(mid)
	})
	if err != nil {
		return 0, 0, cost, err
	}

	vertexIndex = leaf.NodeIndex
	edgeIndex = vertexIndex - 1
	cost, _ = dynpath.PCostBefore(leaf)
	return vertexIndex, edgeIndex, cost, nil
}

// MinCostLast locates the tail-closest minimum-cost edge within the
// sub-path [start, end) and returns its left endpoint's vertex index, the
// edge's index (== vertexIndex), and its gross cost.
func (idx *Index[V]) MinCostLast(start, end int) (vertexIndex, edgeIndex int, cost V, err error) {
	var leaf *dynpath.Node[V]
	err = idx.withMid(start, end, func(mid *dynpath.Node[V]) {
		leaf, _ = dynpath.PMinCostAfter(mid)
	})
	if err != nil {
		return 0, 0, cost, err
	}

	vertexIndex = leaf.NodeIndex
	edgeIndex = vertexIndex
	cost, _ = dynpath.PCostAfter(leaf)
	return vertexIndex, edgeIndex, cost, nil
}
