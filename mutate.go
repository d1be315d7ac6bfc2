package dynpath

// PUpdate adds delta to every edge cost in the (sub-)path rooted at p, in
// O(1), by shifting the single relative quantity every descendant's gross
// cost is computed from. p must be an internal root.
func PUpdate[V Number](p *Node[V], delta V) {
	if p == nil {
		return
	}
	assertErr(p.parent == nil, ErrNotRoot)
	assertErr(!p.external, ErrNotInternal)

	p.netmin = p.netmin + delta
}

// Concatenate joins path p and path q end to end with a new edge of gross
// cost x, where Tail(p) is to be connected to Head(q). If either side is
// nil, the other is returned unchanged (the identity case). The result is
// always rebalanced before being returned.
func Concatenate[V Number](p, q *Node[V], x V) *Node[V] {
	if p == nil {
		return q
	}
	if q == nil {
		return p
	}

	root := construct(p, q, x)
	return topDownBalance(root)
}

// findEdgeIndex returns i+1 for the smallest i such that chain[i+1]'s
// child on the given side equals chain[i] — the chain index of the deepest
// ancestor entered from that side, i.e. the internal node representing the
// edge adjacent to v on that side of the path.
func findEdgeIndex[V Number](chain []*Node[V], fromRight bool) int {
	for i := 0; i < len(chain)-1; i++ {
		parent := chain[i+1]
		if (fromRight && parent.right == chain[i]) || (!fromRight && parent.left == chain[i]) {
			return i + 1
		}
	}
	assertf(false, "findEdgeIndex: no matching ancestor found")
	return -1
}

// splitChain peels every internal ancestor from the root down to (and
// including) the edge node at chain[edgeIndex], reassembling the
// non-v-side children into two balanced fragments p (head side) and q
// (tail side), and returns the edge cost captured at the split point.
//
// Fragment reassembly order is load-bearing: p-side outliers are
// discovered shallowest-first and must be concatenated left to right to
// reproduce the original left subsequence; q-side outliers are discovered
// in the same (shallowest-first) order but must be concatenated right to
// left, since the deepest one (closest to the split) is adjacent to v and
// so belongs at q's head.
func splitChain[V Number](chain []*Node[V], edgeIndex int) (p, q *Node[V], x V) {
	var pList, qList []*Node[V]
	var pCost, qCost []V

	for i := len(chain) - 1; i >= edgeIndex+1; i-- {
		continuesLeft := chain[i].left == chain[i-1]
		v, w, cost := destroy(chain[i])
		if continuesLeft {
			qList = append(qList, w)
			qCost = append(qCost, cost)
		} else {
			pList = append(pList, v)
			pCost = append(pCost, cost)
		}
	}

	v, w, cost := destroy(chain[edgeIndex])
	x = cost
	pList = append(pList, v)
	qList = append(qList, w)

	p = pList[0]
	for i := 1; i < len(pList); i++ {
		p = Concatenate(p, pList[i], pCost[i-1])
	}

	q = qList[len(qList)-1]
	for i := len(qList) - 2; i >= 0; i-- {
		q = Concatenate(q, qList[i], qCost[i])
	}

	return p, q, x
}

// SplitBefore cuts the edge immediately before v, the external leaf. It
// returns the head-side fragment p (Head(path(v)) .. Before(v)), the
// tail-side fragment q (v .. Tail(path(v))), the cost of the cut edge, and
// true. If v is already the head of its path there is no edge to cut:
// SplitBefore returns (nil, path(v), zero, false).
func SplitBefore[V Number](v *Node[V]) (p, q *Node[V], x V, ok bool) {
	assertErr(v != nil, ErrNilNode)
	assertErr(v.external, ErrNotExternal)

	root := Path(v)
	if v == Head(root) {
		var zero V
		return nil, root, zero, false
	}

	chain := ancestorChain(v)
	edgeIndex := findEdgeIndex(chain, true)
	p, q, x = splitChain(chain, edgeIndex)
	return p, q, x, true
}

// SplitAfter cuts the edge immediately after v, the external leaf. It
// returns the head-side fragment p (Head(path(v)) .. v), the tail-side
// fragment q (After(v) .. Tail(path(v))), the cost of the cut edge, and
// true. If v is already the tail of its path there is no edge to cut:
// SplitAfter returns (path(v), nil, zero, false).
func SplitAfter[V Number](v *Node[V]) (p, q *Node[V], x V, ok bool) {
	assertErr(v != nil, ErrNilNode)
	assertErr(v.external, ErrNotExternal)

	root := Path(v)
	if v == Tail(root) {
		var zero V
		return root, nil, zero, false
	}

	chain := ancestorChain(v)
	edgeIndex := findEdgeIndex(chain, false)
	p, q, x = splitChain(chain, edgeIndex)
	return p, q, x, true
}
