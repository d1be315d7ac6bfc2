package dynpath

// Path returns the root of the path containing v, external or internal.
// It follows parent links to the top; nil in, nil out.
func Path[V Number](v *Node[V]) *Node[V] {
	if v == nil {
		return nil
	}
	for v.parent != nil {
		v = v.parent
	}
	return v
}

// Head returns the first (leftmost) vertex of the path rooted at p. p must
// itself be a root (parent == nil); nil in, nil out.
func Head[V Number](p *Node[V]) *Node[V] {
	if p == nil {
		return nil
	}
	assertErr(p.parent == nil, ErrNotRoot)

	if p.external {
		return p
	}
	return p.bhead
}

// Tail returns the last (rightmost) vertex of the path rooted at p. p must
// itself be a root (parent == nil); nil in, nil out.
func Tail[V Number](p *Node[V]) *Node[V] {
	if p == nil {
		return nil
	}
	assertErr(p.parent == nil, ErrNotRoot)

	if p.external {
		return p
	}
	return p.btail
}

// Before returns the in-order predecessor of the external leaf v: the
// vertex immediately preceding v on its path, and true, or (nil, false) if
// v is the head of its path.
func Before[V Number](v *Node[V]) (*Node[V], bool) {
	if v == nil {
		return nil, false
	}
	assertErr(v.external, ErrNotExternal)

	w := v
	u := (*Node[V])(nil)
	for wp := w.parent; wp != nil; wp = w.parent {
		if w == wp.right {
			u = wp.left
			break
		}
		w = wp
	}
	if u == nil {
		return nil, false
	}
	if u.external {
		return u, true
	}
	return u.btail, true
}

// After returns the in-order successor of the external leaf v: the vertex
// immediately following v on its path, and true, or (nil, false) if v is
// the tail of its path.
func After[V Number](v *Node[V]) (*Node[V], bool) {
	if v == nil {
		return nil, false
	}
	assertErr(v.external, ErrNotExternal)

	w := v
	u := (*Node[V])(nil)
	for wp := w.parent; wp != nil; wp = w.parent {
		if w == wp.left {
			u = wp.right
			break
		}
		w = wp
	}
	if u == nil {
		return nil, false
	}
	if u.external {
		return u, true
	}
	return u.bhead, true
}

// ancestorChain returns v followed by each of its ancestors up to and
// including the path root: chain[0] == v, chain[len-1] == Path(v).
func ancestorChain[V Number](v *Node[V]) []*Node[V] {
	chain := []*Node[V]{v}
	for p := v.parent; p != nil; p = p.parent {
		chain = append(chain, p)
	}
	return chain
}

// grossmins computes, for every internal node in chain (ancestorChain
// order, root last), the gross minimum of its subtree: the sum of netmin
// from the root down to that node. grossmins[0] (corresponding to the
// external leaf the chain started from) is left zero and unused.
func grossmins[V Number](chain []*Node[V]) []V {
	g := make([]V, len(chain))
	last := len(chain) - 1
	g[last] = chain[last].netmin
	for i := last - 1; i >= 1; i-- {
		g[i] = g[i+1] + chain[i].netmin
	}
	return g
}

// pcostSide walks the ancestor chain of v looking for the deepest ancestor
// entered from side `fromRight` (true for "before", false for "after") and
// returns its gross edge cost.
func pcostSide[V Number](v *Node[V], fromRight bool) (V, bool) {
	chain := ancestorChain(v)
	g := grossmins(chain)
	for i := 0; i < len(chain)-1; i++ {
		parent := chain[i+1]
		if (fromRight && parent.right == chain[i]) || (!fromRight && parent.left == chain[i]) {
			return parent.netcost + g[i+1], true
		}
	}
	var zero V
	return zero, false
}

// PCostBefore returns the gross cost of the edge (Before(v), v), and true,
// or (zero, false) if v is the head of its path.
func PCostBefore[V Number](v *Node[V]) (V, bool) {
	if v == nil {
		var zero V
		return zero, false
	}
	assertErr(v.external, ErrNotExternal)

	if v == Head(Path(v)) {
		var zero V
		return zero, false
	}
	return pcostSide(v, true)
}

// PCostAfter returns the gross cost of the edge (v, After(v)), and true, or
// (zero, false) if v is the tail of its path.
func PCostAfter[V Number](v *Node[V]) (V, bool) {
	if v == nil {
		var zero V
		return zero, false
	}
	assertErr(v.external, ErrNotExternal)

	if v == Tail(Path(v)) {
		var zero V
		return zero, false
	}
	return pcostSide(v, false)
}

// PMinCostBefore locates the head-closest occurrence of the minimum-cost
// edge in the path rooted at p, and returns the right endpoint of that
// edge. p must be an internal root; returns (nil, false) if p is nil or
// external.
func PMinCostBefore[V Number](p *Node[V]) (*Node[V], bool) {
	if p == nil || p.external {
		return nil, false
	}
	assertErr(p.parent == nil, ErrNotRoot)

	u := p
	for {
		if closeToZero(u.netcost) && (u.left.external || u.left.netmin > 0) {
			break
		}
		if !u.left.external && closeToZero(u.left.netmin) {
			u = u.left
		} else {
			assertf(u.netcost > 0, "PMinCostBefore: expected u.netcost > 0")
			u = u.right
		}
	}

	if u.right.external {
		return u.btail, true
	}
	return u.right.bhead, true
}

// PMinCostAfter locates the tail-closest occurrence of the minimum-cost
// edge in the path rooted at p, and returns the left endpoint of that
// edge. p must be an internal root; returns (nil, false) if p is nil or
// external.
func PMinCostAfter[V Number](p *Node[V]) (*Node[V], bool) {
	if p == nil || p.external {
		return nil, false
	}
	assertErr(p.parent == nil, ErrNotRoot)

	u := p
	for {
		if closeToZero(u.netcost) && (u.right.external || u.right.netmin > 0) {
			break
		}
		if !u.right.external && closeToZero(u.right.netmin) {
			u = u.right
		} else {
			assertf(u.netcost > 0, "PMinCostAfter: expected u.netcost > 0")
			u = u.left
		}
	}

	if u.left.external {
		return u.bhead, true
	}
	return u.left.btail, true
}
