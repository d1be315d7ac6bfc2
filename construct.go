package dynpath

// construct joins two non-empty subtrees v and w (v's path ending where
// w's begins) under a fresh internal root representing an edge of gross
// cost x. It implements the relative-cost arithmetic contract: the new
// root's netmin becomes the subtree's gross minimum, its netcost the
// remainder, and each internal child's netmin is rebased (demoted) from
// gross to relative under the new root.
func construct[V Number](v, w *Node[V], x V) *Node[V] {
	assertf(v != nil && w != nil, "construct: nil child")

	root := genInternal[V]()

	grossMin := x
	if !v.external {
		grossMin = min2(grossMin, v.netmin)
	}
	if !w.external {
		grossMin = min2(grossMin, w.netmin)
	}

	root.netmin = grossMin
	root.netcost = x - grossMin

	root.left = v
	root.right = w

	if v.external {
		root.bhead = v
	} else {
		root.bhead = v.bhead
	}
	if w.external {
		root.btail = w
	} else {
		root.btail = w.btail
	}

	v.parent = root
	if !v.external {
		v.netmin = v.netmin - grossMin
	}
	w.parent = root
	if !w.external {
		w.netmin = w.netmin - grossMin
	}

	root.height = maxInt(v.height, w.height) + 1

	return root
}

// destroy is construct's inverse: it detaches root's two children,
// promoting each internal child's netmin from relative back to gross (now
// that it is itself a root), and recovers the gross edge cost root used to
// represent. root is consumed; its node is not reused.
func destroy[V Number](root *Node[V]) (v, w *Node[V], x V) {
	assertf(root != nil && !root.external, "destroy: root must be a non-nil internal node")

	v = root.left
	v.parent = nil
	if !v.external {
		v.netmin = v.netmin + root.netmin
	}

	w = root.right
	w.parent = nil
	if !w.external {
		w.netmin = w.netmin + root.netmin
	}

	x = root.netcost + root.netmin

	*root = Node[V]{} // drop references so the garbage collector can reclaim the node
	return v, w, x
}

func maxInt(a, b int) int {
	if b > a {
		return b
	}
	return a
}
