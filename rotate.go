package dynpath

// rotateLeft performs a standard BST left rotation around root, which must
// have an internal right child (rotating through an external child is
// undefined and returns nil). In-order is preserved by construction; what
// requires care is rebuilding netmin/netcost for the two nodes that change
// position and re-relativizing the three subtrees that hang off them.
//
// Caller contract: the caller must have already promoted root.netmin to
// its gross (absolute) value before calling rotateLeft in an off-root
// context (i.e. when root is not actually the path root), and must demote
// the returned node's netmin back to relative once it is reattached under
// its own parent. The balancer is the only caller and honors this
// contract; see topDownBalance.
func rotateLeft[V Number](root *Node[V]) *Node[V] {
	if root == nil || root.right == nil || root.right.external {
		return nil
	}

	newRoot := root.right

	root.right = newRoot.left
	newRoot.left = root

	p := root.left
	q := root.right
	r := newRoot.right

	root.parent = newRoot
	newRoot.parent = nil
	q.parent = root

	rootGrossmin := root.netmin
	rootGrosscost := root.netcost + rootGrossmin
	newRootGrossmin := rootGrossmin + newRoot.netmin
	newRootGrosscost := newRoot.netcost + newRootGrossmin
	pGrossmin := rootGrossmin + p.netmin
	qGrossmin := newRootGrossmin + q.netmin
	rGrossmin := newRootGrossmin + r.netmin

	rootGrossminNew := rootGrosscost
	if !p.external {
		rootGrossminNew = min2(rootGrossminNew, pGrossmin)
	}
	if !q.external {
		rootGrossminNew = min2(rootGrossminNew, qGrossmin)
	}

	newRootGrossminNew := min2(newRootGrossmin, rootGrossminNew)

	newRoot.netmin = newRootGrossminNew
	newRoot.netcost = newRootGrosscost - newRootGrossminNew

	root.netmin = rootGrossminNew - newRootGrossminNew
	root.netcost = rootGrosscost - rootGrossminNew

	p.netmin = pGrossmin - rootGrossminNew
	q.netmin = qGrossmin - rootGrossminNew
	r.netmin = rGrossmin - newRootGrossminNew

	if q.external {
		root.btail = q
	} else {
		root.btail = q.btail
	}
	if p.external {
		newRoot.bhead = p
	} else {
		newRoot.bhead = p.bhead
	}

	root.height = maxInt(p.height, q.height) + 1
	newRoot.height = maxInt(root.height, r.height) + 1

	return newRoot
}

// rotateRight is the mirror of rotateLeft, pivoting around root's internal
// left child. See rotateLeft for the caller contract and derivation.
func rotateRight[V Number](root *Node[V]) *Node[V] {
	if root == nil || root.left == nil || root.left.external {
		return nil
	}

	newRoot := root.left

	root.left = newRoot.right
	newRoot.right = root

	p := newRoot.left
	q := root.left
	r := root.right

	root.parent = newRoot
	newRoot.parent = nil
	q.parent = root

	rootGrossmin := root.netmin
	rootGrosscost := root.netcost + rootGrossmin
	newRootGrossmin := rootGrossmin + newRoot.netmin
	newRootGrosscost := newRoot.netcost + newRootGrossmin
	pGrossmin := newRootGrossmin + p.netmin
	qGrossmin := newRootGrossmin + q.netmin
	rGrossmin := rootGrossmin + r.netmin

	rootGrossminNew := rootGrosscost
	if !q.external {
		rootGrossminNew = min2(rootGrossminNew, qGrossmin)
	}
	if !r.external {
		rootGrossminNew = min2(rootGrossminNew, rGrossmin)
	}

	newRootGrossminNew := min2(newRootGrossmin, rootGrossminNew)

	newRoot.netmin = newRootGrossminNew
	newRoot.netcost = newRootGrosscost - newRootGrossminNew

	root.netmin = rootGrossminNew - newRootGrossminNew
	root.netcost = rootGrosscost - rootGrossminNew

	p.netmin = pGrossmin - newRootGrossminNew
	q.netmin = qGrossmin - rootGrossminNew
	r.netmin = rGrossmin - rootGrossminNew

	if q.external {
		root.bhead = q
	} else {
		root.bhead = q.bhead
	}
	if r.external {
		newRoot.btail = r
	} else {
		newRoot.btail = r.btail
	}

	root.height = maxInt(q.height, r.height) + 1
	newRoot.height = maxInt(p.height, root.height) + 1

	return newRoot
}
