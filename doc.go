// Package dynpath implements the dynamic path data structure of Sleator and
// Tarjan ("A data structure for dynamic trees", JCSS 1983): a mutable,
// height-balanced binary-tree encoding of a simple path that supports
// logarithmic-time range-minimum, range-add, split and concatenate over
// arbitrary contiguous sub-paths.
//
// 🌲 What is dynpath?
//
//	A generic, single-threaded library that turns an ordered chain of
//	vertices and weighted edges into a balanced binary tree where:
//
//	  • Leaves (external nodes), read in-order, enumerate the path's vertices.
//	  • Internal nodes each represent one edge and carry its cost.
//	  • Edge costs are stored relatively (netmin/netcost) so a whole sub-path
//	    can be shifted by a constant in O(1), and so the tree's own minimum
//	    edge cost is recoverable in O(log n).
//
// Why choose dynpath?
//
//   - Logarithmic        — every primitive (Concatenate, SplitBefore/After,
//     PUpdate, PMinCostBefore/After) runs in O(log n).
//   - Generic            — parametric over any ordered, additive cost type
//     (float64, float32, int, int64, uint32); see Number.
//   - Pure Go            — no cgo, no hidden dependencies.
//   - Faithful           — the netmin/netcost relative-cost invariant from
//     the original Sleator–Tarjan design is preserved through every
//     rotation and restructure, not approximated.
//
// Under the hood, the tree is made of individually allocated *Node[V]
// values. left/right are owning edges (strictly downward); parent/bhead/btail are non-owning
// back-references kept in lockstep by every structural primitive.
//
// dynpath exposes only the core primitives described in its design
// document; an ordered, index-addressable view over stable leaf handles is
// provided by the sibling package pathindex, which splits around indices
// and forwards to dynpath.
package dynpath
