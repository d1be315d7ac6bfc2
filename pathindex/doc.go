// Package pathindex provides an ordered, index-addressable view over a
// dynpath tree: the array-style façade the dynpath design document
// describes but declines to pin down (see dynpath's design notes), modeled
// on original_source/src/dp_array.{h,cpp} from the Sleator–Tarjan
// reference implementation this package's sibling dynpath was built from.
//
// 📐 What is pathindex?
//
//	A thin wrapper that keeps a slice of stable leaf handles plus the
//	current tree root, and forwards index-based queries and updates to
//	dynpath by splitting the tree around the requested vertex indices,
//	calling the appropriate dynpath primitive, and concatenating the
//	pieces back together.
//
// Why choose pathindex?
//
//   - Array-shaped API      — callers address vertex i directly; no leaf
//     handles to track themselves.
//   - Thin                  — no balancing logic of its own; every
//     structural guarantee comes from dynpath.
//   - Generic               — parametric over the same dynpath.Number
//     cost types as its sibling package.
//
// pathindex does not attempt dynpath's O(log n) guarantees on its own: it
// inherits them by construction, since every operation here is exactly one
// or two dynpath splits, one dynpath primitive call, and one or two
// dynpath concatenates.
package pathindex
