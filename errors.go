package dynpath

import (
	"errors"
	"fmt"
)

// ErrNilNode indicates that an operation received a nil node where a
// non-nil node is required by the operation's contract.
var ErrNilNode = errors.New("dynpath: nil node")

// ErrNotExternal indicates that an operation required an external (leaf)
// node but was given an internal one.
var ErrNotExternal = errors.New("dynpath: node is not an external leaf")

// ErrNotInternal indicates that an operation required an internal (edge)
// node but was given an external leaf.
var ErrNotInternal = errors.New("dynpath: node is not an internal edge node")

// ErrNotRoot indicates that an operation required a root node (parent ==
// nil) but was given a node with a parent.
var ErrNotRoot = errors.New("dynpath: node is not a path root")

// Debug gates the internal contract assertions described in the design's
// error-handling section. Contract violations (nil where non-nil is
// required, a non-leaf where a leaf is required, a non-root where a root
// is required, mutating a node from a different tree) are programmer
// errors: the data structure does not recover from them. With Debug set,
// the public entry points panic with one of the sentinels above on a nil,
// leaf-vs-internal or root violation. Passing nodes from a different tree
// is not detected, with or without Debug. Release builds should leave
// Debug false.
var Debug = false

// assertErr panics with err when cond is false and Debug is enabled. It is
// a no-op when Debug is false, matching the design's "release behavior is
// undefined, no recovery is attempted" contract: we simply skip the check
// rather than pay for it.
func assertErr(cond bool, err error) {
	if Debug && !cond {
		panic(err)
	}
}

// assertf panics with a formatted, ad-hoc invariant message when cond is
// false and Debug is enabled — for internal invariants that are not one of
// the named contract-violation sentinels above.
func assertf(cond bool, format string, args ...any) {
	if Debug && !cond {
		panic(fmt.Sprintf("dynpath: invariant violated: "+format, args...))
	}
}
