package dynpath

// AssertHeight is the soft balance-regression canary carried over from the
// reference implementation's print_height() diagnostic (design's Open
// Question (b)): it is not part of the correctness contract, so it only
// panics when cond is false and Debug is enabled, exactly like the
// internal contract assertions.
func AssertHeight(cond bool) {
	assertf(cond, "height invariant violated")
}
