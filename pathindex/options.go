package pathindex

// Option configures an Index at construction time. All Option functions
// mutate the pointed-to config; see New.
type Option func(*config)

type config struct {
	checkHeight bool
}

// WithHeightCheck enables a soft sanity check, carried over from the
// reference implementation's print_height() diagnostic: after every
// structural mutation, Index asserts (via panic, gated the same way as
// dynpath.Debug) that the tree height stays within c*log2(n). This is not
// a correctness requirement — an implementation that violates it is still
// answering queries correctly — it is purely a balance regression canary,
// off by default.
func WithHeightCheck() Option {
	return func(c *config) {
		c.checkHeight = true
	}
}
