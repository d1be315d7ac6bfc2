package pathindex

import "errors"

// ErrEmptyInput indicates that New was called with zero edge costs: a
// dynamic path needs at least one vertex (zero edges is a valid singleton
// path, but New requires the caller to describe at least one edge so the
// façade always has a non-trivial tree to index into).
var ErrEmptyInput = errors.New("pathindex: input must contain at least one edge cost")

// ErrIndexRange indicates that a requested vertex index, or a requested
// [start, end) range, falls outside the valid range for the current
// index. Valid single indices satisfy 0 <= i <= n; valid ranges satisfy
// 0 <= start < end <= n, matching the design's resolution of the
// source's historically inconsistent range guard.
var ErrIndexRange = errors.New("pathindex: index out of range")
