// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Backend (the column back-end selected at construction),
//   - Option / config (functional options with internal state),
//   - documented defaults,
//   - WithX constructors.
//
// Design goals: deterministic behavior, no global state, safe-by
// -construction. No option here panics on construction — every value is
// unconditionally valid, unlike some functional-options sets elsewhere in
// this codebase that do validate and panic on nonsensical bounds.
package matrix

// Backend selects the column.Column implementation a matrix uses for all
// of its columns. This single choice realizes both the plain column
// matrix and the alternate heap-backed representation as variants of one
// matrix type, chosen at construction, rather than separate types.
type Backend int

const (
	// BackendList backs every column with a column.ListColumn: O(1) pivot
	// reads, merge-based addition. Default — best for moderate sparsity
	// and the common case where pivots are read far more than columns are
	// grown.
	BackendList Backend = iota

	// BackendHeap backs every column with a column.HeapColumn: amortized
	// push-based addition with lazy pruning. Better for large, dense
	// -growth workloads.
	BackendHeap
)

// DefaultBackend is BackendList.
const DefaultBackend = BackendList

// DefaultLowColIndex controls whether PermutedMatrix maintains the O(1)
// inverse-pivot index (lowCol). Off by default, matching the original
// source (the index exists in the code but is disabled in favor of a
// linear find_low scan).
const DefaultLowColIndex = false

// config holds the resolved construction-time options for a matrix.
type config struct {
	backend      Backend
	lowColIndex  bool
	capacityHint int
}

func defaultConfig() config {
	return config{backend: DefaultBackend, lowColIndex: DefaultLowColIndex}
}

// Option configures matrix construction.
type Option func(*config)

// WithBackend selects the column back-end for every column in the matrix.
func WithBackend(b Backend) Option {
	return func(c *config) { c.backend = b }
}

// WithLowColIndex enables the maintained inverse-pivot index on
// PermutedMatrix, making FindLow O(1) instead of O(C) at the cost of
// updating the index on every column mutation (set, clear, add, swap).
func WithLowColIndex() Option {
	return func(c *config) { c.lowColIndex = true }
}

// WithCapacityHint pre-sizes internal slices for n columns, avoiding
// reallocation when the final column count is known up front (e.g. the
// kernel reduction's slave matrix, sized to the input matrix's width).
func WithCapacityHint(n int) Option {
	return func(c *config) { c.capacityHint = n }
}

func gatherOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
