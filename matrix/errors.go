// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm in this package returns these sentinels rather than
// panicking on caller-triggered conditions (range violations, self-add).
// Panics are reserved for programmer errors surfaced by the column
// package's own precondition contracts (finalized-column violations),
// which this package does not re-wrap.

package matrix

import "errors"

var (
	// ErrOutOfRange indicates a row or column index outside the matrix's
	// declared dimensions. Returned by Set/Clear/Entry/Low/AddColumn/
	// FindLow/SwapRows/SwapColumns; the matrix is left unchanged.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSelfAdd indicates AddColumn(j, j): adding a column to itself.
	// The matrix is left unchanged.
	ErrSelfAdd = errors.New("matrix: cannot add a column to itself")
)
