// SPDX-License-Identifier: MIT

// Package matrix implements the mod-2 sparse matrix types that the
// bigraded reduction is built on: ColumnMatrix (the column-major matrix
// over the column package's back-ends), PermutedMatrix (an implicit
// row/column permutation layer used by vineyard-style transpositions), and
// the RU-decomposition this module computes over a PermutedMatrix.
//
// Every matrix in this package exclusively owns its columns; there is no
// shared mutable state between matrix instances except where an operation
// explicitly moves or copies a column between two matrices.
//
// Complexity notes are documented per-method; as a rule, pivot reads are
// O(1) on a list-backed ColumnMatrix and a scan of the column on
// PermutedMatrix, FindLow on PermutedMatrix is O(C) (no fast find_low
// index by default — see WithLowColIndex), and every column operation is
// linear in the combined size of the two operand columns.
package matrix
