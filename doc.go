// SPDX-License-Identifier: MIT

// Package bigraded implements the sparse mod-2 linear algebra core behind
// two-parameter persistent homology: columns, column-major matrices, a
// vineyard-ready permuted view, an RU-decomposer, and the bigraded kernel
// reduction that organizes everything by (x, y) grade.
//
// The module is laid out as three subpackages, each owning one layer:
//
//	column/  — SparseColumn: the Column interface and its two back-ends
//	           (ListColumn, a packed descending slice; HeapColumn, a lazy
//	           max-heap with duplicate-pair cancellation)
//	matrix/  — ColumnMatrix, PermutedMatrix, the row-priority U matrix and
//	           RU-decomposer built on top of column
//	bigrade/ — IndexMatrix, BigradedMatrix/BigradedMatrixLex, and the
//	           lex-ordered kernel reduction built on top of matrix
//
// Every operation is a synchronous, single-threaded computation over GF(2);
// there is no concurrency, no I/O, and no notion of progress reporting —
// those are a caller's concern. A typical caller builds a BigradedMatrix
// bigrade by bigrade, calls Kernel to get a basis organized the same way,
// and feeds the result into whatever persistence computation sits above
// this module.
package bigraded
