// SPDX-License-Identifier: MIT

// Package column provides mod-2 sparse column primitives: the storage unit
// shared by every matrix type in this module.
//
// A column represents a subset of {0, …, R−1}: the row indices where the
// stored vector has a 1 entry. Two back-ends implement the Column interface:
//
//   - ListColumn: a densely packed, strictly descending slice of row
//     indices. Insertion, deletion and lookup are idempotent and checked;
//     the pivot ("low") is the head of the slice, read in O(1).
//   - HeapColumn: an unsorted multiset under a max-heap invariant
//     (container/heap). Duplicates are permitted and cancel in pairs on
//     pop; an insert counter drives amortized pruning. Faster for
//     dense-growth columns where repeated merge-based addition would
//     dominate.
//
// Both back-ends satisfy mod-2 (characteristic-2) arithmetic exclusively:
// AddColumn is always a symmetric difference, never integer accumulation.
//
// Complexity:
//
//	ListColumn.Low, Entry (head-first early exit), IsEmpty: O(1) amortized,
//	  O(k) worst case for Entry where k is the position of row from the head.
//	ListColumn.AddColumn: O(|self| + |src|), a single descending merge.
//	HeapColumn.Low (via pop/push): O(log n) amortized.
//	HeapColumn.AddColumn: O(|src| log n) until the next prune.
package column
