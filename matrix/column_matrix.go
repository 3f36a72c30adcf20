// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"

	"github.com/mlesnick-labs/bigraded/column"
)

// ColumnMatrix is a column-major sparse mod-2 matrix: an ordered sequence
// of column.Column values plus a row count. It exclusively owns its
// columns. Row indices in every stored column lie in [0, Rows()); columns
// outside [0, Width()) are not addressable.
//
// The back-end choice (column.ListColumn vs column.HeapColumn) is a
// construction-time option rather than a separate matrix type.
type ColumnMatrix struct {
	cols    []column.Column
	rows    int
	backend Backend
}

// NewColumnMatrix returns a rows×cols all-zero ColumnMatrix.
// Complexity: O(cols).
func NewColumnMatrix(rows, cols int, opts ...Option) *ColumnMatrix {
	cfg := gatherOptions(opts)
	m := &ColumnMatrix{rows: rows, backend: cfg.backend}
	m.cols = make([]column.Column, cols, max(cols, cfg.capacityHint))
	for j := range m.cols {
		m.cols[j] = newColumn(cfg.backend)
	}

	return m
}

// NewIdentityColumnMatrix returns a size×size identity matrix: column j
// has its sole entry at row j. Used as the "slave" matrix that records
// column operations during a reduction and as the seed for a row-priority
// matrix's transposed storage (ru_decomposer.go).
// Complexity: O(size).
func NewIdentityColumnMatrix(size int, opts ...Option) *ColumnMatrix {
	m := NewColumnMatrix(size, size, opts...)
	for j := 0; j < size; j++ {
		m.cols[j].Set(j)
	}

	return m
}

func newColumn(b Backend) column.Column {
	if b == BackendHeap {
		return column.NewHeapColumn()
	}

	return column.NewListColumn()
}

// Rows returns the matrix's declared row count.
// Complexity: O(1).
func (m *ColumnMatrix) Rows() int { return m.rows }

// Width returns the number of columns.
// Complexity: O(1).
func (m *ColumnMatrix) Width() int { return len(m.cols) }

func (m *ColumnMatrix) checkRow(i int) error {
	if i < 0 || i >= m.rows {
		return fmt.Errorf("ColumnMatrix: row %d: %w", i, ErrOutOfRange)
	}

	return nil
}

func (m *ColumnMatrix) checkCol(j int) error {
	if j < 0 || j >= len(m.cols) {
		return fmt.Errorf("ColumnMatrix: col %d: %w", j, ErrOutOfRange)
	}

	return nil
}

// Set sets entry (i, j) to 1. On a BackendHeap matrix the column back-end
// pushes without checking, so setting an entry that is already 1 clears it
// (see column.Column.Set).
// Complexity: O(n) (delegates to the column back-end).
func (m *ColumnMatrix) Set(i, j int) error {
	if err := m.checkRow(i); err != nil {
		return err
	}
	if err := m.checkCol(j); err != nil {
		return err
	}
	m.cols[j].Set(i)

	return nil
}

// Clear sets entry (i, j) to 0.
func (m *ColumnMatrix) Clear(i, j int) error {
	if err := m.checkRow(i); err != nil {
		return err
	}
	if err := m.checkCol(j); err != nil {
		return err
	}
	m.cols[j].Clear(i)

	return nil
}

// Entry reports whether entry (i, j) is 1.
func (m *ColumnMatrix) Entry(i, j int) (bool, error) {
	if err := m.checkRow(i); err != nil {
		return false, err
	}
	if err := m.checkCol(j); err != nil {
		return false, err
	}

	return m.cols[j].Entry(i), nil
}

// Low returns the pivot of column j, or -1 if it is empty.
// Complexity: O(1) for BackendList, O(log n) amortized for BackendHeap.
func (m *ColumnMatrix) Low(j int) (int, error) {
	if err := m.checkCol(j); err != nil {
		return 0, err
	}

	return m.cols[j].Low(), nil
}

// There is no matrix-level LowFinalized/RemoveLow wrapper: the bigrade
// package reaches into a ColumnMatrix's columns directly via Column(j) for
// the kernel reduction's popped-pivot optimization, since that algorithm's
// semantics are defined in terms of the column.Column contract, not a
// matrix-level wrapper around it.

// Column returns the underlying column.Column at index j without copying,
// for use by algorithms (the bigrade package's kernel reduction,
// PermutedMatrix.Low) that need the full column.Column contract
// (LowFinalized, RemoveLow, AddColumnPopped, PushIndex, Finalize, Rows)
// rather than just the matrix-level Set/Clear/Entry/Low surface.
// Complexity: O(1).
func (m *ColumnMatrix) Column(j int) column.Column {
	return m.cols[j]
}

// IsEmpty reports whether column j has no entries.
func (m *ColumnMatrix) IsEmpty(j int) (bool, error) {
	if err := m.checkCol(j); err != nil {
		return false, err
	}

	return m.cols[j].IsEmpty(), nil
}

// AddColumn performs k ← k ⊕ j in place. Fails with ErrSelfAdd if j == k.
// Complexity: O(|col j| + |col k|).
func (m *ColumnMatrix) AddColumn(j, k int) error {
	if err := m.checkCol(j); err != nil {
		return err
	}
	if err := m.checkCol(k); err != nil {
		return err
	}
	if j == k {
		return fmt.Errorf("ColumnMatrix.AddColumn(%d, %d): %w", j, k, ErrSelfAdd)
	}
	m.cols[k].AddColumn(m.cols[j])

	return nil
}

// AddColumnFrom performs k ← k ⊕ other.j, where other may be any
// ColumnMatrix (including m itself, at a different index than k — no
// aliasing is assumed or checked beyond range validity).
// Complexity: O(|other col j| + |col k|).
func (m *ColumnMatrix) AddColumnFrom(other *ColumnMatrix, j, k int) error {
	if err := other.checkCol(j); err != nil {
		return err
	}
	if err := m.checkCol(k); err != nil {
		return err
	}
	m.cols[k].AddColumn(other.cols[j])

	return nil
}

// ColReduce applies the standard persistence reduction in column order,
// maintaining lows[0..Rows()) so that distinct nonempty columns end with
// distinct pivots. Grounded directly in MapMatrix::col_reduce.
// Complexity: O(Width() * Rows()) worst case.
func (m *ColumnMatrix) ColReduce() error {
	lows := make([]int, m.rows)
	for i := range lows {
		lows[i] = -1
	}

	for j := 0; j < len(m.cols); j++ {
		low := m.cols[j].Low()
		for low >= 0 && lows[low] >= 0 {
			if err := m.AddColumn(lows[low], j); err != nil {
				return err
			}
			low = m.cols[j].Low()
		}
		if low >= 0 {
			lows[low] = j
		}
	}

	return nil
}

// AppendCol steals column j of src (src's column j becomes empty) and
// appends it as a new, final column of m, growing m's width by one.
// Grounded in BigradedMatrix::kernel_one_bigrade's use of
// ker_lex.mat.append_col(slave, j).
// Complexity: O(1) (a column handle move).
func (m *ColumnMatrix) AppendCol(src *ColumnMatrix, j int) error {
	if err := src.checkCol(j); err != nil {
		return err
	}
	m.cols = append(m.cols, src.cols[j])
	src.cols[j] = newColumn(src.backend)

	return nil
}

// MoveCol moves column j of src into column target of m, overwriting
// whatever m.target previously held; src's column j becomes empty.
// Grounded in BigradedMatrix's Lex→colex conversion
// (mat.move_col(lex_mat.mat, j, current_index)).
// Complexity: O(1).
func (m *ColumnMatrix) MoveCol(src *ColumnMatrix, j, target int) error {
	if err := src.checkCol(j); err != nil {
		return err
	}
	if err := m.checkCol(target); err != nil {
		return err
	}
	m.cols[target] = src.cols[j]
	src.cols[j] = newColumn(src.backend)

	return nil
}

// FinalizeAll finalizes every column. Required before any LowFinalized /
// AddColumnPopped / RemoveLow-sensitive algorithm runs over columns that
// may have been bulk-loaded via raw Set calls on a heap back-end.
// Complexity: O(Width()) finalize calls.
func (m *ColumnMatrix) FinalizeAll() {
	for _, c := range m.cols {
		c.Finalize()
	}
}

// Clone returns a deep, independent copy of m.
func (m *ColumnMatrix) Clone() *ColumnMatrix {
	cp := &ColumnMatrix{rows: m.rows, backend: m.backend}
	cp.cols = make([]column.Column, len(m.cols))
	for j, c := range m.cols {
		cp.cols[j] = c.Clone()
	}

	return cp
}
