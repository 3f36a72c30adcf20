// SPDX-License-Identifier: MIT
package matrix

import "fmt"

// RowPriorityMatrix stores a mod-2 matrix transposed internally — its
// underlying ColumnMatrix columns hold, for each row, the set of column
// indices present in that row. DecomposeRU accumulates U this way because
// every correction it performs is naturally a row operation (see
// DecomposeRU's doc), and a vineyard row transposition on U later changes
// the actual bit pattern of two rows (unlike a transposition on R, which
// only ever permutes — see PermutedMatrix), so both construction and
// maintenance want O(1)-amortised row mutation.
type RowPriorityMatrix struct {
	internal *ColumnMatrix // internal.cols[row] holds that row's column set
}

// NewRowPriorityMatrix returns a rows×cols all-zero RowPriorityMatrix.
func NewRowPriorityMatrix(rows, cols int, opts ...Option) *RowPriorityMatrix {
	return &RowPriorityMatrix{internal: NewColumnMatrix(cols, rows, opts...)}
}

// NewIdentityRowPriorityMatrix returns a size×size identity matrix stored
// row-major.
func NewIdentityRowPriorityMatrix(size int, opts ...Option) *RowPriorityMatrix {
	return &RowPriorityMatrix{internal: NewIdentityColumnMatrix(size, opts...)}
}

// Rows returns the matrix's row count.
func (u *RowPriorityMatrix) Rows() int { return u.internal.Width() }

// Width returns the matrix's column count.
func (u *RowPriorityMatrix) Width() int { return u.internal.Rows() }

// Set sets entry (i, j) to 1.
func (u *RowPriorityMatrix) Set(i, j int) error { return u.internal.Set(j, i) }

// Entry reports whether entry (i, j) is 1.
func (u *RowPriorityMatrix) Entry(i, j int) (bool, error) { return u.internal.Entry(j, i) }

// AddRow performs tgt ← tgt ⊕ src on rows: every column set in row src
// becomes toggled into row tgt. Fails with ErrSelfAdd if src == tgt.
// Complexity: O(|row src| + |row tgt|).
func (u *RowPriorityMatrix) AddRow(src, tgt int) error { return u.internal.AddColumn(src, tgt) }

// SwapRows transposes rows i and i+1 by physically swapping their stored
// bit patterns (unlike PermutedMatrix.SwapRows, which only updates an
// implicit permutation — U's rows carry real content that a vineyard
// transposition can change).
// Complexity: O(1) (the two rows' storage is exchanged, not copied).
func (u *RowPriorityMatrix) SwapRows(i int) error {
	if i < 0 || i+1 >= u.Rows() {
		return fmt.Errorf("RowPriorityMatrix.SwapRows(%d): %w", i, ErrOutOfRange)
	}
	u.internal.cols[i], u.internal.cols[i+1] = u.internal.cols[i+1], u.internal.cols[i]

	return nil
}

// RUDecomposition is the result of DecomposeRU: R (reduced, mutated in
// place from the caller's PermutedMatrix) and U (upper-triangular,
// invertible, row-priority) satisfy the pre-reduction R equal to
// (post-reduction R)·U over GF(2) — equivalently M = R·U with U the
// accumulation of add_row operations. LowCol[l] is the column of R whose
// pivot is l, or -1.
type RUDecomposition struct {
	R      *PermutedMatrix
	U      *RowPriorityMatrix
	LowCol []int
}

// DecomposeRU reduces r in place — exactly col_reduce's pivot-chase, run
// through r's permuted Low/AddColumn surface rather than a plain
// ColumnMatrix's — and builds U := identity (row-priority) alongside it.
// For every correction r.AddColumn(p, j) — column j absorbs earlier pivot
// column p — the opposite operation is mirrored onto U as U.AddRow(j, p):
// row p of U absorbs row j. lowCol here is a fresh array scoped to this
// call, the same shape col_reduce builds; it is not r's own optional
// lowCol index (WithLowColIndex), which tracks r's pivots under row
// permutation, not U's construction.
//
// This mirrored pair preserves M = R·U, M being r as passed in. Write V
// for the accumulated column operations, so that R = M·V. Each correction
// multiplies V on the right by E = I + e_p·e_jᵀ, which is its own inverse
// over GF(2), so U = V⁻¹ becomes E·U: row p of U absorbs row j, which is
// exactly U.AddRow(j, p). Every correction adds an earlier column (p < j)
// into a later one, so U stays upper-triangular with a unit diagonal.
//
// Complexity: O(Width() * Rows()) worst case, matching ColReduce — but
// each Low read is O(Rows()) here rather than O(1), since r has no sorted
// fast path on its permuted pivots.
func DecomposeRU(r *PermutedMatrix) (*RUDecomposition, error) {
	u := NewIdentityRowPriorityMatrix(r.Width(), WithBackend(r.mat.backend))

	lowCol := make([]int, r.Rows())
	for i := range lowCol {
		lowCol[i] = -1
	}

	for j := 0; j < r.Width(); j++ {
		low, err := r.Low(j)
		if err != nil {
			return nil, fmt.Errorf("DecomposeRU: %w", err)
		}
		for low >= 0 && lowCol[low] >= 0 {
			p := lowCol[low]
			if err := r.AddColumn(p, j); err != nil {
				return nil, fmt.Errorf("DecomposeRU: reducing column %d against pivot %d: %w", j, p, err)
			}
			if err := u.AddRow(j, p); err != nil {
				return nil, fmt.Errorf("DecomposeRU: mirroring row %d into %d: %w", j, p, err)
			}
			low, err = r.Low(j)
			if err != nil {
				return nil, fmt.Errorf("DecomposeRU: %w", err)
			}
		}
		if low >= 0 {
			lowCol[low] = j
		}
	}

	return &RUDecomposition{R: r, U: u, LowCol: lowCol}, nil
}
