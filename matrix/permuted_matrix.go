// SPDX-License-Identifier: MIT
package matrix

import "fmt"

// PermutedMatrix wraps a ColumnMatrix with an implicit row permutation:
// perm and mrep are mutual inverses of length Rows(), and stored row
// indices inside every column remain in the *original* coordinate system.
// perm[original] gives the row's *current* position; mrep[current] gives
// back the original index. This lazy encoding — never reifying the
// permutation into stored row indices — is what makes vineyard-style row
// transpositions O(1).
//
// An optional colPerm tracks the history of column swaps, for callers that
// must recover original column indices (e.g. barcode template lookups).
// An optional lowCol inverse-pivot index makes FindLow O(1) at the cost of
// maintaining it through every column mutation; off by default, documenting
// and accepting the O(C) scan instead.
type PermutedMatrix struct {
	mat       *ColumnMatrix
	perm      []int
	mrep      []int
	colPerm   []int
	lowCol    []int // lowCol[r] = column whose current low is r, or -1; nil unless useLowCol
	useLowCol bool
}

// NewPermutedMatrix returns a rows×cols PermutedMatrix with the identity
// permutation on both rows and columns.
func NewPermutedMatrix(rows, cols int, opts ...Option) *PermutedMatrix {
	cfg := gatherOptions(opts)

	return wrapPermuted(NewColumnMatrix(rows, cols, opts...), cfg)
}

// NewIdentityPermutedMatrix returns a size×size identity PermutedMatrix,
// identity permutation on rows.
func NewIdentityPermutedMatrix(size int, opts ...Option) *PermutedMatrix {
	cfg := gatherOptions(opts)

	return wrapPermuted(NewIdentityColumnMatrix(size, opts...), cfg)
}

// WrapPermuted wraps an already-constructed ColumnMatrix with the identity
// permutation, taking ownership of mat (the caller must not use mat
// directly afterward).
func WrapPermuted(mat *ColumnMatrix, opts ...Option) *PermutedMatrix {
	return wrapPermuted(mat, gatherOptions(opts))
}

func wrapPermuted(mat *ColumnMatrix, cfg config) *PermutedMatrix {
	pm := &PermutedMatrix{mat: mat, useLowCol: cfg.lowColIndex}
	pm.perm = identity(mat.Rows())
	pm.mrep = identity(mat.Rows())
	pm.colPerm = identity(mat.Width())
	if pm.useLowCol {
		pm.lowCol = make([]int, mat.Rows())
		for i := range pm.lowCol {
			pm.lowCol[i] = -1
		}
		pm.rebuildLowCol()
	}

	return pm
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func (pm *PermutedMatrix) rebuildLowCol() {
	for i := range pm.lowCol {
		pm.lowCol[i] = -1
	}
	for j := 0; j < pm.mat.Width(); j++ {
		if l, _ := pm.Low(j); l >= 0 {
			pm.lowCol[l] = j
		}
	}
}

// Rows returns the declared row count.
func (pm *PermutedMatrix) Rows() int { return pm.mat.Rows() }

// Width returns the number of columns.
func (pm *PermutedMatrix) Width() int { return pm.mat.Width() }

// Set sets entry (i, j), translating i through mrep into the underlying
// matrix's original coordinates, and keeps the lowCol index (if
// maintained) consistent with the new pivot of column j.
func (pm *PermutedMatrix) Set(i, j int) error {
	if i < 0 || i >= pm.Rows() {
		return fmt.Errorf("PermutedMatrix.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	var oldLow int
	if pm.useLowCol {
		oldLow, _ = pm.Low(j)
	}
	if err := pm.mat.Set(pm.mrep[i], j); err != nil {
		return err
	}
	if pm.useLowCol {
		pm.updateLowColAfterMutation(j, oldLow)
	}

	return nil
}

// Clear clears entry (i, j), translating i through mrep, and keeps the
// lowCol index (if maintained) consistent with the new pivot of column j.
func (pm *PermutedMatrix) Clear(i, j int) error {
	if i < 0 || i >= pm.Rows() {
		return fmt.Errorf("PermutedMatrix.Clear(%d,%d): %w", i, j, ErrOutOfRange)
	}
	var oldLow int
	if pm.useLowCol {
		oldLow, _ = pm.Low(j)
	}
	if err := pm.mat.Clear(pm.mrep[i], j); err != nil {
		return err
	}
	if pm.useLowCol {
		pm.updateLowColAfterMutation(j, oldLow)
	}

	return nil
}

// Entry reports entry (i, j), translating i through mrep.
func (pm *PermutedMatrix) Entry(i, j int) (bool, error) {
	if i < 0 || i >= pm.Rows() {
		return false, fmt.Errorf("PermutedMatrix.Entry(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return pm.mat.Entry(pm.mrep[i], j)
}

// Low returns column j's pivot in *current* row coordinates: the largest
// perm[r] over stored (original-coordinate) rows r in column j, or -1 if
// empty. Unlike ColumnMatrix.Low, this has no O(1) fast path — stored rows
// are not sorted in the permuted order — and always scans the column.
// Complexity: O(n).
func (pm *PermutedMatrix) Low(j int) (int, error) {
	if j < 0 || j >= pm.Width() {
		return 0, fmt.Errorf("PermutedMatrix.Low(%d): %w", j, ErrOutOfRange)
	}

	rows := pm.mat.Column(j).Rows()
	lowest := -1
	for _, r := range rows {
		if cur := pm.perm[r]; cur > lowest {
			lowest = cur
		}
	}

	return lowest, nil
}

// FindLow returns a column whose Low equals l, or -1 if none does. If the
// matrix was constructed with WithLowColIndex, this is an O(1) index
// lookup; otherwise it is a linear scan over every column — the documented,
// accepted fallback (the C++ find_low this is ported from ships with its
// own index disabled too, with the comment "THIS IS AWFUL, BUT LOW ARRAY
// IS BROKEN"). The index records one column per pivot row: while two
// columns share a pivot (an unreduced matrix), a mutation of the recorded
// one can leave the indexed lookup returning -1 although the other column
// still has that pivot.
// Complexity: O(1) with the index, O(Width()) without.
func (pm *PermutedMatrix) FindLow(l int) (int, error) {
	if l < 0 || l >= pm.Rows() {
		return -1, fmt.Errorf("PermutedMatrix.FindLow(%d): %w", l, ErrOutOfRange)
	}
	if pm.useLowCol {
		return pm.lowCol[l], nil
	}
	for j := 0; j < pm.Width(); j++ {
		low, _ := pm.Low(j)
		if low == l {
			return j, nil
		}
	}

	return -1, nil
}

// AddColumn performs k ← k ⊕ j, keeping the lowCol index (if maintained)
// consistent with the new pivot of column k.
func (pm *PermutedMatrix) AddColumn(j, k int) error {
	var oldLow int
	if pm.useLowCol {
		oldLow, _ = pm.Low(k)
	}
	if err := pm.mat.AddColumn(j, k); err != nil {
		return err
	}
	if pm.useLowCol {
		pm.updateLowColAfterMutation(k, oldLow)
	}

	return nil
}

func (pm *PermutedMatrix) updateLowColAfterMutation(col, oldLow int) {
	if oldLow >= 0 && pm.lowCol[oldLow] == col {
		pm.lowCol[oldLow] = -1
	}
	newLow, _ := pm.Low(col)
	if newLow >= 0 {
		pm.lowCol[newLow] = col
	}
}

// SwapRows transposes rows i and i+1 purely in the permutation — no column
// is rewritten. This may leave the matrix unreduced (spec's Vineyards Case
// 1.1); restoring reducedness, if required, is the caller's responsibility
// via one AddColumn call, exactly as in the original MapMatrix_Perm.
// Complexity: O(1), plus a pivot re-scan of the (at most two) columns
// indexed at rows i and i+1 when the lowCol index is maintained.
func (pm *PermutedMatrix) SwapRows(i int) error {
	if i < 0 || i+1 >= pm.Rows() {
		return fmt.Errorf("PermutedMatrix.SwapRows(%d): %w", i, ErrOutOfRange)
	}

	a, b := pm.mrep[i], pm.mrep[i+1]
	pm.perm[a], pm.perm[b] = pm.perm[b], pm.perm[a]
	pm.mrep[i], pm.mrep[i+1] = b, a

	if pm.useLowCol {
		ci, cj := pm.lowCol[i], pm.lowCol[i+1]
		pm.lowCol[i], pm.lowCol[i+1] = -1, -1
		for _, c := range []int{ci, cj} {
			if c < 0 {
				continue
			}
			if l, _ := pm.Low(c); l >= 0 {
				pm.lowCol[l] = c
			}
		}
	}

	return nil
}

// SwapColumns transposes columns j and j+1 in place and updates colPerm
// symmetrically.
// Complexity: O(1), plus O(n) lowCol bookkeeping if maintained (each
// column's pivot must be re-scanned post-swap since Low has no fast path
// here).
func (pm *PermutedMatrix) SwapColumns(j int) error {
	if j < 0 || j+1 >= pm.Width() {
		return fmt.Errorf("PermutedMatrix.SwapColumns(%d): %w", j, ErrOutOfRange)
	}

	pm.mat.cols[j], pm.mat.cols[j+1] = pm.mat.cols[j+1], pm.mat.cols[j]
	pm.colPerm[j], pm.colPerm[j+1] = pm.colPerm[j+1], pm.colPerm[j]

	if pm.useLowCol {
		if a, _ := pm.Low(j); a >= 0 {
			pm.lowCol[a] = j
		}
		if b, _ := pm.Low(j + 1); b >= 0 {
			pm.lowCol[b] = j + 1
		}
	}

	return nil
}

// ColPerm returns a snapshot of the column-swap history: colPerm[j] is the
// original column index currently occupying position j.
func (pm *PermutedMatrix) ColPerm() []int {
	cp := make([]int, len(pm.colPerm))
	copy(cp, pm.colPerm)

	return cp
}

// Perm returns a snapshot of the row permutation: perm[original] is the
// row's current position.
func (pm *PermutedMatrix) Perm() []int {
	cp := make([]int, len(pm.perm))
	copy(cp, pm.perm)

	return cp
}

// MRep returns a snapshot of the inverse row permutation: mrep[current] is
// the row's original index.
func (pm *PermutedMatrix) MRep() []int {
	cp := make([]int, len(pm.mrep))
	copy(cp, pm.mrep)

	return cp
}

// Underlying exposes the wrapped ColumnMatrix for algorithms (RUDecomposer)
// that need direct column.Column access via ColumnMatrix.Column.
func (pm *PermutedMatrix) Underlying() *ColumnMatrix { return pm.mat }
