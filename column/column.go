package column

// Column is the capability set shared by every column back-end. Matrices in
// the matrix and bigrade packages operate exclusively through this
// interface, so a matrix can be backed by either ListColumn or HeapColumn
// columns without changing its own code — the back-end is a construction
// -time choice (see matrix.Backend).
//
// Row-index range checking is NOT this interface's responsibility: the
// owning matrix knows the row count R and validates i < R before
// delegating here (mirrors the original map-matrix design, where the
// node/column type has no notion of the matrix's row count).
type Column interface {
	// Set inserts row into this column. On ListColumn this is a checked,
	// order-preserving, idempotent insert. On HeapColumn this is an
	// unchecked push used for bulk construction: setting a row that is
	// already present cancels it under mod-2 arithmetic, so callers must
	// insert each row at most once.
	Set(row int)

	// Clear removes row from this column if present; no-op otherwise.
	Clear(row int)

	// Entry reports whether row is present in this column.
	Entry(row int) bool

	// Low returns the pivot (largest stored row index), or -1 if the
	// column is empty. Always correct, regardless of finalization state.
	Low() int

	// LowFinalized is a fast pivot read valid only between Finalize calls
	// (i.e. when the column is known to contain each row at most once).
	// Calling it on a non-finalized column panics.
	LowFinalized() int

	// IsEmpty reports whether the column has no entries (taking pending
	// unfinalized duplicates into account where relevant).
	IsEmpty() bool

	// AddColumn performs an in-place mod-2 symmetric difference: the
	// receiver becomes self ⊕ src. src is never mutated.
	AddColumn(src Column)

	// AddColumnPopped performs the symmetric difference assuming the
	// receiver's own pivot has already been popped via RemoveLow, and
	// src's pivot (still present, stored first) equals the popped value.
	// Only src's entries after its own pivot are merged in. The
	// preconditions are a programmer contract, not range-checked and not
	// reported as an error value: a mismatched pivot is merged silently,
	// and a back-end panics only when src itself is unusable (a src of the
	// other back-end, an empty ListColumn src, a non-finalized HeapColumn
	// src).
	AddColumnPopped(src Column)

	// RemoveLow pops the current pivot and returns the value that was
	// popped, or -1 if the column was already empty. The caller, not the
	// column, tracks what the new pivot might be (typically by calling
	// RemoveLow again and checking the next conflict); this is what lets
	// PushIndex restore exactly the value RemoveLow just removed. Safe on a
	// non-finalized column: on a HeapColumn it transparently cancels any
	// duplicate pairs it encounters along the way, which is exactly the
	// state AddColumnPopped leaves a column in mid-reduction. There is no
	// finalized precondition here.
	RemoveLow() int

	// PushIndex reinserts row, typically a pivot previously taken off via
	// RemoveLow, without re-finalizing. The column is left unfinalized
	// until Finalize is called.
	PushIndex(row int)

	// Finalize puts the column into canonical duplicate-free form: sorted
	// descending for ListColumn (already the invariant, so a no-op),
	// duplicate-pair-cancelled for HeapColumn (drains and reheapifies).
	Finalize()

	// Clone returns a deep, independent copy of this column.
	Clone() Column

	// Rows returns a snapshot of the stored row indices, duplicate-free,
	// in descending order. Used by matrix-level move/append/debug paths;
	// not on any reduction hot path.
	Rows() []int
}

// errNotFinalized is the panic message used by LowFinalized,
// AddColumnPopped and HeapColumn.SortAscending when invoked on a column
// that has not been finalized (RemoveLow never panics).
// These are programmer-contract violations, not conditions a caller can
// meaningfully recover from, so they panic rather than returning an error
// value.
const errNotFinalized = "column: operation requires a finalized column"
