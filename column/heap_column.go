package column

import "container/heap"

// heapRows is the container/heap.Interface adapter for a max-heap of row
// indices: the largest index sits at heapRows[0].
type heapRows []int

func (h heapRows) Len() int            { return len(h) }
func (h heapRows) Less(i, j int) bool  { return h[i] > h[j] } // max at front
func (h heapRows) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *heapRows) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *heapRows) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}

// HeapColumn is a sparse mod-2 column backed by a lazy max-heap: entries may
// appear more than once, and equal-valued pairs cancel under characteristic
// -2 arithmetic when popped. insertsSinceLastPrune tracks how many raw
// pushes have accumulated since the last prune/finalize, driving the
// amortized pruning threshold that vector_heap_mod-style implementations use.
type HeapColumn struct {
	rows                  heapRows
	insertsSinceLastPrune int
	finalized             bool
}

// NewHeapColumn returns an empty, (trivially) finalized HeapColumn.
func NewHeapColumn() *HeapColumn {
	return &HeapColumn{finalized: true}
}

// overPruneThreshold mirrors vector_heap_mod's amortized-prune trigger: prune
// once more than half the column's current length has been inserted since
// the last prune.
func (c *HeapColumn) overPruneThreshold() bool {
	return 2*c.insertsSinceLastPrune > len(c.rows)
}

// Set pushes row onto the heap unconditionally, without pruning or
// heapification bookkeeping beyond the raw push. See the Column interface
// doc for why this is not idempotent on this back-end.
// Complexity: O(log n).
func (c *HeapColumn) Set(row int) {
	heap.Push(&c.rows, row)
	c.finalized = false
}

// Clear removes row if it is currently present (odd multiplicity); it is a
// no-op if absent. Implemented by toggling (pushing once more), which is
// the correct mod-2 operation precisely because Entry already establishes
// presence first.
// Complexity: O(n) for the Entry scan, O(log n) for the push.
func (c *HeapColumn) Clear(row int) {
	if !c.Entry(row) {
		return
	}

	heap.Push(&c.rows, row)
	c.finalized = false
}

// Entry reports membership by parity of occurrence count: present iff row
// has been pushed an odd number of times.
// Complexity: O(n).
func (c *HeapColumn) Entry(row int) bool {
	count := 0
	for _, r := range c.rows {
		if r == row {
			count++
		}
	}

	return count%2 == 1
}

// Low peeks the pivot without mutating the column's logical contents: it
// pops (cancelling any duplicate pairs it finds along the way) and pushes
// the surviving maximum back.
// Complexity: O(log n) amortized.
func (c *HeapColumn) Low() int {
	m := popMaxCancelling(&c.rows)
	if m != -1 {
		heap.Push(&c.rows, m)
	}

	return m
}

// LowFinalized reads the pivot in O(1), trusting that the column has no
// duplicate entries. Panics if called on a non-finalized column.
func (c *HeapColumn) LowFinalized() int {
	if !c.finalized {
		panic(errNotFinalized)
	}
	if len(c.rows) == 0 {
		return -1
	}

	return c.rows[0]
}

// IsEmpty reports whether Low() would return -1.
// Complexity: O(log n) (must cancel duplicates to know for sure).
func (c *HeapColumn) IsEmpty() bool {
	return c.Low() == -1
}

// AddColumn pushes every raw entry of src onto self, duplicates and all —
// cancellation happens lazily on the next pop/prune, not here — then
// prunes if the insert/length ratio crosses the threshold.
// Complexity: O(|src| log n) until the next prune.
func (c *HeapColumn) AddColumn(src Column) {
	if other, ok := src.(*HeapColumn); ok {
		for _, r := range other.rows {
			heap.Push(&c.rows, r)
		}
		c.insertsSinceLastPrune += len(other.rows)
	} else {
		rows := src.Rows()
		for _, r := range rows {
			heap.Push(&c.rows, r)
		}
		c.insertsSinceLastPrune += len(rows)
	}
	c.finalized = false
	if c.overPruneThreshold() {
		c.Finalize()
	}
}

// AddColumnPopped merges src into self, skipping src's own pivot (assumed
// already popped from self via RemoveLow and equal to src's pivot). Panics
// if src is not finalized, since it relies on src's pivot sitting exactly
// at offset 0.
// Complexity: O(|src| log n) until the next prune.
func (c *HeapColumn) AddColumnPopped(src Column) {
	other, ok := src.(*HeapColumn)
	if !ok || !other.finalized {
		panic(errNotFinalized)
	}
	for _, r := range other.rows[1:] {
		heap.Push(&c.rows, r)
	}
	c.insertsSinceLastPrune += len(other.rows) - 1
	c.finalized = false
	if c.overPruneThreshold() {
		c.Finalize()
	}
}

// RemoveLow pops the pivot (cancelling duplicate pairs as encountered) and
// returns the popped value, or -1 if nothing survived to pop. Safe on a
// non-finalized column.
// Complexity: O(log n) amortized.
func (c *HeapColumn) RemoveLow() int {
	return popMaxCancelling(&c.rows)
}

// PushIndex reinserts row (typically a pivot previously removed via
// RemoveLow), leaving the column non-finalized until the next Finalize.
// Complexity: O(log n).
func (c *HeapColumn) PushIndex(row int) {
	heap.Push(&c.rows, row)
	c.finalized = false
}

// Finalize drains the column via repeated cancelling pops into a buffer,
// reverses it, and re-heapifies — leaving one entry per surviving row and
// resetting the prune counter. Mirrors vector_heap_mod's _prune.
// Complexity: O(n log n).
func (c *HeapColumn) Finalize() {
	buf := make([]int, 0, len(c.rows))
	for {
		m := popMaxCancelling(&c.rows)
		if m == -1 {
			break
		}
		buf = append(buf, m)
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	c.rows = heapRows(buf)
	heap.Init(&c.rows)
	c.insertsSinceLastPrune = 0
	c.finalized = true
}

// Clone returns an independent deep copy, preserving finalization state.
func (c *HeapColumn) Clone() Column {
	cp := make(heapRows, len(c.rows))
	copy(cp, c.rows)

	return &HeapColumn{rows: cp, insertsSinceLastPrune: c.insertsSinceLastPrune, finalized: c.finalized}
}

// Rows returns the duplicate-free, descending set of stored rows. Forces a
// finalize-equivalent drain on a throwaway copy so the receiver's
// finalization state is unaffected.
func (c *HeapColumn) Rows() []int {
	tmp := make(heapRows, len(c.rows))
	copy(tmp, c.rows)

	out := make([]int, 0, len(tmp))
	for {
		m := popMaxCancelling(&tmp)
		if m == -1 {
			break
		}
		out = append(out, m)
	}

	return out
}

// SortAscending drops the heap invariant and sorts entries ascending, for
// consumers (e.g. presentation minimization) that want merge-based sorted
// addition instead of heap-based addition. Mirrors _sort_col. The column
// must be finalized first; calling this on a column with pending duplicates
// would sort garbage.
func (c *HeapColumn) SortAscending() {
	if !c.finalized {
		panic(errNotFinalized)
	}
	rows := []int(c.rows)
	for i := 1; i < len(rows); i++ {
		v := rows[i]
		j := i - 1
		for j >= 0 && rows[j] > v {
			rows[j+1] = rows[j]
			j--
		}
		rows[j+1] = v
	}
}

// popMaxCancelling pops the heap's maximum, cancelling equal-valued
// duplicate pairs as it goes (mod-2 arithmetic), and returns the surviving
// maximum or -1 if everything cancelled out. This is the direct Go
// translation of vector_heap_mod's _pop_max_index.
func popMaxCancelling(h *heapRows) int {
	if h.Len() == 0 {
		return -1
	}

	maxElement := heap.Pop(h).(int)
	for h.Len() > 0 && (*h)[0] == maxElement {
		heap.Pop(h)
		if h.Len() == 0 {
			return -1
		}
		maxElement = heap.Pop(h).(int)
	}

	return maxElement
}
