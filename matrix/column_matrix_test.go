package matrix_test

import (
	"testing"

	"github.com/mlesnick-labs/bigraded/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnMatrix_SetClearEntryRoundTrip(t *testing.T) {
	m := matrix.NewColumnMatrix(4, 3)
	require.NoError(t, m.Set(2, 1))
	ok, err := m.Entry(2, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, m.Clear(2, 1))
	ok, err = m.Entry(2, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestColumnMatrix_OutOfRangeReturnsSentinel(t *testing.T) {
	m := matrix.NewColumnMatrix(2, 2)
	_, err := m.Entry(5, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Low(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, 5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestColumnMatrix_AddColumnSelfAddRejected(t *testing.T) {
	m := matrix.NewColumnMatrix(2, 2)
	err := m.AddColumn(0, 0)
	assert.ErrorIs(t, err, matrix.ErrSelfAdd)
}

func TestColumnMatrix_AddColumnSymmetricDifference(t *testing.T) {
	m := matrix.NewColumnMatrix(4, 2)
	require.NoError(t, m.Set(0, 0))
	require.NoError(t, m.Set(1, 0))
	require.NoError(t, m.Set(1, 1))
	require.NoError(t, m.Set(2, 1))

	require.NoError(t, m.AddColumn(0, 1))

	for row, want := range map[int]bool{0: true, 1: false, 2: true, 3: false} {
		got, err := m.Entry(row, 1)
		require.NoError(t, err)
		assert.Equal(t, want, got, "row %d", row)
	}
}

func TestColumnMatrix_IdentityHasDiagonalPivots(t *testing.T) {
	m := matrix.NewIdentityColumnMatrix(5)
	for j := 0; j < 5; j++ {
		low, err := m.Low(j)
		require.NoError(t, err)
		assert.Equal(t, j, low)
	}
}

func TestColumnMatrix_ColReduceProducesDistinctPivots(t *testing.T) {
	// Columns 0 and 1 share a pivot at row 2; col_reduce must cancel it.
	m := matrix.NewColumnMatrix(3, 3)
	require.NoError(t, m.Set(0, 0))
	require.NoError(t, m.Set(2, 0))
	require.NoError(t, m.Set(1, 1))
	require.NoError(t, m.Set(2, 1))
	require.NoError(t, m.Set(0, 2))

	require.NoError(t, m.ColReduce())

	seen := map[int]bool{}
	for j := 0; j < m.Width(); j++ {
		empty, err := m.IsEmpty(j)
		require.NoError(t, err)
		if empty {
			continue
		}
		low, err := m.Low(j)
		require.NoError(t, err)
		assert.False(t, seen[low], "pivot %d reused by column %d", low, j)
		seen[low] = true
	}
}

func TestColumnMatrix_ColReduceOnEmptyMatrixIsNoOp(t *testing.T) {
	m := matrix.NewColumnMatrix(3, 3)
	require.NoError(t, m.ColReduce())
	for j := 0; j < 3; j++ {
		empty, err := m.IsEmpty(j)
		require.NoError(t, err)
		assert.True(t, empty)
	}
}

func TestColumnMatrix_AppendColMovesColumnAndEmptiesSource(t *testing.T) {
	src := matrix.NewColumnMatrix(3, 2)
	require.NoError(t, src.Set(1, 0))
	require.NoError(t, src.Set(2, 0))

	dst := matrix.NewColumnMatrix(3, 1)
	require.NoError(t, dst.AppendCol(src, 0))

	assert.Equal(t, 2, dst.Width())
	low, err := dst.Low(1)
	require.NoError(t, err)
	assert.Equal(t, 2, low)

	empty, err := src.IsEmpty(0)
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestColumnMatrix_MoveColOverwritesTargetAndEmptiesSource(t *testing.T) {
	src := matrix.NewColumnMatrix(3, 1)
	require.NoError(t, src.Set(0, 0))

	dst := matrix.NewColumnMatrix(3, 2)
	require.NoError(t, dst.Set(2, 1))

	require.NoError(t, dst.MoveCol(src, 0, 1))

	low, err := dst.Low(1)
	require.NoError(t, err)
	assert.Equal(t, 0, low)

	empty, err := src.IsEmpty(0)
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestColumnMatrix_CloneIsIndependent(t *testing.T) {
	m := matrix.NewColumnMatrix(2, 1)
	require.NoError(t, m.Set(0, 0))

	cp := m.Clone()
	require.NoError(t, cp.Set(1, 0))

	got, err := m.Entry(1, 0)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestColumnMatrix_HeapBackendColReduceMatchesListBackend(t *testing.T) {
	build := func(opts ...matrix.Option) *matrix.ColumnMatrix {
		m := matrix.NewColumnMatrix(3, 3, opts...)
		_ = m.Set(0, 0)
		_ = m.Set(2, 0)
		_ = m.Set(1, 1)
		_ = m.Set(2, 1)
		_ = m.Set(0, 2)

		return m
	}

	listM := build()
	heapM := build(matrix.WithBackend(matrix.BackendHeap))
	heapM.FinalizeAll()

	require.NoError(t, listM.ColReduce())
	require.NoError(t, heapM.ColReduce())

	for j := 0; j < 3; j++ {
		wantLow, err := listM.Low(j)
		require.NoError(t, err)
		gotLow, err := heapM.Low(j)
		require.NoError(t, err)
		assert.Equal(t, wantLow, gotLow, "column %d", j)
	}
}
