package matrix_test

import (
	"testing"

	"github.com/mlesnick-labs/bigraded/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeRU_OnAlreadyReducedMatrixLeavesUIdentity(t *testing.T) {
	m := matrix.NewColumnMatrix(3, 2)
	require.NoError(t, m.Set(0, 0))
	require.NoError(t, m.Set(1, 1))
	pm := matrix.WrapPermuted(m)

	dec, err := matrix.DecomposeRU(pm)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			entry, err := dec.U.Entry(i, j)
			require.NoError(t, err)
			assert.Equal(t, i == j, entry, "U[%d][%d]", i, j)
		}
	}
}

func TestDecomposeRU_RProducesDistinctPivots(t *testing.T) {
	m := matrix.NewColumnMatrix(3, 3)
	require.NoError(t, m.Set(0, 0))
	require.NoError(t, m.Set(2, 0))
	require.NoError(t, m.Set(1, 1))
	require.NoError(t, m.Set(2, 1))
	require.NoError(t, m.Set(0, 2))
	pm := matrix.WrapPermuted(m)

	dec, err := matrix.DecomposeRU(pm)
	require.NoError(t, err)

	seen := map[int]bool{}
	for j := 0; j < 3; j++ {
		low, err := dec.R.Low(j)
		require.NoError(t, err)
		if low < 0 {
			continue
		}
		assert.False(t, seen[low])
		seen[low] = true
	}
}

func TestDecomposeRU_UIsUpperTriangularWithUnitDiagonal(t *testing.T) {
	m := matrix.NewColumnMatrix(3, 3)
	require.NoError(t, m.Set(0, 0))
	require.NoError(t, m.Set(2, 0))
	require.NoError(t, m.Set(1, 1))
	require.NoError(t, m.Set(2, 1))
	require.NoError(t, m.Set(0, 2))
	pm := matrix.WrapPermuted(m)

	dec, err := matrix.DecomposeRU(pm)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < i; j++ {
			entry, err := dec.U.Entry(i, j)
			require.NoError(t, err)
			assert.False(t, entry, "U[%d][%d] below diagonal must be 0", i, j)
		}
		diag, err := dec.U.Entry(i, i)
		require.NoError(t, err)
		assert.True(t, diag, "U[%d][%d] diagonal must be 1", i, i)
	}
}

func TestDecomposeRU_SatisfiesREqualsMTimesU(t *testing.T) {
	// M is captured before decomposition, since DecomposeRU now mutates its
	// input (R) in place.
	m := matrix.NewColumnMatrix(3, 3)
	require.NoError(t, m.Set(0, 0))
	require.NoError(t, m.Set(2, 0))
	require.NoError(t, m.Set(1, 1))
	require.NoError(t, m.Set(2, 1))
	require.NoError(t, m.Set(0, 2))
	original := m.Clone()
	pm := matrix.WrapPermuted(m)

	dec, err := matrix.DecomposeRU(pm)
	require.NoError(t, err)

	for j := 0; j < 3; j++ {
		// (M*U)[.,j] = XOR over i where U[i][j]=1 of M[.,i].
		got := make([]bool, 3)
		for i := 0; i < 3; i++ {
			uij, err := dec.U.Entry(i, j)
			require.NoError(t, err)
			if !uij {
				continue
			}
			for row := 0; row < 3; row++ {
				mij, err := original.Entry(row, i)
				require.NoError(t, err)
				if mij {
					got[row] = !got[row]
				}
			}
		}
		for row := 0; row < 3; row++ {
			want, err := dec.R.Entry(row, j)
			require.NoError(t, err)
			assert.Equal(t, want, got[row], "row %d col %d", row, j)
		}
	}
}

func TestDecomposeRU_MutatesInputPermutedMatrixInPlace(t *testing.T) {
	m := matrix.NewColumnMatrix(3, 3)
	require.NoError(t, m.Set(0, 0))
	require.NoError(t, m.Set(2, 0))
	require.NoError(t, m.Set(1, 1))
	require.NoError(t, m.Set(2, 1))
	require.NoError(t, m.Set(0, 2))
	pm := matrix.WrapPermuted(m)

	dec, err := matrix.DecomposeRU(pm)
	require.NoError(t, err)

	assert.Same(t, pm, dec.R)
}

func TestRowPriorityMatrix_AddRowSelfAddRejected(t *testing.T) {
	u := matrix.NewIdentityRowPriorityMatrix(2)
	err := u.AddRow(0, 0)
	assert.ErrorIs(t, err, matrix.ErrSelfAdd)
}

func TestRowPriorityMatrix_AddRowSymmetricDifference(t *testing.T) {
	u := matrix.NewRowPriorityMatrix(2, 3)
	require.NoError(t, u.Set(0, 0))
	require.NoError(t, u.Set(0, 1))
	require.NoError(t, u.Set(1, 1))
	require.NoError(t, u.Set(1, 2))

	require.NoError(t, u.AddRow(0, 1))

	for col, want := range map[int]bool{0: true, 1: false, 2: true} {
		got, err := u.Entry(1, col)
		require.NoError(t, err)
		assert.Equal(t, want, got, "col %d", col)
	}
}
