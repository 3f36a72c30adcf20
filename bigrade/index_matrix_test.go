package bigrade_test

import (
	"testing"

	"github.com/mlesnick-labs/bigraded/bigrade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexMatrix_NewMatrixIsAllSentinel(t *testing.T) {
	im := bigrade.NewIndexMatrix(2, 3)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			v, err := im.Get(y, x)
			require.NoError(t, err)
			assert.Equal(t, -1, v)
		}
	}
}

func TestIndexMatrix_StartIndexOfLexFirstIsZero(t *testing.T) {
	im := bigrade.NewIndexMatrix(2, 2)
	start, err := im.StartIndex(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, start)
}

func TestIndexMatrix_StartIndexFollowsPredecessorAcrossRows(t *testing.T) {
	im := bigrade.NewIndexMatrix(2, 2)
	require.NoError(t, im.Set(0, 0, 3))
	require.NoError(t, im.Set(0, 1, 5))

	// Lex-previous of (y=1,x=0) is (y=0, x=width-1=1).
	start, err := im.StartIndex(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, start)
}

func TestIndexMatrix_MonotonicityAcrossLexTraversal(t *testing.T) {
	im := bigrade.NewIndexMatrix(2, 2)
	require.NoError(t, im.Set(0, 0, 2))
	require.NoError(t, im.Set(0, 1, 2)) // empty bigrade repeats the terminal
	require.NoError(t, im.Set(1, 0, 4))
	require.NoError(t, im.Set(1, 1, 7))

	prev := -1
	for y := 0; y < im.Height(); y++ {
		for x := 0; x < im.Width(); x++ {
			v, err := im.Get(y, x)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, prev)
			prev = v
		}
	}
}

func TestIndexMatrix_OutOfRangeCoordinates(t *testing.T) {
	im := bigrade.NewIndexMatrix(1, 1)
	_, err := im.Get(1, 0)
	assert.ErrorIs(t, err, bigrade.ErrOutOfRange)

	_, err = im.StartIndex(0, 5)
	assert.ErrorIs(t, err, bigrade.ErrOutOfRange)

	err = im.Set(-1, 0, 1)
	assert.ErrorIs(t, err, bigrade.ErrOutOfRange)
}
