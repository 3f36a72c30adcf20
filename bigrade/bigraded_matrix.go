// SPDX-License-Identifier: MIT
package bigrade

import (
	"fmt"

	"github.com/mlesnick-labs/bigraded/matrix"
)

// BigradedMatrixLex pairs a ColumnMatrix, asserted to have its columns in
// lex order (y, then x), with the IndexMatrix describing that ordering.
type BigradedMatrixLex struct {
	Mat *matrix.ColumnMatrix
	Ind *IndexMatrix
}

// NewBigradedMatrixLex returns a BigradedMatrixLex with a fresh all-zero
// rows×cols matrix and an indRows×indCols IndexMatrix.
func NewBigradedMatrixLex(rows, cols, indRows, indCols int, opts ...matrix.Option) *BigradedMatrixLex {
	return &BigradedMatrixLex{
		Mat: matrix.NewColumnMatrix(rows, cols, opts...),
		Ind: NewIndexMatrix(indRows, indCols),
	}
}

// BigradedMatrix pairs a ColumnMatrix, asserted to have its columns in
// colex order (x, then y), with the IndexMatrix describing that ordering.
type BigradedMatrix struct {
	Mat *matrix.ColumnMatrix
	Ind *IndexMatrix
}

// NewBigradedMatrix returns a BigradedMatrix with a fresh all-zero
// rows×cols matrix and an indRows×indCols IndexMatrix.
func NewBigradedMatrix(rows, cols, indRows, indCols int, opts ...matrix.Option) *BigradedMatrix {
	return &BigradedMatrix{
		Mat: matrix.NewColumnMatrix(rows, cols, opts...),
		Ind: NewIndexMatrix(indRows, indCols),
	}
}

// FromLex converts lexMat to colex order: for each bigrade in lex
// traversal (y outer, x inner), its column range is moved, in order, to
// consecutive positions in the returned matrix, and the corresponding
// IndexMatrix entry is rebuilt against the new positions. lexMat is left
// trivialised (0×0) afterward — its columns have been moved, not copied.
func FromLex(lexMat *BigradedMatrixLex) (*BigradedMatrix, error) {
	out := NewBigradedMatrix(lexMat.Mat.Rows(), lexMat.Mat.Width(), lexMat.Ind.Height(), lexMat.Ind.Width())

	currentIndex := 0
	for y := 0; y < lexMat.Ind.Height(); y++ {
		for x := 0; x < lexMat.Ind.Width(); x++ {
			firstCol, err := lexMat.Ind.StartIndex(y, x)
			if err != nil {
				return nil, fmt.Errorf("FromLex: %w", err)
			}
			lastCol, err := lexMat.Ind.Get(y, x)
			if err != nil {
				return nil, fmt.Errorf("FromLex: %w", err)
			}
			for j := firstCol; j <= lastCol; j++ {
				if err := out.Mat.MoveCol(lexMat.Mat, j, currentIndex); err != nil {
					return nil, fmt.Errorf("FromLex: moving column %d: %w", j, err)
				}
				currentIndex++
			}
			if err := out.Ind.Set(y, x, currentIndex-1); err != nil {
				return nil, fmt.Errorf("FromLex: %w", err)
			}
		}
	}

	lexMat.Mat = matrix.NewColumnMatrix(0, 0)
	lexMat.Ind = NewIndexMatrix(0, 0)

	return out, nil
}

// Kernel computes a basis for the kernel of the linear map encoded by m,
// organised by bigrade. m's columns must already be finalized. The basis
// is built in lex order via the standard reduction (kernelOneBigrade) and
// returned converted to colex order, matching every other BigradedMatrix
// in the package.
func (m *BigradedMatrix) Kernel() (*BigradedMatrix, error) {
	kerLex := NewBigradedMatrixLex(m.Mat.Width(), 0, m.Ind.Height(), m.Ind.Width())
	slave := matrix.NewIdentityColumnMatrix(m.Mat.Width())

	lows := make([]int, m.Mat.Rows())
	for i := range lows {
		lows[i] = -1
	}

	for x := 0; x < m.Ind.Width(); x++ {
		for y := 0; y < m.Ind.Height(); y++ {
			if err := m.kernelOneBigrade(slave, kerLex, x, y, lows); err != nil {
				return nil, fmt.Errorf("Kernel: bigrade (%d,%d): %w", x, y, err)
			}
		}
	}

	return FromLex(kerLex)
}

// kernelOneBigrade processes the columns of m whose bigrade is (x, y),
// chasing pivots against lows (shared across every bigrade at this x) and
// emitting a kernel generator into kerLex for every column that becomes
// exactly zero, or that was already zero and belongs to this bigrade
// rather than an earlier one in the same row.
func (m *BigradedMatrix) kernelOneBigrade(slave *matrix.ColumnMatrix, kerLex *BigradedMatrixLex, currX, currY int, lows []int) error {
	firstCol, err := m.Ind.StartIndex(currY, 0)
	if err != nil {
		return err
	}
	firstColCurBigrade, err := m.Ind.StartIndex(currY, currX)
	if err != nil {
		return err
	}
	lastCol, err := m.Ind.Get(currY, currX)
	if err != nil {
		return err
	}

	for j := firstCol; j <= lastCol; j++ {
		changingColumn := false
		l := m.Mat.Column(j).LowFinalized()

		if l != -1 && lows[l] != -1 && lows[l] < j {
			changingColumn = true
			m.Mat.Column(j).RemoveLow()
		}

		for l != -1 && lows[l] != -1 && lows[l] < j {
			c := lows[l]
			m.Mat.Column(j).AddColumnPopped(m.Mat.Column(c))
			if err := slave.AddColumn(c, j); err != nil {
				return fmt.Errorf("kernelOneBigrade: slave add_column(%d,%d): %w", c, j, err)
			}
			l = m.Mat.Column(j).RemoveLow()
		}

		if l != -1 {
			lows[l] = j
			if changingColumn {
				m.Mat.Column(j).PushIndex(l)
				m.Mat.Column(j).Finalize()
			}
		} else {
			switch {
			case changingColumn:
				slave.Column(j).Finalize()
				if err := kerLex.Mat.AppendCol(slave, j); err != nil {
					return fmt.Errorf("kernelOneBigrade: append_col(%d): %w", j, err)
				}
			case j >= firstColCurBigrade:
				if err := kerLex.Mat.AppendCol(slave, j); err != nil {
					return fmt.Errorf("kernelOneBigrade: append_col(%d): %w", j, err)
				}
			}
		}
	}

	return kerLex.Ind.Set(currY, currX, kerLex.Mat.Width()-1)
}
