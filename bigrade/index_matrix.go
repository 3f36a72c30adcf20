// SPDX-License-Identifier: MIT
package bigrade

import "fmt"

// IndexMatrix maps bigrades (x, y) to column ranges: entry (y, x) is the
// terminal column index of the range of columns whose bigrade is (x, y),
// in lex traversal order (y outer, x inner). Entries start at -1
// (uninitialized) and are expected to be filled in non-decreasing
// lex order; an empty bigrade simply repeats its predecessor's terminal
// index, which StartIndex relies on rather than special-casing.
type IndexMatrix struct {
	grid   [][]int // grid[y][x]
	height int
	width  int
}

// NewIndexMatrix returns a height×width IndexMatrix with every entry set
// to -1.
func NewIndexMatrix(height, width int) *IndexMatrix {
	im := &IndexMatrix{height: height, width: width}
	im.grid = make([][]int, height)
	for y := range im.grid {
		im.grid[y] = make([]int, width)
		for x := range im.grid[y] {
			im.grid[y][x] = -1
		}
	}

	return im
}

// Height returns the number of y-grades.
func (im *IndexMatrix) Height() int { return im.height }

// Width returns the number of x-grades.
func (im *IndexMatrix) Width() int { return im.width }

func (im *IndexMatrix) checkCoord(y, x int) error {
	if y < 0 || y >= im.height || x < 0 || x >= im.width {
		return fmt.Errorf("IndexMatrix(%d,%d): %w", y, x, ErrOutOfRange)
	}

	return nil
}

// Get returns the terminal column index of bigrade (x, y).
func (im *IndexMatrix) Get(y, x int) (int, error) {
	if err := im.checkCoord(y, x); err != nil {
		return 0, err
	}

	return im.grid[y][x], nil
}

// Set writes the terminal column index of bigrade (x, y).
func (im *IndexMatrix) Set(y, x, v int) error {
	if err := im.checkCoord(y, x); err != nil {
		return err
	}
	im.grid[y][x] = v

	return nil
}

// StartIndex returns the first column index of bigrade (x, y): one past
// the terminal index of the lex-previous bigrade, or 0 if (x, y) is the
// lex-first cell of the grid. Lex-previous means (x-1, y) if x > 0,
// otherwise (width-1, y-1). An empty predecessor bigrade already stores
// its own predecessor's terminal index (the non-decreasing invariant), so
// no separate skip logic is needed here.
func (im *IndexMatrix) StartIndex(y, x int) (int, error) {
	if err := im.checkCoord(y, x); err != nil {
		return 0, err
	}
	if y == 0 && x == 0 {
		return 0, nil
	}

	prevY, prevX := y, x-1
	if x == 0 {
		prevY, prevX = y-1, im.width-1
	}
	prev, err := im.Get(prevY, prevX)
	if err != nil {
		return 0, err
	}

	return prev + 1, nil
}
