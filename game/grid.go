package game

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Point identifies a cell by row and column.
type Point struct {
	Row, Column int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

// grid holds the dimensions shared by the mine layout and the tag grid.
// Cells are stored row-major at row*columns+column.
type grid struct {
	rows, columns int
}

func newGrid(rows, columns int) (grid, error) {
	if rows < 1 || columns < 1 {
		return grid{}, errors.Wrapf(ErrInvalidDimensions, "%dx%d", rows, columns)
	}

	product := int64(rows) * int64(columns)
	if product > math.MaxInt32 || product < 4 {
		return grid{}, errors.Wrapf(ErrInvalidDimensions, "%dx%d has %d cells", rows, columns, product)
	}

	return grid{rows: rows, columns: columns}, nil
}

func (g grid) numCells() int {
	return g.rows * g.columns
}

func (g grid) contains(row, column int) bool {
	return row >= 0 && column >= 0 && row < g.rows && column < g.columns
}

func (g grid) check(row, column int) error {
	if !g.contains(row, column) {
		return errors.Wrapf(ErrOutOfBounds, "(%d, %d) in %dx%d grid", row, column, g.rows, g.columns)
	}
	return nil
}

func (g grid) index(row, column int) int {
	return row*g.columns + column
}

// neighborhood returns the inclusive bounds of the 3x3 block around a cell,
// clipped to the grid.
func (g grid) neighborhood(row, column int) (lowRow, lowCol, hiRow, hiCol int) {
	lowRow, hiRow = row-1, row+1
	if lowRow < 0 {
		lowRow = 0
	}
	if hiRow >= g.rows {
		hiRow = g.rows - 1
	}

	lowCol, hiCol = column-1, column+1
	if lowCol < 0 {
		lowCol = 0
	}
	if hiCol >= g.columns {
		hiCol = g.columns - 1
	}
	return
}

// neighbors returns the clipped 3x3 block around a cell, excluding the cell
// itself, in row-major order.
func (g grid) neighbors(row, column int) []Point {
	lowRow, lowCol, hiRow, hiCol := g.neighborhood(row, column)

	out := make([]Point, 0, 8)
	for r := lowRow; r <= hiRow; r++ {
		for c := lowCol; c <= hiCol; c++ {
			if r != row || c != column {
				out = append(out, Point{r, c})
			}
		}
	}
	return out
}
