package game

import "fmt"

// MineLayout is the ground truth of which cells hold mines.
type MineLayout struct {
	grid
	mined    []bool
	selector MineSelector
}

func newMineLayout(g grid, selector MineSelector) *MineLayout {
	return &MineLayout{
		grid:     g,
		mined:    make([]bool, g.numCells()),
		selector: selector,
	}
}

func (layout *MineLayout) clear() {
	for i := range layout.mined {
		layout.mined[i] = false
	}
}

// LayMines places count mines one at a time, each among the cells still
// unmined at that step. unmined is the number of unmined cells before the
// first placement.
func (layout *MineLayout) LayMines(count, unmined int) {
	for ; count > 0; count-- {
		layout.layOneMine(unmined)
		unmined--
	}
}

// RelocateOneMine lays one additional mine among the unmined cells. The
// caller then clears the mine it is moving away from.
func (layout *MineLayout) RelocateOneMine(unmined int) {
	layout.layOneMine(unmined)
}

func (layout *MineLayout) layOneMine(unmined int) {
	pos := layout.selector.PickIndex(unmined)

	// Walk unmined cells in row-major order until the drawn index is used up
	for i, isMined := range layout.mined {
		if isMined {
			continue
		}
		if pos == 0 {
			layout.mined[i] = true
			return
		}
		pos--
	}

	panic(fmt.Sprintf("no unmined cell left to mine (asked for %d of %d)", pos, unmined))
}

func (layout *MineLayout) IsMined(row, column int) bool {
	return layout.mined[layout.index(row, column)]
}

func (layout *MineLayout) setMined(row, column int, isMined bool) {
	layout.mined[layout.index(row, column)] = isMined
}

// AdjacentMineCount counts mines in the clipped 3x3 neighborhood, not
// including the cell itself.
func (layout *MineLayout) AdjacentMineCount(row, column int) int {
	lowRow, lowCol, hiRow, hiCol := layout.neighborhood(row, column)

	count := 0
	for r := lowRow; r <= hiRow; r++ {
		for c := lowCol; c <= hiCol; c++ {
			if layout.IsMined(r, c) {
				count++
			}
		}
	}
	if layout.IsMined(row, column) {
		count--
	}
	return count
}

// NumMines counts every mined cell.
func (layout *MineLayout) NumMines() int {
	count := 0
	for _, isMined := range layout.mined {
		if isMined {
			count++
		}
	}
	return count
}
