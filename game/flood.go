package game

import "github.com/gammazero/deque"

// exposer reveals safe cells, rippling outward through cells with no
// adjacent mines.
type exposer struct {
	layout *MineLayout
	tags   *TagGrid
}

func (e exposer) canExpose(row, column int) bool {
	tag := e.tags.Get(row, column)
	return !tag.IsExposed() && tag != Flagged
}

// exposeSafeCell tags a covered, unflagged, unmined cell with its adjacent
// mine count. A zero count floods into every exposable neighbor; the flood
// stops at cells with a non-zero count after exposing them. It returns the
// number of cells exposed besides the starting one.
func (e exposer) exposeSafeCell(row, column int) int {
	var frontier deque.Deque

	reveal := func(row, column int) {
		n := e.layout.AdjacentMineCount(row, column)
		e.tags.Set(row, column, ExposedCount(n))
		if n == 0 {
			frontier.PushBack(Point{row, column})
		}
	}

	reveal(row, column)

	// Cells are tagged as they are queued, so none is counted twice
	added := 0
	for frontier.Len() > 0 {
		cell := frontier.PopFront().(Point)

		for _, neighbor := range e.tags.neighbors(cell.Row, cell.Column) {
			if e.canExpose(neighbor.Row, neighbor.Column) {
				reveal(neighbor.Row, neighbor.Column)
				added++
			}
		}
	}

	return added
}
