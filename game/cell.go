package game

// Region is an inclusive bounding box of cells.
type Region struct {
	Min, Max Point
}

func (region Region) Contains(p Point) bool {
	return p.Row >= region.Min.Row && p.Row <= region.Max.Row &&
		p.Column >= region.Min.Column && p.Column <= region.Max.Column
}

func (region Region) extend(p Point) Region {
	if p.Row < region.Min.Row {
		region.Min.Row = p.Row
	}
	if p.Row > region.Max.Row {
		region.Max.Row = p.Row
	}
	if p.Column < region.Min.Column {
		region.Min.Column = p.Column
	}
	if p.Column > region.Max.Column {
		region.Max.Column = p.Column
	}
	return region
}

// TagGrid stores the visible tag of every cell and tracks the bounding box of
// cells changed since the last TakeDirtyRegion.
type TagGrid struct {
	grid
	tags []Tag

	dirty   Region
	isDirty bool
}

func newTagGrid(g grid) *TagGrid {
	return &TagGrid{
		grid: g,
		tags: make([]Tag, g.numCells()),
	}
}

func (tags *TagGrid) Get(row, column int) Tag {
	return tags.tags[tags.index(row, column)]
}

func (tags *TagGrid) Set(row, column int, tag Tag) {
	idx := tags.index(row, column)
	if tags.tags[idx] == tag {
		return
	}
	tags.tags[idx] = tag

	p := Point{row, column}
	if tags.isDirty {
		tags.dirty = tags.dirty.extend(p)
	} else {
		tags.dirty = Region{Min: p, Max: p}
		tags.isDirty = true
	}
}

// TakeDirtyRegion returns and clears the changed region. ok is false when
// nothing changed since the previous call.
func (tags *TagGrid) TakeDirtyRegion() (region Region, ok bool) {
	if !tags.isDirty {
		return Region{}, false
	}
	region = tags.dirty
	tags.dirty = Region{}
	tags.isDirty = false
	return region, true
}

func (tags *TagGrid) reset() {
	for row := 0; row < tags.rows; row++ {
		for column := 0; column < tags.columns; column++ {
			tags.Set(row, column, Covered)
		}
	}
}
