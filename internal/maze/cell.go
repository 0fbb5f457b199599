package maze

// Cell holds the wall state of one grid square.
// Cells handed out by Grid are copies; mutating them has no effect on the grid.
type Cell struct {
	walls   [4]bool // indexed by Dir
	visited bool
}

// newCell returns a cell with every wall present.
func newCell() Cell {
	return Cell{walls: [4]bool{true, true, true, true}}
}

// HasWall reports whether the wall on side d is present.
// Invalid directions are treated as walls.
func (c Cell) HasWall(d Dir) bool {
	if !d.Valid() {
		return true
	}
	return c.walls[d]
}

// Top reports whether the top wall is present.
func (c Cell) Top() bool { return c.walls[DirUp] }

// Bottom reports whether the bottom wall is present.
func (c Cell) Bottom() bool { return c.walls[DirDown] }

// Left reports whether the left wall is present.
func (c Cell) Left() bool { return c.walls[DirLeft] }

// Right reports whether the right wall is present.
func (c Cell) Right() bool { return c.walls[DirRight] }

// Visited reports whether the generator has reached this cell.
func (c Cell) Visited() bool { return c.visited }

// OpenSides returns the number of absent walls.
func (c Cell) OpenSides() int {
	n := 0
	for _, w := range c.walls {
		if !w {
			n++
		}
	}
	return n
}
