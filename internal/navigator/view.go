package navigator

import "github.com/vovakirdan/tui-maze/internal/maze"

// View exposes the maze to renderers without allowing mutation.
// It reflects the grid at the time of the call only until the next move that
// wins, which regenerates the walls in place.
type View struct {
	grid *maze.Grid

	Start   maze.Coord
	Exit    maze.Coord
	Current maze.Coord
}

// Columns returns the grid width.
func (v View) Columns() int {
	return v.grid.Width()
}

// Rows returns the grid height.
func (v View) Rows() int {
	return v.grid.Height()
}

// HasWall reports whether the cell at c has a wall on side d.
func (v View) HasWall(c maze.Coord, d maze.Dir) bool {
	return v.grid.HasWall(c, d)
}

// Cell returns a copy of the cell at c.
func (v View) Cell(c maze.Coord) maze.Cell {
	return v.grid.Cell(c)
}

// Grid returns a deep copy of the grid.
func (v View) Grid() *maze.Grid {
	return v.grid.Clone()
}

// String renders the maze as ASCII art.
func (v View) String() string {
	return v.grid.String()
}
