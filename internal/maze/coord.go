package maze

import "fmt"

// Coord identifies a cell on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the coordinate one cell away in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Edge is an open passage between two adjacent cells.
type Edge struct {
	A Coord
	B Coord
}

// String returns a string representation of the edge.
func (e Edge) String() string {
	return e.A.String() + "-" + e.B.String()
}

// Connects reports whether the edge joins a and b, in either order.
func (e Edge) Connects(a, b Coord) bool {
	return (e.A == a && e.B == b) || (e.A == b && e.B == a)
}
