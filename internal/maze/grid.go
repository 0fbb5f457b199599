// Package maze provides the grid/wall model of a rectangular maze and a
// randomized depth-first generator that carves perfect mazes into it.
// This package is UI-agnostic.
package maze

import "fmt"

// Grid is a rectangular array of cells stored in row-major order:
// index = y*W + x.
//
// Walls between adjacent cells are always symmetric. RemoveWallBetween is the
// only operation that opens a wall, and it updates both sides.
type Grid struct {
	w     int
	h     int
	cells []Cell
}

// NewGrid creates a grid with every wall present.
// Returns a *ConfigError if either dimension is below 1 or above MaxDimension.
func NewGrid(columns, rows int) (*Grid, error) {
	if err := ValidateSize(columns, rows); err != nil {
		return nil, err
	}
	g := &Grid{
		w:     columns,
		h:     rows,
		cells: make([]Cell, columns*rows),
	}
	g.reset()
	return g, nil
}

// reset restores every wall and clears every visited flag.
func (g *Grid) reset() {
	for i := range g.cells {
		g.cells[i] = newCell()
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.w + c.X
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Cell returns a copy of the cell at c.
// Out-of-bounds coordinates yield a fully walled cell.
func (g *Grid) Cell(c Coord) Cell {
	if !g.InBounds(c) {
		return newCell()
	}
	return g.cells[g.index(c)]
}

// HasWall reports whether the cell at c has a wall on side d.
func (g *Grid) HasWall(c Coord, d Dir) bool {
	return g.Cell(c).HasWall(d)
}

// neighborOrder is the candidate order seen by the generator. Seeded mazes
// depend on it, so it must not change.
var neighborOrder = [4]Dir{DirLeft, DirRight, DirUp, DirDown}

// Neighbors returns the in-bounds orthogonal neighbours of c in the order
// left, right, up, down.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOrder))
	for _, d := range neighborOrder {
		n := c.Step(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// RemoveWallBetween opens the shared wall of two adjacent cells.
// The side is derived from the coordinate delta; both cells are updated.
func (g *Grid) RemoveWallBetween(a, b Coord) error {
	if !g.InBounds(a) || !g.InBounds(b) {
		return fmt.Errorf("maze: remove wall %v-%v out of bounds: %w", a, b, ErrInvalidAdjacency)
	}
	d, ok := DirBetween(a, b)
	if !ok {
		return fmt.Errorf("maze: remove wall %v-%v: %w", a, b, ErrInvalidAdjacency)
	}
	g.cells[g.index(a)].walls[d] = false
	g.cells[g.index(b)].walls[d.Opposite()] = false
	return nil
}

// isVisited reports the generator's visited flag for c.
func (g *Grid) isVisited(c Coord) bool {
	return g.cells[g.index(c)].visited
}

// markVisited sets the generator's visited flag for c.
func (g *Grid) markVisited(c Coord) {
	g.cells[g.index(c)].visited = true
}

// OpenEdges returns every open passage once, scanning row by row and
// looking only right and down.
func (g *Grid) OpenEdges() []Edge {
	var edges []Edge
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := C(x, y)
			cell := g.cells[g.index(c)]
			if x < g.w-1 && !cell.walls[DirRight] {
				edges = append(edges, Edge{A: c, B: c.Step(DirRight)})
			}
			if y < g.h-1 && !cell.walls[DirDown] {
				edges = append(edges, Edge{A: c, B: c.Step(DirDown)})
			}
		}
	}
	return edges
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		w:     g.w,
		h:     g.h,
		cells: cells,
	}
}

// Start returns the fixed start corner (0,0).
func (g *Grid) Start() Coord {
	return C(0, 0)
}

// Exit returns the fixed exit corner (W-1,H-1).
func (g *Grid) Exit() Coord {
	return C(g.w-1, g.h-1)
}
