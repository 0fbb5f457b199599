package maze

// Dir is one of the four orthogonal directions a player can move in.
// It also names the wall on that side of a cell.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Dirs lists every direction in table order.
var Dirs = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// dirTable is the only place that maps a side to a coordinate offset.
// Wall removal and movement both read from it.
var dirTable = [4]struct {
	dx, dy   int
	opposite Dir
	name     string
}{
	DirUp:    {0, -1, DirDown, "up"},
	DirDown:  {0, 1, DirUp, "down"},
	DirLeft:  {-1, 0, DirRight, "left"},
	DirRight: {1, 0, DirLeft, "right"},
}

// Valid reports whether d is one of the four defined directions.
func (d Dir) Valid() bool {
	return int(d) < len(dirTable)
}

// Delta returns the (dx, dy) offset for one step in this direction.
// Up decreases Y, Down increases Y.
func (d Dir) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	return dirTable[d].dx, dirTable[d].dy
}

// Opposite returns the side facing d from the neighbouring cell.
func (d Dir) Opposite() Dir {
	if !d.Valid() {
		return d
	}
	return dirTable[d].opposite
}

// String returns the lower-case name of the direction.
func (d Dir) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return dirTable[d].name
}

// DirBetween returns the side of a that faces b.
// ok is false unless a and b differ by exactly one step on one axis.
func DirBetween(a, b Coord) (d Dir, ok bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	for _, d := range Dirs {
		if dirTable[d].dx == dx && dirTable[d].dy == dy {
			return d, true
		}
	}
	return 0, false
}
