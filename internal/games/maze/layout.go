package maze

import (
	"github.com/vovakirdan/tui-maze/internal/core"
	mz "github.com/vovakirdan/tui-maze/internal/maze"
)

// Smallest strides that still leave one interior character per cell.
const (
	MinStrideX = 2
	MinStrideY = 2
)

// Layout maps maze cells onto screen characters. Cell (x, y) occupies the
// character block starting at Bounds.X+x*StrideX, Bounds.Y+y*StrideY, and
// walls sit on the block's top and left edges.
type Layout struct {
	Columns int
	Rows    int
	StrideX int
	StrideY int
	Bounds  core.Rect
	Fits    bool
}

// FitLayout picks the largest integer strides that fit the maze into area,
// keeping cells about twice as wide as tall so they look square in a
// terminal. Fits is false when even the minimum strides do not fit.
func FitLayout(area core.Rect, columns, rows int) Layout {
	l := Layout{Columns: columns, Rows: rows}
	if columns < 1 || rows < 1 || area.Empty() {
		return l
	}

	maxSX := (area.W - 1) / columns
	maxSY := (area.H - 1) / rows
	if maxSX < MinStrideX || maxSY < MinStrideY {
		return l
	}

	sy := core.Clamp(maxSX/2, MinStrideY, maxSY)
	sx := min(2*sy, maxSX)

	l.StrideX = sx
	l.StrideY = sy
	l.Bounds = area.CenterIn(columns*sx+1, rows*sy+1)
	l.Fits = true
	return l
}

// CellOrigin returns the screen position of the top-left wall corner of c.
func (l Layout) CellOrigin(c mz.Coord) (int, int) {
	return l.Bounds.X + c.X*l.StrideX, l.Bounds.Y + c.Y*l.StrideY
}

// CellCenter returns the screen position of the centre of c's interior.
func (l Layout) CellCenter(c mz.Coord) (int, int) {
	x, y := l.CellOrigin(c)
	return x + l.StrideX/2, y + l.StrideY/2
}

// Aspect returns the factor that converts a horizontal character distance
// into vertical character units.
func (l Layout) Aspect() float64 {
	if l.StrideX == 0 {
		return 1
	}
	return float64(l.StrideY) / float64(l.StrideX)
}
