package maze

import "strings"

// String renders the grid as ASCII art, one text row per wall line and one
// per cell row.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render draws the grid like String, marking every cell in mark with a dot.
// The start and exit corners are drawn as S and E.
func (g *Grid) Render(mark []Coord) string {
	marked := make(map[Coord]bool, len(mark))
	for _, c := range mark {
		marked[c] = true
	}

	var b strings.Builder
	b.Grow((g.w*4 + 2) * (g.h*2 + 1))

	// Top boundary
	b.WriteString("+")
	for x := 0; x < g.w; x++ {
		if g.HasWall(C(x, 0), DirUp) {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for y := 0; y < g.h; y++ {
		// Cell row
		if g.HasWall(C(0, y), DirLeft) {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < g.w; x++ {
			c := C(x, y)
			switch {
			case c == g.Start():
				b.WriteString(" S ")
			case c == g.Exit():
				b.WriteString(" E ")
			case marked[c]:
				b.WriteString(" . ")
			default:
				b.WriteString("   ")
			}
			if g.HasWall(c, DirRight) {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		// Wall row
		b.WriteString("+")
		for x := 0; x < g.w; x++ {
			if g.HasWall(C(x, y), DirDown) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
