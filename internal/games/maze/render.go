package maze

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-maze/internal/core"
	mz "github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/navigator"
)

// Arm bits of a wall junction.
const (
	armUp = 1 << iota
	armDown
	armLeft
	armRight
)

// junctions is indexed by a combination of arm bits.
var junctions = []rune(" │││─┘┐┤─└┌├─┴┬┼")

const (
	runePlayer = '@'
	runeStart  = 'S'
	runeExit   = 'X'
	runeHint   = '·'
)

// Render draws the HUD and the maze into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.err != nil {
		g.renderOverlay(dst, "Invalid maze size", g.err.Error())
		return
	}
	if !g.layout.Fits {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	view := g.nav.View()
	g.renderWalls(dst, view)
	g.renderMarkers(dst, view)
	g.renderFooter(dst)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Maze %dx%d", g.cfg.Columns, g.cfg.Rows)
	if g.nav != nil {
		hud += fmt.Sprintf("  Moves: %d  Shortest: %d  Solved: %d  Time: %s",
			g.nav.Moves(), g.optimal, g.nav.Wins(), formatElapsed(g.Elapsed()))
	}
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)

	for x, w := 0, dst.Width(); x < w; x++ {
		dst.SetColored(x, 1, '─', core.ColorHUD)
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if g.lastSolve != nil {
		msg := fmt.Sprintf("Solved in %d moves (shortest %d) in %s. New maze!",
			g.lastSolve.Moves, g.lastSolve.Optimal, formatElapsed(g.lastSolve.Duration))
		dst.DrawTextColored(1, y, msg, core.ColorExit)
		return
	}
	dst.DrawTextColored(1, y, "arrows/wasd/hjkl move  drag mouse  ? hint  r new maze  p pause  q quit", core.ColorHUD)
}

// renderWalls draws every wall segment, then the junctions between them.
func (g *Game) renderWalls(dst *core.Screen, v mazeView) {
	l := g.layout
	cols, rows := v.Columns(), v.Rows()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := mz.C(x, y)
			ox, oy := l.CellOrigin(c)
			if v.HasWall(c, mz.DirUp) {
				for i := 1; i < l.StrideX; i++ {
					dst.SetColored(ox+i, oy, '─', core.ColorWall)
				}
			}
			if v.HasWall(c, mz.DirLeft) {
				for i := 1; i < l.StrideY; i++ {
					dst.SetColored(ox, oy+i, '│', core.ColorWall)
				}
			}
			if y == rows-1 && v.HasWall(c, mz.DirDown) {
				for i := 1; i < l.StrideX; i++ {
					dst.SetColored(ox+i, oy+l.StrideY, '─', core.ColorWall)
				}
			}
			if x == cols-1 && v.HasWall(c, mz.DirRight) {
				for i := 1; i < l.StrideY; i++ {
					dst.SetColored(ox+l.StrideX, oy+i, '│', core.ColorWall)
				}
			}
		}
	}

	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			arms := 0
			if vertical(v, i, j-1) {
				arms |= armUp
			}
			if vertical(v, i, j) {
				arms |= armDown
			}
			if horizontal(v, i-1, j) {
				arms |= armLeft
			}
			if horizontal(v, i, j) {
				arms |= armRight
			}
			dst.SetColored(l.Bounds.X+i*l.StrideX, l.Bounds.Y+j*l.StrideY, junctions[arms], core.ColorWall)
		}
	}
}

// mazeView is the read-only slice of navigator.View the renderer needs.
type mazeView interface {
	Columns() int
	Rows() int
	HasWall(c mz.Coord, d mz.Dir) bool
}

// horizontal reports whether the wall segment on grid line j between
// column lines i and i+1 is present.
func horizontal(v mazeView, i, j int) bool {
	if i < 0 || i >= v.Columns() {
		return false
	}
	if j < v.Rows() {
		return v.HasWall(mz.C(i, j), mz.DirUp)
	}
	return v.HasWall(mz.C(i, v.Rows()-1), mz.DirDown)
}

// vertical reports whether the wall segment on column line i between grid
// lines j and j+1 is present.
func vertical(v mazeView, i, j int) bool {
	if j < 0 || j >= v.Rows() {
		return false
	}
	if i < v.Columns() {
		return v.HasWall(mz.C(i, j), mz.DirLeft)
	}
	return v.HasWall(mz.C(v.Columns()-1, j), mz.DirRight)
}

func (g *Game) renderMarkers(dst *core.Screen, v navigator.View) {
	if g.showHint {
		path := g.nav.SolutionFromHere()
		for i := 1; i < len(path)-1; i++ {
			x, y := g.layout.CellCenter(path[i])
			dst.SetColored(x, y, runeHint, core.ColorHint)
		}
	}

	x, y := g.layout.CellCenter(v.Start)
	dst.SetColored(x, y, runeStart, core.ColorStart)
	x, y = g.layout.CellCenter(v.Exit)
	dst.SetColored(x, y, runeExit, core.ColorExit)
	x, y = g.layout.CellCenter(v.Current)
	dst.SetColored(x, y, runePlayer, core.ColorPlayer)
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).CenterIn(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
