// Package gesture reduces pointer positions to one of the four maze
// directions.
package gesture

import (
	"math"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Classify returns the direction from the current cell's centre (cx, cy)
// towards the pointer at (px, py). Both points must be in the same
// coordinate space as the rendered maze.
//
// The horizontal axis wins only when |dx| > |dy|; ties go vertical.
// Within an axis the sign of the delta picks the side, and a zero delta
// counts as negative (Left or Up).
func Classify(px, py, cx, cy float64) maze.Dir {
	dx := px - cx
	dy := py - cy

	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return maze.DirRight
		}
		return maze.DirLeft
	}
	if dy > 0 {
		return maze.DirDown
	}
	return maze.DirUp
}

// Tracker filters raw pointer events. A press only arms the tracker; each
// motion while armed yields a direction.
type Tracker struct {
	pressed bool
}

// Press records that the pointer went down. It never yields a move.
func (t *Tracker) Press() {
	t.pressed = true
}

// Release records that the pointer went up.
func (t *Tracker) Release() {
	t.pressed = false
}

// Pressed reports whether the pointer is currently down.
func (t *Tracker) Pressed() bool {
	return t.pressed
}

// Motion classifies a pointer move relative to the current cell centre.
// ok is false when the pointer is not pressed.
func (t *Tracker) Motion(px, py, cx, cy float64) (d maze.Dir, ok bool) {
	if !t.pressed {
		return 0, false
	}
	return Classify(px, py, cx, cy), true
}
