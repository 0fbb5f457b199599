package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float64
		expected maze.Dir
	}{
		{"right", 15, 10.5, maze.DirRight},
		{"left", 2, 9, maze.DirLeft},
		{"down", 10.5, 20, maze.DirDown},
		{"up", 11, 0, maze.DirUp},
		{"diagonal tie goes vertical down", 15, 15, maze.DirDown},
		{"diagonal tie goes vertical up", 5, 5, maze.DirUp},
		{"at centre", 10, 10, maze.DirUp},
		{"steep right is down", 11, 30, maze.DirDown},
		{"shallow down is right", 30, 11, maze.DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.px, tc.py, 10, 10))
		})
	}
}

func TestTracker(t *testing.T) {
	var tr Tracker

	_, ok := tr.Motion(20, 10, 10, 10)
	assert.False(t, ok, "motion before press must not move")

	tr.Press()
	assert.True(t, tr.Pressed())
	d, ok := tr.Motion(20, 10, 10, 10)
	assert.True(t, ok)
	assert.Equal(t, maze.DirRight, d)

	tr.Release()
	_, ok = tr.Motion(20, 10, 10, 10)
	assert.False(t, ok)
}
