package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveScripted(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)
	NewGenerator(&scriptedRand{}).Generate(g)

	path := Solve(g, g.Start(), g.Exit())
	assert.Equal(t, []Coord{C(0, 0), C(1, 0), C(1, 1)}, path)
	assert.Equal(t, 2, Distance(g, g.Start(), g.Exit()))

	// Going the long way round to (0,1).
	assert.Equal(t, 3, Distance(g, g.Start(), C(0, 1)))
}

func TestSolvePathIsWalkable(t *testing.T) {
	g, err := NewGrid(20, 15)
	require.NoError(t, err)
	NewGenerator(rand.New(rand.NewSource(11))).Generate(g)

	path := Solve(g, g.Start(), g.Exit())
	require.NotEmpty(t, path)
	assert.Equal(t, g.Start(), path[0])
	assert.Equal(t, g.Exit(), path[len(path)-1])

	for i := 1; i < len(path); i++ {
		d, ok := DirBetween(path[i-1], path[i])
		require.True(t, ok, "steps must be adjacent")
		assert.False(t, g.HasWall(path[i-1], d), "step %d crosses a wall", i)
	}
}

func TestSolveUnreachable(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	assert.Nil(t, Solve(g, C(0, 0), C(2, 2)))
	assert.Equal(t, -1, Distance(g, C(0, 0), C(2, 2)))
	assert.Nil(t, Solve(g, C(0, 0), C(9, 9)))
	assert.Equal(t, []Coord{C(1, 1)}, Solve(g, C(1, 1), C(1, 1)))
}

func TestRenderMarksPath(t *testing.T) {
	g, err := NewGrid(3, 1)
	require.NoError(t, err)
	NewGenerator(&scriptedRand{}).Generate(g)

	want := "" +
		"+---+---+---+\n" +
		"| S   .   E |\n" +
		"+---+---+---+\n"
	assert.Equal(t, want, g.Render(Solve(g, g.Start(), g.Exit())))
}
