package navigator

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// zeroRand always picks the first candidate.
type zeroRand struct{ calls int }

func (r *zeroRand) Intn(int) int {
	r.calls++
	return 0
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// walk moves along path (which starts at the current position) and returns
// the result of every step.
func walk(t *testing.T, n *Navigator, path []maze.Coord) []Result {
	t.Helper()
	results := make([]Result, 0, len(path))
	for i := 1; i < len(path); i++ {
		d, ok := maze.DirBetween(path[i-1], path[i])
		require.True(t, ok)
		results = append(results, n.Move(d))
	}
	return results
}

func TestNewInitialState(t *testing.T) {
	n, err := New(15, 20, seeded(1))
	require.NoError(t, err)

	assert.Equal(t, maze.C(0, 0), n.Position())
	assert.Equal(t, maze.C(0, 0), n.Start())
	assert.Equal(t, maze.C(14, 19), n.Exit())
	assert.Equal(t, 1, n.Generation())
	assert.Equal(t, 0, n.Wins())
	assert.Equal(t, 0, n.Moves())
	assert.NoError(t, maze.CheckPerfect(n.View().Grid()))
}

func TestNewInvalidSize(t *testing.T) {
	_, err := New(0, 10, seeded(1))

	var cfgErr *maze.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "columns", cfgErr.Field)
}

func TestScripted2x2(t *testing.T) {
	n, err := New(2, 2, &zeroRand{})
	require.NoError(t, err)

	// Generation carved (0,0)-(1,0), (1,0)-(1,1), (1,1)-(0,1).
	trace := n.Trace()
	require.Len(t, trace, 3)
	assert.True(t, trace[0].Connects(maze.C(0, 0), maze.C(1, 0)))

	res := n.Move(maze.DirDown)
	assert.Equal(t, Blocked, res.Outcome)
	assert.Equal(t, maze.C(0, 0), n.Position())

	res = n.Move(maze.DirRight)
	assert.Equal(t, Moved, res.Outcome)
	assert.Equal(t, maze.C(1, 0), res.Position)
	assert.False(t, res.Won)

	// Measured from the start, not from the player.
	assert.Equal(t, 2, n.ExitDistance())
	assert.Len(t, n.SolutionFromHere(), 2)
}

func TestExitDistanceMatchesSolution(t *testing.T) {
	n, err := New(9, 7, seeded(3))
	require.NoError(t, err)

	assert.Equal(t, len(n.SolutionFromHere())-1, n.ExitDistance())
	n.Regenerate()
	assert.Equal(t, len(n.SolutionFromHere())-1, n.ExitDistance())
}

func TestBlockedMoveIsIdempotent(t *testing.T) {
	n, err := New(10, 10, seeded(5))
	require.NoError(t, err)

	// Up from (0,0) always faces the boundary.
	for i := 0; i < 50; i++ {
		res := n.Move(maze.DirUp)
		assert.Equal(t, Blocked, res.Outcome)
		assert.Equal(t, maze.C(0, 0), res.Position)
	}
	assert.Equal(t, maze.C(0, 0), n.Position())
	assert.Equal(t, 0, n.Moves())
	assert.Equal(t, 1, n.Generation())
}

func TestInvalidDirectionIsBlocked(t *testing.T) {
	n, err := New(4, 4, seeded(2))
	require.NoError(t, err)

	res := n.Move(maze.Dir(42))
	assert.Equal(t, Blocked, res.Outcome)
	assert.Equal(t, maze.C(0, 0), n.Position())
}

func TestRandomWalkStaysInBounds(t *testing.T) {
	n, err := New(7, 5, seeded(9))
	require.NoError(t, err)
	dirs := seeded(10)

	for i := 0; i < 5000; i++ {
		before := n.Position()
		d := maze.Dirs[dirs.Intn(len(maze.Dirs))]
		wall := n.View().HasWall(before, d)

		res := n.Move(d)
		pos := n.Position()
		require.True(t, pos.X >= 0 && pos.X < 7 && pos.Y >= 0 && pos.Y < 5, "position %v left the grid", pos)

		if wall {
			assert.Equal(t, Blocked, res.Outcome)
			assert.Equal(t, before, pos)
		} else {
			assert.Equal(t, Moved, res.Outcome)
		}
	}
}

func TestWinRegeneratesOnce(t *testing.T) {
	n, err := New(6, 6, seeded(21))
	require.NoError(t, err)

	path := n.SolutionFromHere()
	require.NotEmpty(t, path)

	results := walk(t, n, path)
	for _, res := range results[:len(results)-1] {
		assert.False(t, res.Won)
		assert.Equal(t, Moved, res.Outcome)
	}

	last := results[len(results)-1]
	assert.True(t, last.Won)
	assert.Equal(t, Moved, last.Outcome)
	assert.Equal(t, maze.C(5, 5), last.Finished)
	assert.Equal(t, len(path)-1, last.Moves)
	assert.Equal(t, maze.C(0, 0), last.Position)

	assert.Equal(t, maze.C(0, 0), n.Position())
	assert.Equal(t, 2, n.Generation())
	assert.Equal(t, 1, n.Wins())
	assert.Equal(t, 0, n.Moves())
	assert.NoError(t, maze.CheckPerfect(n.View().Grid()))

	// Viewing the maze repeatedly never regenerates.
	for i := 0; i < 10; i++ {
		_ = n.View()
	}
	assert.Equal(t, 2, n.Generation())
}

func TestScripted2x2Win(t *testing.T) {
	n, err := New(2, 2, &zeroRand{})
	require.NoError(t, err)

	assert.Equal(t, Moved, n.Move(maze.DirRight).Outcome)
	res := n.Move(maze.DirDown)

	assert.True(t, res.Won)
	assert.Equal(t, maze.C(1, 1), res.Finished)
	assert.Equal(t, maze.C(0, 0), n.Position())
	assert.Equal(t, 2, n.Generation())
}

func TestManyWins(t *testing.T) {
	n, err := New(5, 4, seeded(77))
	require.NoError(t, err)

	for round := 1; round <= 10; round++ {
		walk(t, n, n.SolutionFromHere())
		assert.Equal(t, round, n.Wins())
		assert.Equal(t, round+1, n.Generation())
		assert.Equal(t, n.Start(), n.Position())
		require.NoError(t, maze.CheckPerfect(n.View().Grid()))
	}
}

func TestRegenerateResetsPosition(t *testing.T) {
	n, err := New(3, 3, &zeroRand{})
	require.NoError(t, err)

	n.Move(maze.DirRight)
	require.NotEqual(t, maze.C(0, 0), n.Position())

	n.Regenerate()
	assert.Equal(t, maze.C(0, 0), n.Position())
	assert.Equal(t, 0, n.Moves())
	assert.Equal(t, 0, n.Wins())
}

func TestSingleCellMaze(t *testing.T) {
	n, err := New(1, 1, seeded(1))
	require.NoError(t, err)

	for _, d := range maze.Dirs {
		res := n.Move(d)
		assert.Equal(t, Blocked, res.Outcome)
		assert.False(t, res.Won)
	}
	assert.Equal(t, 1, n.Generation())
}

func TestViewIsReadOnly(t *testing.T) {
	n, err := New(3, 3, seeded(4))
	require.NoError(t, err)

	v := n.View()
	g := v.Grid()
	before := len(g.OpenEdges())
	_ = g.RemoveWallBetween(maze.C(0, 0), maze.C(1, 0))
	_ = g.RemoveWallBetween(maze.C(0, 0), maze.C(0, 1))

	assert.Len(t, n.View().Grid().OpenEdges(), before)
	assert.Equal(t, 3, v.Columns())
	assert.Equal(t, 3, v.Rows())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "Blocked", Blocked.String())
	assert.Equal(t, "Moved", Moved.String())
	assert.Equal(t, "Unknown", Outcome(5).String())
}
