package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(4, 3)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 12, g.Size())

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			cell := g.Cell(C(x, y))
			assert.True(t, cell.Top() && cell.Bottom() && cell.Left() && cell.Right(), "cell %v should start fully walled", C(x, y))
			assert.False(t, cell.Visited())
		}
	}
	assert.Empty(t, g.OpenEdges())
}

func TestNewGridInvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		columns, rows int
		field         string
	}{
		{"zero columns", 0, 5, "columns"},
		{"negative rows", 5, -1, "rows"},
		{"both zero", 0, 0, "columns"},
		{"too many columns", MaxDimension + 1, 5, "columns"},
		{"too many rows", 5, MaxDimension + 1, "rows"},
		{"huge", 100000, 100000, "columns"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.columns, tc.rows)
			assert.Nil(t, g)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestValidateSizeBounds(t *testing.T) {
	assert.NoError(t, ValidateSize(1, 1))
	assert.NoError(t, ValidateSize(MaxDimension, MaxDimension))

	err := ValidateSize(MaxDimension+1, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be between 1 and 1000")
}

func TestNeighbors(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	tests := []struct {
		name     string
		at       Coord
		expected []Coord
	}{
		{"top-left corner", C(0, 0), []Coord{C(1, 0), C(0, 1)}},
		{"bottom-right corner", C(2, 2), []Coord{C(1, 2), C(2, 1)}},
		{"top edge", C(1, 0), []Coord{C(0, 0), C(2, 0), C(1, 1)}},
		{"left edge", C(0, 1), []Coord{C(1, 1), C(0, 0), C(0, 2)}},
		{"center", C(1, 1), []Coord{C(0, 1), C(2, 1), C(1, 0), C(1, 2)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, g.Neighbors(tc.at))
		})
	}
}

func TestNeighborsSingleCell(t *testing.T) {
	g, err := NewGrid(1, 1)
	require.NoError(t, err)
	assert.Empty(t, g.Neighbors(C(0, 0)))
}

func TestRemoveWallBetween(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Coord
		sideA Dir
		sideB Dir
	}{
		{"right", C(0, 0), C(1, 0), DirRight, DirLeft},
		{"left", C(1, 1), C(0, 1), DirLeft, DirRight},
		{"down", C(1, 0), C(1, 1), DirDown, DirUp},
		{"up", C(0, 1), C(0, 0), DirUp, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(2, 2)
			require.NoError(t, err)

			require.NoError(t, g.RemoveWallBetween(tc.a, tc.b))
			assert.False(t, g.HasWall(tc.a, tc.sideA))
			assert.False(t, g.HasWall(tc.b, tc.sideB))
			assert.Equal(t, 1, g.Cell(tc.a).OpenSides())
			assert.Equal(t, 1, g.Cell(tc.b).OpenSides())
			assert.NoError(t, CheckSymmetry(g))
		})
	}
}

func TestRemoveWallBetweenNotAdjacent(t *testing.T) {
	tests := []struct {
		name string
		a, b Coord
	}{
		{"same cell", C(1, 1), C(1, 1)},
		{"diagonal", C(0, 0), C(1, 1)},
		{"two apart", C(0, 0), C(2, 0)},
		{"out of bounds", C(2, 0), C(3, 0)},
		{"negative", C(0, 0), C(-1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(3, 3)
			require.NoError(t, err)

			err = g.RemoveWallBetween(tc.a, tc.b)
			assert.ErrorIs(t, err, ErrInvalidAdjacency)
			assert.Empty(t, g.OpenEdges(), "failed removal must not change walls")
		})
	}
}

func TestCellOutOfBounds(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)

	for _, d := range Dirs {
		assert.True(t, g.HasWall(C(5, 5), d))
	}
}

func TestClone(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)
	clone := g.Clone()

	require.NoError(t, clone.RemoveWallBetween(C(0, 0), C(1, 0)))
	assert.True(t, g.HasWall(C(0, 0), DirRight), "original should be unaffected")
	assert.False(t, clone.HasWall(C(0, 0), DirRight))
}

func TestStartExit(t *testing.T) {
	g, err := NewGrid(15, 20)
	require.NoError(t, err)
	assert.Equal(t, C(0, 0), g.Start())
	assert.Equal(t, C(14, 19), g.Exit())
}
