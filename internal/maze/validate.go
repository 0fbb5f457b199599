package maze

import (
	"errors"
	"fmt"
)

// Errors returned by the invariant checks.
var (
	ErrAsymmetricWall = errors.New("maze: asymmetric wall")
	ErrBoundaryOpen   = errors.New("maze: boundary wall open")
	ErrNotSpanning    = errors.New("maze: open walls do not form a spanning tree")
)

// CheckSymmetry verifies that every pair of adjacent cells agrees on the
// wall between them.
func CheckSymmetry(g *Grid) error {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := C(x, y)
			for _, d := range []Dir{DirRight, DirDown} {
				n := c.Step(d)
				if !g.InBounds(n) {
					continue
				}
				if g.HasWall(c, d) != g.HasWall(n, d.Opposite()) {
					return fmt.Errorf("%w: %v %s vs %v %s", ErrAsymmetricWall, c, d, n, d.Opposite())
				}
			}
		}
	}
	return nil
}

// CheckPerfect verifies that the open-wall graph of g is a spanning tree:
// walls are symmetric, the outer boundary is closed, no cell is sealed off,
// there are exactly W*H-1 passages and every cell is connected to (0,0).
func CheckPerfect(g *Grid) error {
	if err := CheckSymmetry(g); err != nil {
		return err
	}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := C(x, y)
			if g.Size() > 1 && g.Cell(c).OpenSides() == 0 {
				return fmt.Errorf("%w: %v isolated", ErrNotSpanning, c)
			}
			for _, d := range Dirs {
				if !g.InBounds(c.Step(d)) && !g.HasWall(c, d) {
					return fmt.Errorf("%w: %v %s", ErrBoundaryOpen, c, d)
				}
			}
		}
	}

	edges := g.OpenEdges()
	if want := g.Size() - 1; len(edges) != want {
		return fmt.Errorf("%w: %d passages, want %d", ErrNotSpanning, len(edges), want)
	}

	sets := newDisjointSets(g.Size())
	for _, e := range edges {
		if !sets.union(g.index(e.A), g.index(e.B)) {
			return fmt.Errorf("%w: cycle through %v", ErrNotSpanning, e)
		}
	}
	root := sets.find(0)
	for i := 1; i < g.Size(); i++ {
		if sets.find(i) != root {
			return fmt.Errorf("%w: %v unreachable", ErrNotSpanning, C(i%g.w, i/g.w))
		}
	}
	return nil
}

// disjointSets is a union-find over cell indices with union by rank and
// path compression.
type disjointSets struct {
	parent []int
	rank   []int
}

func newDisjointSets(n int) *disjointSets {
	s := &disjointSets{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range s.parent {
		s.parent[i] = i
	}
	return s
}

func (s *disjointSets) find(i int) int {
	if s.parent[i] != i {
		s.parent[i] = s.find(s.parent[i])
	}
	return s.parent[i]
}

// union merges the sets holding a and b.
// Returns false if they were already in the same set.
func (s *disjointSets) union(a, b int) bool {
	x, y := s.find(a), s.find(b)
	if x == y {
		return false
	}
	switch {
	case s.rank[x] > s.rank[y]:
		s.parent[y] = x
	case s.rank[x] < s.rank[y]:
		s.parent[x] = y
	default:
		s.parent[y] = x
		s.rank[x]++
	}
	return true
}
