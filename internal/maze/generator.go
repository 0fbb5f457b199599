package maze

// Rand is the random source used to pick the next neighbour.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Generator carves perfect mazes with an iterative randomized depth-first
// search (recursive backtracker). A Generator is not safe for concurrent use.
type Generator struct {
	rng   Rand
	trace []Edge
	stack []Coord
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate resets g and carves a spanning tree over all of its cells.
// It returns the fixed start and exit corners.
func (gen *Generator) Generate(g *Grid) (start, exit Coord) {
	g.reset()
	gen.trace = gen.trace[:0]
	gen.stack = gen.stack[:0]

	start, exit = g.Start(), g.Exit()
	current := start
	g.markVisited(current)

	candidates := make([]Coord, 0, len(Dirs))
	for {
		candidates = candidates[:0]
		for _, n := range g.Neighbors(current) {
			if !g.isVisited(n) {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) > 0 {
			next := candidates[gen.rng.Intn(len(candidates))]
			if err := g.RemoveWallBetween(current, next); err != nil {
				// Neighbors only yields adjacent cells.
				panic(err)
			}
			gen.trace = append(gen.trace, Edge{A: current, B: next})
			gen.stack = append(gen.stack, current)
			current = next
			g.markVisited(current)
			continue
		}

		if len(gen.stack) == 0 {
			break
		}
		current = gen.stack[len(gen.stack)-1]
		gen.stack = gen.stack[:len(gen.stack)-1]
	}

	return start, exit
}

// Trace returns the passages carved by the last Generate call, in order.
func (gen *Generator) Trace() []Edge {
	out := make([]Edge, len(gen.trace))
	copy(out, gen.trace)
	return out
}
