package maze

// Solve returns the shortest path from one cell to another through open
// walls, both ends included. Returns nil if either end is out of bounds or
// the cells are not connected.
func Solve(g *Grid, from, to Coord) []Coord {
	if !g.InBounds(from) || !g.InBounds(to) {
		return nil
	}

	queue := []Coord{from}
	cameFrom := make(map[Coord]Coord, g.Size())
	visited := make(map[Coord]bool, g.Size())
	visited[from] = true

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == to {
			path := []Coord{curr}
			for curr != from {
				curr = cameFrom[curr]
				path = append(path, curr)
			}
			// Reverse into from -> to order.
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range Dirs {
			if g.HasWall(curr, d) {
				continue
			}
			next := curr.Step(d)
			if !g.InBounds(next) || visited[next] {
				continue
			}
			visited[next] = true
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}
	return nil
}

// Distance returns the number of moves on the shortest path between two
// cells, or -1 if there is none.
func Distance(g *Grid, from, to Coord) int {
	path := Solve(g, from, to)
	if path == nil {
		return -1
	}
	return len(path) - 1
}
