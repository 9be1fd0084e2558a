package gridsearch

import (
	"math"
	"math/rand"
)

// testGrid is a bounded occupancy map; everything outside is occupied.
type testGrid struct {
	w, h    int
	blocked map[Cell]bool
}

// parseRows builds a grid from rows of '.' (free) and '#' (occupied).
// Row index is Y, column index is X.
func parseRows(rows ...string) testGrid {
	g := testGrid{h: len(rows), blocked: map[Cell]bool{}}
	for y, row := range rows {
		g.w = max(g.w, len(row))
		for x, ch := range row {
			if ch == '#' {
				g.blocked[Cell{x, y}] = true
			}
		}
	}
	return g
}

func openGrid(w, h int) testGrid {
	return testGrid{w: w, h: h, blocked: map[Cell]bool{}}
}

func randomGrid(seed int64, w, h int, density float64, keep ...Cell) testGrid {
	r := rand.New(rand.NewSource(seed))
	g := openGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Float64() < density {
				g.blocked[Cell{x, y}] = true
			}
		}
	}
	for _, c := range keep {
		delete(g.blocked, c)
	}
	return g
}

func (g testGrid) IsOccupied(c Cell) bool {
	if c.X < 0 || c.Y < 0 || c.X >= g.w || c.Y >= g.h {
		return true
	}
	return g.blocked[c]
}

func (g testGrid) cells() []Cell {
	out := make([]Cell, 0, g.w*g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			out = append(out, Cell{x, y})
		}
	}
	return out
}

// referenceHops is a plain breadth-first search returning the number of
// edges on the shortest path.
func referenceHops(g testGrid, src, dst Cell) (int, bool) {
	dist := map[Cell]int{src: 0}
	queue := []Cell{src}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == dst {
			return dist[c], true
		}
		for _, s := range Steps {
			n := c.Add(s)
			if _, seen := dist[n]; seen || !CanMove(g, c, s) {
				continue
			}
			dist[n] = dist[c] + 1
			queue = append(queue, n)
		}
	}
	return 0, false
}

// referenceCost is an O(V²) Dijkstra over Euclidean step costs.
func referenceCost(g testGrid, src, dst Cell) (float64, bool) {
	dist := map[Cell]float64{src: 0}
	done := map[Cell]bool{}
	for {
		best, bestDist := Cell{}, math.Inf(1)
		for _, c := range g.cells() {
			if d, ok := dist[c]; ok && !done[c] && d < bestDist {
				best, bestDist = c, d
			}
		}
		if math.IsInf(bestDist, 1) {
			return 0, false
		}
		if best == dst {
			return bestDist, true
		}
		done[best] = true
		for _, s := range Steps {
			if !CanMove(g, best, s) {
				continue
			}
			n := best.Add(s)
			d := bestDist + math.Hypot(float64(s.X), float64(s.Y))
			if old, ok := dist[n]; !ok || d < old {
				dist[n] = d
			}
		}
	}
}

// recorder counts completions and keeps the last path delivered.
type recorder struct {
	calls int
	path  Path
}

func (r *recorder) OnPathResolved(p Path) {
	r.calls++
	r.path = p
}

// runToEnd steps e until it is idle, failing after limit steps.
func runToEnd(e *Engine, limit int) (Status, int) {
	status := StatusIdle
	for i := 0; i < limit; i++ {
		var err error
		status, err = e.Step()
		if err != nil {
			panic(err)
		}
		if status != StatusRunning {
			return status, i + 1
		}
	}
	return status, limit
}
