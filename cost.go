package gridsearch

import (
	"fmt"
	"math"
	"strings"
)

// CostFunc scores the path walked so far.
type CostFunc func(p Path) float64

// HeuristicFunc estimates the remaining cost from a cell to the destination.
type HeuristicFunc func(from, to Cell) float64

// ZeroCost ignores the path walked so far.
func ZeroCost(Path) float64 { return 0 }

// ZeroHeuristic ignores the destination.
func ZeroHeuristic(Cell, Cell) float64 { return 0 }

// PathLength sums the Euclidean distance of every step: 1 for axis-aligned
// moves and √2 for diagonals.
func PathLength(p Path) float64 {
	length := 0.0
	for i := 1; i < len(p); i++ {
		dx := float64(p[i].X - p[i-1].X)
		dy := float64(p[i].Y - p[i-1].Y)
		length += math.Hypot(dx, dy)
	}
	return length
}

// Octile is the exact travel cost between two cells on an open 8-connected
// grid. It is admissible and consistent for PathLength costs.
func Octile(from, to Cell) float64 {
	dx := abs(to.X - from.X)
	dy := abs(to.Y - from.Y)
	lo, hi := min(dx, dy), max(dx, dy)
	return float64(hi-lo) + math.Sqrt2*float64(lo)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Strategy selects a cost and heuristic pair.
type Strategy int

const (
	// AStar orders by path length plus octile distance.
	AStar Strategy = iota
	// BreadthFirst orders by insertion only.
	BreadthFirst
	// UniformCost orders by path length.
	UniformCost
	// Greedy orders by octile distance to the destination.
	Greedy
)

var strategyNames = map[Strategy]string{
	AStar:        "astar",
	BreadthFirst: "bfs",
	UniformCost:  "ucs",
	Greedy:       "greedy",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Funcs returns the cost and heuristic functions for s.
func (s Strategy) Funcs() (CostFunc, HeuristicFunc) {
	switch s {
	case BreadthFirst:
		return ZeroCost, ZeroHeuristic
	case UniformCost:
		return PathLength, ZeroHeuristic
	case Greedy:
		return ZeroCost, Octile
	default:
		return PathLength, Octile
	}
}

// ParseStrategy maps a user-facing name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "astar", "a*", "a-star":
		return AStar, nil
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	case "ucs", "uniform-cost", "dijkstra":
		return UniformCost, nil
	case "greedy", "best-first":
		return Greedy, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}
