package gridsearch

import "fmt"

// Cell is an integer coordinate on the tile grid.
type Cell struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Add returns c offset by s.
func (c Cell) Add(s Step) Cell { return Cell{X: c.X + s.X, Y: c.Y + s.Y} }

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Step is a one-cell move. Valid steps have components in {-1,0,1} and are not
// both zero.
type Step struct {
	X int
	Y int
}

// IsDiagonal reports whether both components of s are non-zero.
func (s Step) IsDiagonal() bool { return s.X != 0 && s.Y != 0 }

// Steps lists the eight moves in expansion order: row-major over X then Y.
var Steps = [8]Step{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// StepBetween returns the step leading from a to b and whether a and b are
// adjacent.
func StepBetween(a, b Cell) (Step, bool) {
	s := Step{X: b.X - a.X, Y: b.Y - a.Y}
	if s.X < -1 || s.X > 1 || s.Y < -1 || s.Y > 1 || (s.X == 0 && s.Y == 0) {
		return Step{}, false
	}
	return s, true
}
