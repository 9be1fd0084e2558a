package gridsearch

// Occupancy answers whether a cell is blocked. Implementations must be free of
// side effects; the engine may ask about the same cell several times per step
// and never caches answers. Cells outside the map are whatever the
// implementation says they are.
type Occupancy interface {
	IsOccupied(c Cell) bool
}

// OccupancyFunc adapts a plain function to Occupancy.
type OccupancyFunc func(c Cell) bool

func (f OccupancyFunc) IsOccupied(c Cell) bool { return f(c) }

// CanMove reports whether an agent at from may take step without entering an
// occupied cell or clipping an occupied corner on a diagonal.
func CanMove(occ Occupancy, from Cell, step Step) bool {
	if occ.IsOccupied(from.Add(step)) {
		return false
	}
	if step.IsDiagonal() {
		if occ.IsOccupied(from.Add(Step{X: step.X})) {
			return false
		}
		if occ.IsOccupied(from.Add(Step{Y: step.Y})) {
			return false
		}
	}
	return true
}
