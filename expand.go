package gridsearch

// extend generates every valid one-step extension of p in Steps order.
func extend(occ Occupancy, p Path) []Path {
	last := p.Last()
	extensions := make([]Path, 0, len(Steps))
	for _, step := range Steps {
		if CanMove(occ, last, step) {
			extensions = append(extensions, p.Extend(last.Add(step)))
		}
	}
	return extensions
}
