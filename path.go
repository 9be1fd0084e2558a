package gridsearch

// Path is a sequence of adjacent cells starting at the search source.
// A Path placed in the frontier is never modified; Extend copies.
type Path []Cell

// Last returns the final cell of p. p must not be empty.
func (p Path) Last() Cell { return p[len(p)-1] }

// Extend returns a new path with c appended. The result never shares its
// backing array with p.
func (p Path) Extend(c Cell) Path {
	extended := make(Path, len(p), len(p)+1)
	copy(extended, p)
	return append(extended, c)
}

// Clone returns an independent copy of p, or nil for an empty path.
func (p Path) Clone() Path {
	if len(p) == 0 {
		return nil
	}
	c := make(Path, len(p))
	copy(c, p)
	return c
}

// Valid reports whether p is non-empty, every consecutive pair is adjacent and
// every transition is allowed by occ.
func (p Path) Valid(occ Occupancy) bool {
	if len(p) == 0 {
		return false
	}
	for i := 1; i < len(p); i++ {
		step, ok := StepBetween(p[i-1], p[i])
		if !ok || !CanMove(occ, p[i-1], step) {
			return false
		}
	}
	return true
}
