package gridsearch

import "github.com/google/uuid"

// session is the state of one request. It is owned by the Engine and replaced
// wholesale on every RequestPath.
type session struct {
	id          uuid.UUID
	requester   Requester
	source      Cell
	destination Cell

	current  Path
	explored map[Cell]struct{}
	frontier frontier

	steps      int
	expansions int
	status     Status
}

func newSession(requester Requester, source, destination Cell) *session {
	return &session{
		id:          uuid.New(),
		requester:   requester,
		source:      source,
		destination: destination,
		current:     Path{source},
		explored:    make(map[Cell]struct{}),
		status:      StatusRunning,
	}
}

func (s *session) done() bool { return s.status != StatusRunning }
