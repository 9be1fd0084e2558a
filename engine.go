package gridsearch

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

// ErrNoSession is returned by Step when no request is in progress.
var ErrNoSession = errors.New("gridsearch: no active path request")

// Status is the state of a request after a step.
type Status int

const (
	// StatusIdle means the engine has no request.
	StatusIdle Status = iota
	// StatusRunning means the request needs more steps.
	StatusRunning
	// StatusFound means the destination was reached and the requester notified.
	StatusFound
	// StatusNoPath means the frontier ran dry and the requester got a nil path.
	StatusNoPath
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusFound:
		return "found"
	case StatusNoPath:
		return "no-path"
	}
	return "unknown"
}

// MarshalText renders the status name in JSON snapshots.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Engine runs at most one path request at a time, one frontier pop per Step.
// It never blocks and holds no locks: callers sharing an Engine between
// goroutines must serialize access themselves.
type Engine struct {
	occupancy        Occupancy
	strategy         Strategy
	cost             CostFunc
	heuristic        HeuristicFunc
	checkDestination bool
	logger           *slog.Logger

	session *session
}

// New creates an Engine over the given occupancy oracle.
func New(occupancy Occupancy, options ...Option) *Engine {
	opts := buildOptions(options)
	return &Engine{
		occupancy:        occupancy,
		strategy:         opts.Strategy,
		cost:             opts.Cost,
		heuristic:        opts.Heuristic,
		checkDestination: opts.CheckDestination,
		logger:           opts.Logger,
	}
}

// RequestPath starts a search from source to destination and returns its id.
// Any request still in progress is dropped without notifying its requester.
func (e *Engine) RequestPath(requester Requester, source, destination Cell) uuid.UUID {
	if e.IsActive() {
		e.logger.Info("path request superseded", "session", e.session.id)
	}

	s := newSession(requester, source, destination)
	e.session = s

	if e.checkDestination && e.occupancy.IsOccupied(destination) {
		// Leave the frontier empty so the first step reports no path.
		e.logger.Info("path requested", "session", s.id, "source", source,
			"destination", destination, "strategy", e.strategy, "destination_occupied", true)
		return s.id
	}

	start := Path{source}
	s.frontier.push(start, e.priority(start, destination))
	e.logger.Info("path requested", "session", s.id, "source", source,
		"destination", destination, "strategy", e.strategy)
	return s.id
}

// Cancel drops the request in progress, if any, without notifying its
// requester.
func (e *Engine) Cancel() {
	if e.session == nil {
		return
	}
	if !e.session.done() {
		e.logger.Info("path request cancelled", "session", e.session.id,
			"steps", e.session.steps)
	}
	e.session = nil
}

// IsActive reports whether a request is waiting for more steps.
func (e *Engine) IsActive() bool {
	return e.session != nil && !e.session.done()
}

// Step pops one path from the frontier and either resolves the request or
// expands the path's last cell. It returns ErrNoSession when there is nothing
// to step.
func (e *Engine) Step() (Status, error) {
	s := e.session
	if s == nil || s.done() {
		return StatusIdle, ErrNoSession
	}
	s.steps++

	if s.frontier.len() == 0 {
		e.resolve(s, StatusNoPath, nil)
		return StatusNoPath, nil
	}

	item := s.frontier.pop()
	s.current = item.Path
	last := item.Path.Last()

	if last == s.destination {
		e.resolve(s, StatusFound, item.Path)
		return StatusFound, nil
	}

	if _, seen := s.explored[last]; seen {
		e.logger.Debug("skip explored", "session", s.id, "cell", last)
		return StatusRunning, nil
	}
	s.explored[last] = struct{}{}
	s.expansions++

	extensions := extend(e.occupancy, item.Path)
	for _, extended := range extensions {
		s.frontier.push(extended, e.priority(extended, s.destination))
	}
	e.logger.Debug("expand", "session", s.id, "cell", last, "priority", item.Priority,
		"added", len(extensions), "frontier", s.frontier.len())
	return StatusRunning, nil
}

func (e *Engine) priority(p Path, destination Cell) float64 {
	return e.cost(p) + e.heuristic(p.Last(), destination)
}

// resolve ends the session before notifying so that the requester may issue
// a new request from inside the callback.
func (e *Engine) resolve(s *session, status Status, p Path) {
	s.status = status
	e.logger.Info("path resolved", "session", s.id, "status", status,
		"length", len(p), "steps", s.steps, "expansions", s.expansions)
	if s.requester != nil {
		s.requester.OnPathResolved(p)
	}
}
