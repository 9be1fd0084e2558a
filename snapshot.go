package gridsearch

import (
	"cmp"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// FrontierEntry is a pending path and the priority it was queued with.
type FrontierEntry struct {
	Path     Path    `json:"path"`
	Priority float64 `json:"priority"`
}

// Snapshot is a copy of the engine's search state. Nothing in it aliases the
// engine's own structures. After a request resolves the snapshot keeps
// describing it, with Active false, until the next RequestPath or Cancel.
type Snapshot struct {
	SessionID   uuid.UUID       `json:"session_id"`
	Active      bool            `json:"active"`
	Status      Status          `json:"status"`
	Source      Cell            `json:"source"`
	Destination Cell            `json:"destination"`
	Current     Path            `json:"current,omitempty"`
	Frontier    []FrontierEntry `json:"frontier,omitempty"`
	Explored    []Cell          `json:"explored,omitempty"`
	Steps       int             `json:"steps"`
	Expansions  int             `json:"expansions"`
}

// Snapshot returns the state of the current or most recently resolved
// request. The zero Snapshot is returned when there is none.
func (e *Engine) Snapshot() Snapshot {
	s := e.session
	if s == nil {
		return Snapshot{Status: StatusIdle}
	}
	return Snapshot{
		SessionID:   s.id,
		Active:      !s.done(),
		Status:      s.status,
		Source:      s.source,
		Destination: s.destination,
		Current:     s.current.Clone(),
		Frontier:    copyFrontier(s.frontier.queue),
		Explored:    copyExplored(s.explored),
		Steps:       s.steps,
		Expansions:  s.expansions,
	}
}

// copyFrontier lists the queue in the order it would pop.
func copyFrontier(queue frontierQueue) []FrontierEntry {
	if len(queue) == 0 {
		return nil
	}
	items := slices.Clone(queue)
	slices.SortFunc(items, func(a, b *frontierItem) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Seq, b.Seq)
	})
	entries := make([]FrontierEntry, len(items))
	for i, item := range items {
		entries[i] = FrontierEntry{Path: item.Path.Clone(), Priority: item.Priority}
	}
	return entries
}

func copyExplored(explored map[Cell]struct{}) []Cell {
	if len(explored) == 0 {
		return nil
	}
	cells := make([]Cell, 0, len(explored))
	for c := range explored {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, func(a, b Cell) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	return cells
}
