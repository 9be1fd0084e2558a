// Package gridsearch provides an incremental, cancellable pathfinder for
// 8-connected tile grids with diagonal-corner blocking.
//
// It exposes three entry points:
//
//   - Engine: start a request with RequestPath and advance it one expansion
//     per tick with Step. A new request silently replaces the active one.
//   - Drive: step an Engine from a time.Ticker until it terminates or the
//     context is cancelled.
//   - Search: run a single request to completion and get a Result.
//
// The cost and heuristic functions are chosen at construction time. The four
// Strategy presets cover breadth-first, uniform-cost, greedy best-first and
// A* search; Snapshot exposes copies of the frontier and explored set for
// visualizers between ticks.
package gridsearch
