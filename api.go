package gridsearch

import (
	"context"
	"log/slog"
)

// Requester receives the outcome of a path request. OnPathResolved is called
// exactly once per request that is not cancelled or superseded, from inside
// Engine.Step. A nil path means no path exists.
type Requester interface {
	OnPathResolved(p Path)
}

// RequesterFunc adapts a plain function to Requester.
type RequesterFunc func(p Path)

func (f RequesterFunc) OnPathResolved(p Path) { f(p) }

// Result contains the outcome of a Search.
type Result struct {
	Path          Path
	TotalCost     float64
	ExpandedNodes int
	Steps         int
	Found         bool
}

// Options defines parameters for an Engine.
type Options struct {
	Strategy         Strategy
	Cost             CostFunc
	Heuristic        HeuristicFunc
	CheckDestination bool
	Logger           *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithStrategy selects one of the preset cost and heuristic pairs.
func WithStrategy(strategy Strategy) Option {
	return func(options *Options) { options.Strategy = strategy }
}

// WithCost overrides the path cost function of the selected strategy.
func WithCost(cost CostFunc) Option {
	return func(options *Options) { options.Cost = cost }
}

// WithHeuristic overrides the heuristic of the selected strategy.
func WithHeuristic(heuristic HeuristicFunc) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// WithDestinationCheck controls whether an occupied destination fails the
// request on the first step without expanding anything. Enabled by default.
func WithDestinationCheck(enabled bool) Option {
	return func(options *Options) { options.CheckDestination = enabled }
}

// WithLogger sets the logger used for request lifecycle and step tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func buildOptions(options []Option) Options {
	opts := Options{Strategy: AStar, CheckDestination: true}
	for _, o := range options {
		o(&opts)
	}
	cost, heuristic := opts.Strategy.Funcs()
	if opts.Cost == nil {
		opts.Cost = cost
	}
	if opts.Heuristic == nil {
		opts.Heuristic = heuristic
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}

// Search runs a single request on a fresh Engine until it resolves.
// Finding no path is not an error: Result.Found is false. A cancelled context
// abandons the search and returns the context error.
func Search(
	ctx context.Context,
	occupancy Occupancy,
	source Cell,
	destination Cell,
	options ...Option,
) (Result, error) {
	engine := New(occupancy, options...)

	var resolved Path
	engine.RequestPath(RequesterFunc(func(p Path) { resolved = p }), source, destination)
	if err := Drive(ctx, engine, 0); err != nil {
		return Result{}, err
	}

	snap := engine.Snapshot()
	return Result{
		Path:          resolved,
		TotalCost:     PathLength(resolved),
		ExpandedNodes: snap.Expansions,
		Steps:         snap.Steps,
		Found:         resolved != nil,
	}, nil
}
