package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridsearch"
	"github.com/pdrpinto/gridsearch/internal/config"
	"github.com/pdrpinto/gridsearch/internal/ctxlog"
	"github.com/pdrpinto/gridsearch/internal/tilemap"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Strategy string
	Tick     time.Duration
}

// runReport is the JSON form of a finished run.
type runReport struct {
	Status      gridsearch.Status `json:"status"`
	Source      gridsearch.Cell   `json:"source"`
	Destination gridsearch.Cell   `json:"destination"`
	Path        gridsearch.Path   `json:"path"`
	Cost        float64           `json:"cost"`
	Steps       int               `json:"steps"`
	Expansions  int               `json:"expansions"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <config.yaml>",
		Short: "Run a configured search tick by tick",
		Long: `Load a run configuration and its map, then step the search once per tick
until it finds the destination or runs out of paths. The map is printed with
the explored cells, the frontier and the resulting path.

Example:
  gridsearch run ./examples/demo.yaml
  gridsearch run --strategy bfs --tick 0 ./examples/demo.yaml -v`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("strategy") {
				cfg.Strategy = opts.Strategy
			}
			if cmd.Flags().Changed("tick") {
				cfg.Tick = opts.Tick
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runSearch(cmd, opts, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.Strategy, "strategy", "", "override the configured strategy (astar|bfs|ucs|greedy)")
	cmd.Flags().DurationVar(&opts.Tick, "tick", 0, "override the configured tick interval")

	return cmd
}

func runSearch(cmd *cobra.Command, opts *RunOptions, cfg *config.Config) error {
	logger := ctxlog.FromContext(cmd.Context())

	if cfg.Map == "" {
		return errors.New("config: no map given")
	}
	m, err := tilemap.Load(cfg.Map)
	if err != nil {
		return err
	}
	source, destination, err := endpoints(cfg, m)
	if err != nil {
		return err
	}

	engineOpts, err := cfg.EngineOptions()
	if err != nil {
		return err
	}
	engine := gridsearch.New(m, append(engineOpts, gridsearch.WithLogger(logger))...)

	var resolved gridsearch.Path
	engine.RequestPath(gridsearch.RequesterFunc(func(p gridsearch.Path) { resolved = p }), source, destination)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("search started", "map", cfg.Map, "strategy", cfg.Strategy, "tick", cfg.Tick)
	err = gridsearch.Drive(ctx, engine, cfg.Tick, gridsearch.WithTickObserver(func(s gridsearch.Snapshot) {
		logger.Debug("tick", "step", s.Steps, "frontier", len(s.Frontier), "explored", len(s.Explored))
	}))
	if err != nil {
		return fmt.Errorf("search interrupted: %w", err)
	}

	snap := engine.Snapshot()
	report := runReport{
		Status:      snap.Status,
		Source:      source,
		Destination: destination,
		Path:        resolved,
		Cost:        gridsearch.PathLength(resolved),
		Steps:       snap.Steps,
		Expansions:  snap.Expansions,
	}
	if opts.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return writeTextReport(cmd.OutOrStdout(), m, snap, report)
}

// endpoints prefers the configured cells and falls back to the map markers.
func endpoints(cfg *config.Config, m *tilemap.Map) (gridsearch.Cell, gridsearch.Cell, error) {
	var source, destination gridsearch.Cell
	switch {
	case cfg.Source != nil:
		source = *cfg.Source
	case m.HasSource:
		source = m.Source
	default:
		return source, destination, errors.New("no source: set it in the config or mark S on the map")
	}
	switch {
	case cfg.Destination != nil:
		destination = *cfg.Destination
	case m.HasDestination:
		destination = m.Destination
	default:
		return source, destination, errors.New("no destination: set it in the config or mark D on the map")
	}
	return source, destination, nil
}

func writeTextReport(w io.Writer, m *tilemap.Map, snap gridsearch.Snapshot, report runReport) error {
	if err := m.Render(w, snap); err != nil {
		return err
	}
	if report.Path == nil {
		_, err := fmt.Fprintf(w, "no path from %v to %v (%d steps, %d expansions)\n",
			report.Source, report.Destination, report.Steps, report.Expansions)
		return err
	}
	_, err := fmt.Fprintf(w, "path of %d cells, cost %.3f (%d steps, %d expansions)\n",
		len(report.Path), report.Cost, report.Steps, report.Expansions)
	return err
}
