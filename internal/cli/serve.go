package cli

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridsearch"
	"github.com/pdrpinto/gridsearch/internal/ctxlog"
	"github.com/pdrpinto/gridsearch/internal/tilemap"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a step-by-step search visualizer over HTTP",
		Long: `Serve JSON snapshots of a search on a random map, one step per request.

Endpoints:
  GET /init?w=40&h=24&clusters=8&steps=200&density=0.25&strategy=astar
  GET /next       advance one step and return the snapshot
  GET /snapshot   return the snapshot without stepping`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", opts.Addr)
			if err != nil {
				return err
			}
			return serve(ctx, ln, newVizServer(ctxlog.FromContext(ctx).With("component", "viz")))
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", ":8080", "listen address")

	return cmd
}

func serve(ctx context.Context, ln net.Listener, viz *vizServer) error {
	srv := &http.Server{Handler: viz.Handler(), ReadHeaderTimeout: 5 * time.Second}
	viz.logger.Info("visualizer listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// vizSnapshot is a search snapshot plus the map it runs on.
type vizSnapshot struct {
	gridsearch.Snapshot
	Width  int               `json:"w"`
	Height int               `json:"h"`
	Walls  []gridsearch.Cell `json:"walls"`
	Path   gridsearch.Path   `json:"path,omitempty"`
}

// vizServer owns one engine shared by all HTTP handlers. The engine is not
// safe for concurrent use, so every handler holds mu.
type vizServer struct {
	logger *slog.Logger
	rand   *rand.Rand

	mu       sync.Mutex
	grid     *tilemap.Map
	engine   *gridsearch.Engine
	resolved gridsearch.Path
}

func newVizServer(logger *slog.Logger) *vizServer {
	return &vizServer{logger: logger, rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (v *vizServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/init", v.handleInit)
	mux.HandleFunc("/next", v.handleNext)
	mux.HandleFunc("/snapshot", v.handleSnapshot)
	return mux
}

func (v *vizServer) handleInit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	width, height := 40, 24
	clusters, steps := 8, 200
	density := 0.25
	if n, err := strconv.Atoi(q.Get("w")); err == nil && n > 4 {
		width = n
	}
	if n, err := strconv.Atoi(q.Get("h")); err == nil && n > 4 {
		height = n
	}
	if n, err := strconv.Atoi(q.Get("clusters")); err == nil && n > 0 {
		clusters = n
	}
	if n, err := strconv.Atoi(q.Get("steps")); err == nil && n > 0 {
		steps = n
	}
	if f, err := strconv.ParseFloat(q.Get("density"), 64); err == nil && f >= 0 && f <= 1 {
		density = f
	}
	strategy := gridsearch.AStar
	if name := q.Get("strategy"); name != "" {
		s, err := gridsearch.ParseStrategy(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		strategy = s
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	var source, destination gridsearch.Cell
	for source == destination {
		source = gridsearch.Cell{X: v.rand.Intn(width), Y: v.rand.Intn(height)}
		destination = gridsearch.Cell{X: v.rand.Intn(width), Y: v.rand.Intn(height)}
	}
	v.grid = tilemap.Random(v.rand, width, height, clusters, steps, density, source, destination)

	// A fresh engine per map: the occupancy oracle is fixed at construction.
	v.engine = gridsearch.New(v.grid, gridsearch.WithStrategy(strategy), gridsearch.WithLogger(v.logger))
	v.resolved = nil
	v.engine.RequestPath(gridsearch.RequesterFunc(func(p gridsearch.Path) { v.resolved = p }), source, destination)

	writeJSON(w, map[string]any{"ok": true, "w": width, "h": height, "strategy": strategy.String()})
}

func (v *vizServer) handleNext(w http.ResponseWriter, r *http.Request) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.engine == nil {
		http.Error(w, "engine not initialized", http.StatusBadRequest)
		return
	}
	if v.engine.IsActive() {
		if _, err := v.engine.Step(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	writeJSON(w, v.snapshot())
}

func (v *vizServer) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.engine == nil {
		http.Error(w, "engine not initialized", http.StatusBadRequest)
		return
	}
	writeJSON(w, v.snapshot())
}

func (v *vizServer) snapshot() vizSnapshot {
	return vizSnapshot{
		Snapshot: v.engine.Snapshot(),
		Width:    v.grid.Width,
		Height:   v.grid.Height,
		Walls:    v.grid.Walls(),
		Path:     v.resolved.Clone(),
	}
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
