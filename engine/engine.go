package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Engine owns one grid and runs searches over it.
type Engine struct {
	grid    *grid.Grid
	options Options
}

// New builds an Engine around a fresh n×n grid.
// Returns grid.ErrInvalidDimension if n <= 0.
func New(n int, opts ...Option) (*Engine, error) {
	g, err := grid.New(n)
	if err != nil {
		return nil, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{grid: g, options: cfg}, nil
}

// Grid exposes the owned grid for rendering. Callers must not mutate it while
// a run is in progress.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// ConfigureGrid resets the grid when n equals the current dimension and
// allocates a new n×n grid otherwise.
// Returns grid.ErrInvalidDimension if n <= 0; the current grid is then kept.
func (e *Engine) ConfigureGrid(n int) error {
	if n == e.grid.Dimension() {
		e.grid.Reset()
		return nil
	}
	g, err := grid.New(n)
	if err != nil {
		return err
	}
	e.grid = g

	return nil
}

// SetCellKind applies a caller edit; see grid.Grid.SetKind for the rules.
func (e *Engine) SetCellKind(row, col int, kind grid.Kind) error {
	return e.grid.SetKind(row, col, kind)
}

// Reset clears every cell, parent link, cost and both endpoints.
func (e *Engine) Reset() { e.grid.Reset() }

// Begin prepares a run of strategy s for incremental driving. The returned
// Stepper is not logged, traced or recorded.
// Returns ErrUnknownStrategy or grid.ErrMissingEndpoints.
func (e *Engine) Begin(s Strategy) (search.Stepper, error) {
	var (
		run search.Stepper
		err error
	)
	switch s {
	case BFS:
		run, err = bfs.New(e.grid)
	case AStar:
		run, err = astar.New(e.grid)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// RunBFS runs breadth-first search to completion.
func (e *Engine) RunBFS(ctx context.Context, opts ...search.Option) (search.Outcome, error) {
	return e.Run(ctx, BFS, opts...)
}

// RunAStar runs A* search to completion.
func (e *Engine) RunAStar(ctx context.Context, opts ...search.Option) (search.Outcome, error) {
	return e.Run(ctx, AStar, opts...)
}

// Run drives strategy s to completion, calling the OnStep hook once per
// iteration. NotFound is reported through Outcome.Found, not as an error.
//
// ctx only parents the run's span; a started run is not interrupted by it.
// Returns ErrUnknownStrategy, grid.ErrMissingEndpoints or
// search.ErrNoParentChain.
func (e *Engine) Run(ctx context.Context, s Strategy, opts ...search.Option) (search.Outcome, error) {
	startTime := time.Now()
	logger := e.options.Logger
	n := e.grid.Dimension()

	_, span := e.options.Tracer.Start(ctx, "engine.Run",
		trace.WithAttributes(
			attribute.String("strategy", s.String()),
			attribute.Int("dimension", n),
		),
	)
	defer span.End()

	logger.Info("search_start",
		slog.String("strategy", s.String()),
		slog.Int("dimension", n),
	)

	stepper, err := e.Begin(s)
	if err != nil {
		return search.Outcome{}, e.fail(ctx, span, s, startTime, err)
	}
	out, err := search.Drive(stepper, opts...)
	if err != nil {
		return search.Outcome{}, e.fail(ctx, span, s, startTime, err)
	}

	elapsed := time.Since(startTime)
	e.options.Recorder.ObserveRun(s.String(), out, elapsed, nil)

	span.SetAttributes(
		attribute.Bool("found", out.Found),
		attribute.Int("operations", out.Operations),
		attribute.Int("path_cells", len(out.Path)),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("search_complete",
		slog.String("strategy", s.String()),
		slog.Bool("found", out.Found),
		slog.Int("operations", out.Operations),
		slog.Int("path_cells", len(out.Path)),
		slog.Float64("cost", out.Cost),
		slog.Duration("duration", elapsed),
	)

	return out, nil
}

// fail records a failed run on every channel and returns err unchanged.
// Invariant violations log at error level; caller mistakes at warn.
func (e *Engine) fail(ctx context.Context, span trace.Span, s Strategy, startTime time.Time, err error) error {
	elapsed := time.Since(startTime)
	e.options.Recorder.ObserveRun(s.String(), search.Outcome{}, elapsed, err)

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	level := slog.LevelWarn
	if errors.Is(err, search.ErrNoParentChain) {
		level = slog.LevelError
	}
	e.options.Logger.Log(ctx, level, "search_failed",
		slog.String("strategy", s.String()),
		slog.String("error", err.Error()),
		slog.Duration("duration", elapsed),
	)

	return err
}
