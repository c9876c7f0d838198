package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/search"
)

// ErrUnknownStrategy is returned for a strategy name other than bfs or astar.
var ErrUnknownStrategy = errors.New("engine: unknown strategy")

// Strategy names a search algorithm.
type Strategy string

const (
	// BFS is breadth-first search (fewest cells).
	BFS Strategy = bfs.Name
	// AStar is cost-guided A* search.
	AStar Strategy = astar.Name
)

// Strategies lists every supported strategy in a stable order.
var Strategies = []Strategy{BFS, AStar}

// ParseStrategy maps a case-insensitive name ("bfs", "astar", "a*") to a
// Strategy. Returns ErrUnknownStrategy otherwise.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(BFS):
		return BFS, nil
	case string(AStar), "a*", "a-star":
		return AStar, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// String returns the strategy name.
func (s Strategy) String() string { return string(s) }

// Recorder observes finished runs. err is non-nil when the run failed before
// or during the search; out is then the zero Outcome.
type Recorder interface {
	ObserveRun(strategy string, out search.Outcome, elapsed time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRun(string, search.Outcome, time.Duration, error) {}

// tracerName is the instrumentation scope of engine spans.
const tracerName = "github.com/katalvlaran/gridpath/engine"

// Options configures an Engine.
type Options struct {
	Logger   *slog.Logger // Run logs; defaults to slog.Default()
	Recorder Recorder     // Run observer; defaults to a no-op
	Tracer   trace.Tracer // Span source; defaults to the global otel provider
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithLogger sets the run logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder sets the run observer. A nil recorder is ignored.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// WithTracer sets the span source. A nil tracer is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// DefaultOptions returns Options using slog.Default, a no-op Recorder and
// otel.Tracer(tracerName).
func DefaultOptions() Options {
	return Options{
		Logger:   slog.Default(),
		Recorder: nopRecorder{},
		Tracer:   otel.Tracer(tracerName),
	}
}
