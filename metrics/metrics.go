// Package metrics exports Prometheus collectors for gridpath search runs.
// A Collector satisfies engine.Recorder.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridpath/search"
)

// Result label values of gridpath_search_runs_total.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Collector holds the run metrics registered on one Registerer.
type Collector struct {
	// runs counts finished runs by strategy and result
	runs *prometheus.CounterVec

	// operations tracks loop iterations per successful run
	operations *prometheus.HistogramVec

	// pathCells tracks route length in cells per found route
	pathCells *prometheus.HistogramVec

	// duration tracks wall time per run, failed runs included
	duration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
// Returns the registration error if any collector is already registered.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_search_runs_total",
			Help: "Total search runs by strategy and result",
		}, []string{"strategy", "result"}),
		operations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_operations",
			Help:    "Search loop iterations per run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}, []string{"strategy"}),
		pathCells: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_path_cells",
			Help:    "Cells on the reconstructed route of found runs",
			Buckets: prometheus.ExponentialBuckets(2, 2, 10), // 2 to 1024
		}, []string{"strategy"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Search run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"strategy"}),
	}

	for _, col := range []prometheus.Collector{c.runs, c.operations, c.pathCells, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// ObserveRun records one finished run.
func (c *Collector) ObserveRun(strategy string, out search.Outcome, elapsed time.Duration, err error) {
	c.duration.WithLabelValues(strategy).Observe(elapsed.Seconds())

	switch {
	case err != nil:
		c.runs.WithLabelValues(strategy, ResultError).Inc()
		return
	case out.Found:
		c.runs.WithLabelValues(strategy, ResultFound).Inc()
		c.pathCells.WithLabelValues(strategy).Observe(float64(len(out.Path)))
	default:
		c.runs.WithLabelValues(strategy, ResultNotFound).Inc()
	}
	c.operations.WithLabelValues(strategy).Observe(float64(out.Operations))
}
