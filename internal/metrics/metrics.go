// Package metrics exposes search progress as Prometheus metrics.
//
// A Collector is fed from the engine's OnEnqueue and OnExpand hooks and
// records one outcome per finished run. Collectors register on a caller
// supplied registry so tests and embedders never touch the global one.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvsearch/search"
)

const (
	metricsNamespace = "lvsearch"
	searchSubsystem  = "search"
)

// Outcome labels for RunsTotal.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeLimit    = "limit"
	OutcomeCanceled = "canceled"
	OutcomeError    = "error"
)

// Collector holds the search metrics.
type Collector struct {
	EnqueuedTotal    *prometheus.CounterVec
	ExpansionsTotal  *prometheus.CounterVec
	RunsTotal        *prometheus.CounterVec
	RunDuration      *prometheus.HistogramVec
	SolutionCost     *prometheus.GaugeVec
	MaxDepth         *prometheus.GaugeVec
	ExpansionsPerRun *prometheus.HistogramVec
}

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		EnqueuedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "enqueued_total",
				Help:      "Nodes pushed onto the frontier",
			},
			[]string{"problem", "algorithm"},
		),
		ExpansionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "expansions_total",
				Help:      "Nodes popped from the frontier and counted",
			},
			[]string{"problem", "algorithm"},
		),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "runs_total",
				Help:      "Finished searches by outcome",
			},
			[]string{"problem", "algorithm", "outcome"},
		),
		RunDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "run_duration_seconds",
				Help:      "Wall time of a search run",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"problem", "algorithm"},
		),
		SolutionCost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "solution_cost",
				Help:      "Path cost of the last solution found",
			},
			[]string{"problem", "algorithm"},
		),
		MaxDepth: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "max_depth",
				Help:      "Deepest node expanded in the current or last run",
			},
			[]string{"problem", "algorithm"},
		),
		ExpansionsPerRun: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "expansions_per_run",
				Help:      "Expansions performed by each finished search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
			},
			[]string{"problem", "algorithm"},
		),
	}

	for _, col := range []prometheus.Collector{
		c.EnqueuedTotal,
		c.ExpansionsTotal,
		c.RunsTotal,
		c.RunDuration,
		c.SolutionCost,
		c.MaxDepth,
		c.ExpansionsPerRun,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Run tracks a single search. Obtain one with Collector.Start.
type Run struct {
	c         *Collector
	problem   string
	algorithm string
	started   time.Time
	maxDepth  int
}

// Start begins tracking a run of algorithm on problem.
func (c *Collector) Start(problem, algorithm string) *Run {
	c.MaxDepth.WithLabelValues(problem, algorithm).Set(0)

	return &Run{c: c, problem: problem, algorithm: algorithm, started: time.Now()}
}

// Options returns the engine hooks that feed this run's counters.
func (r *Run) Options() []search.Option {
	enq := r.c.EnqueuedTotal.WithLabelValues(r.problem, r.algorithm)
	exp := r.c.ExpansionsTotal.WithLabelValues(r.problem, r.algorithm)
	depth := r.c.MaxDepth.WithLabelValues(r.problem, r.algorithm)

	return []search.Option{
		search.WithOnEnqueue(func(search.Event) { enq.Inc() }),
		search.WithOnExpand(func(e search.Event) {
			exp.Inc()
			if e.Depth > r.maxDepth {
				r.maxDepth = e.Depth
				depth.Set(float64(e.Depth))
			}
		}),
	}
}

// Finish records the outcome of the run. cost is ignored unless found.
func (r *Run) Finish(found bool, cost float64, expansions int, err error) {
	outcome := Outcome(found, err)
	r.c.RunsTotal.WithLabelValues(r.problem, r.algorithm, outcome).Inc()
	r.c.RunDuration.WithLabelValues(r.problem, r.algorithm).Observe(time.Since(r.started).Seconds())
	r.c.ExpansionsPerRun.WithLabelValues(r.problem, r.algorithm).Observe(float64(expansions))
	if found {
		r.c.SolutionCost.WithLabelValues(r.problem, r.algorithm).Set(cost)
	}
}

// Outcome classifies a search result for the runs_total outcome label.
func Outcome(found bool, err error) string {
	switch {
	case err == nil && found:
		return OutcomeFound
	case err == nil:
		return OutcomeNotFound
	case errors.Is(err, search.ErrExpansionLimit):
		return OutcomeLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
