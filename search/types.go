// Package search defines sentinel errors, the expansion Event, and the
// functional options accepted by every search entry point.
//
// Defaults reproduce the plain best-first algorithm exactly: no cancellation,
// no expansion cap, no stale-entry skipping, no cost validation, a discarding
// logger and no-op hooks. Each Option only adds behavior on top of that.
//
// Options:
//
//	– WithContext:        cancellation checked once per expansion.
//	– WithMaxExpansions:  cap on the number of expansions (0 = unlimited).
//	– WithSkipStale:      drop superseded frontier entries at pop time.
//	– WithCostValidation: reject negative action costs with ErrNegativeCost.
//	– WithLogger:         Debug records at start and finish.
//	– WithOnEnqueue:      hook called on every frontier insertion.
//	– WithOnExpand:       hook called on every counted expansion.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsearch/internal/logging"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilProblem indicates that a nil Problem was passed to a search.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilEvaluator indicates that a nil Evaluator was passed to BestFirst.
	ErrNilEvaluator = errors.New("search: evaluator is nil")

	// ErrNilHeuristic indicates that a heuristic-driven search received a nil Heuristic.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions is exhausted while
	// the frontier still holds unexpanded nodes.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrNegativeCost is returned under WithCostValidation when an action
	// reports a cost below zero.
	ErrNegativeCost = errors.New("search: negative action cost")

	// ErrBadWeight indicates a weighted-A* weight below 1.
	ErrBadWeight = errors.New("search: heuristic weight must be >= 1")
)

// Event describes a single frontier insertion or expansion.
// State holds the node's state as an untyped value so that observers
// (loggers, metrics) need not be generic.
type Event struct {
	Seq        int     // insertion sequence of the frontier entry
	Expansions int     // expansions performed so far, including this one for OnExpand
	Depth      int     // number of actions from the root
	PathCost   float64 // accumulated path cost
	Priority   float64 // evaluator output used to order the frontier
	State      any
}

// Option configures a search via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked before each pop.
	Ctx context.Context

	// MaxExpansions, if > 0, stops the search with ErrExpansionLimit once
	// that many expansions ran without reaching a goal.
	MaxExpansions int

	// SkipStale drops a popped node without counting it when the explored
	// map already records a strictly cheaper node for the same state.
	SkipStale bool

	// ValidateCosts rejects negative action costs with ErrNegativeCost.
	ValidateCosts bool

	// Logger receives Debug records when a search starts and finishes.
	Logger *slog.Logger

	// OnEnqueue is called after a node is inserted into the frontier.
	OnEnqueue func(Event)

	// OnExpand is called after a popped node is counted as an expansion,
	// before its goal test.
	OnExpand func(Event)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no expansion limit (MaxExpansions == 0)
//   - stale entries are expanded, costs are not validated
//   - a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		SkipStale:     false,
		ValidateCosts: false,
		Logger:        logging.NewNop(),
		OnEnqueue:     func(Event) {},
		OnExpand:      func(Event) {},
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0:  stop after n expansions with ErrExpansionLimit
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithSkipStale enables pop-time skipping of superseded frontier entries.
func WithSkipStale() Option {
	return func(o *Options) {
		o.SkipStale = true
	}
}

// WithCostValidation makes the engine reject negative action costs.
func WithCostValidation() Option {
	return func(o *Options) {
		o.ValidateCosts = true
	}
}

// WithLogger routes the engine's Debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEnqueue registers a callback to run on every frontier insertion.
// Repeated registrations run in the order given.
func WithOnEnqueue(fn func(Event)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnEnqueue
		o.OnEnqueue = func(e Event) {
			prev(e)
			fn(e)
		}
	}
}

// WithOnExpand registers a callback to run on every counted expansion.
// Repeated registrations run in the order given.
func WithOnExpand(fn func(Event)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnExpand
		o.OnExpand = func(e Event) {
			prev(e)
			fn(e)
		}
	}
}
