// Package solver types: configuration options, sentinel errors, and the
// result model shared by the engine and its callers.

package solver

import (
	"errors"
	"sync/atomic"
	"time"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation; budget outcomes are Results, not errors)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrNoKnowns indicates an empty knowns list.
	ErrNoKnowns = errors.New("solver: problem must contain at least one known primitive")

	// ErrEmptyID indicates a known with an empty user id.
	ErrEmptyID = errors.New("solver: known primitive has an empty id")

	// ErrDuplicateID indicates two knowns sharing the same user id.
	ErrDuplicateID = errors.New("solver: duplicate known id")

	// ErrNilPrimitive indicates a known whose primitive is nil.
	ErrNilPrimitive = errors.New("solver: known primitive is nil")

	// ErrNilTarget indicates a problem without a target primitive.
	ErrNilTarget = errors.New("solver: target primitive is nil")

	// ErrDegenerateKnowns indicates two knowns collapsing to one canonical
	// identity; the search state would be ill-formed from the start.
	ErrDegenerateKnowns = errors.New("solver: two knowns share a canonical identity")

	// ErrBadMaxDepth indicates MaxDepth ≤ 0.
	ErrBadMaxDepth = errors.New("solver: MaxDepth must be positive")

	// ErrBadMaxStates indicates MaxStates ≤ 0.
	ErrBadMaxStates = errors.New("solver: MaxStates must be positive")

	// ErrBadWallClock indicates a negative wall-clock budget.
	ErrBadWallClock = errors.New("solver: WallClock must be non-negative")

	// ErrBadEncoding indicates a malformed wire-format primitive.
	ErrBadEncoding = errors.New("solver: malformed primitive encoding")

	// ErrBadStep indicates a step that cannot be replayed: unknown input
	// id, duplicate output id, or an operation/operand mismatch.
	ErrBadStep = errors.New("solver: step cannot be replayed")

	// ErrNoSteps indicates a replay request with an empty step list.
	ErrNoSteps = errors.New("solver: no steps to replay")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Result model (§-stable wire shape, see problem.go for the input side)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Status is the top-level outcome of a search.
type Status string

// The two possible statuses.
const (
	StatusSolved   Status = "solved"
	StatusUnsolved Status = "unsolved"
)

// Reason explains an unsolved outcome.
type Reason string

// Unsolved reasons. ReasonProvenUnreachable means the reachable closure was
// exhausted below the depth ceiling; ReasonDepthExhausted means the ceiling
// suppressed at least one expansion before the open set emptied.
const (
	ReasonDepthExhausted       Reason = "depth_exhausted"
	ReasonStateBudgetExhausted Reason = "state_budget_exhausted"
	ReasonTimeBudgetExhausted  Reason = "time_budget_exhausted"
	ReasonProvenUnreachable    Reason = "proven_unreachable"
)

// Operation names as they appear in step reports.
const (
	OpLine         = "Line"
	OpCircle       = "Circle"
	OpIntersection = "Intersection"
)

// StepOutput describes the primitive a step produced. Coords carries the
// raw coordinates for intersection-produced points; an intersection can
// yield two roots and the id alone would not say which one this step took.
type StepOutput struct {
	Type   string    `json:"type"`
	ID     string    `json:"id"`
	Coords []float64 `json:"coords,omitempty"`
}

// Step is one construction operation in a solution.
// Inputs are display ids: user-supplied ids for knowns, generated
// p{n}/l{n}/c{n} ids for intermediates. For OpCircle the first input is the
// center, the second the radius point.
type Step struct {
	Step      int        `json:"step"`
	Operation string     `json:"operation"`
	Inputs    [2]string  `json:"inputs"`
	Output    StepOutput `json:"output"`
}

// Performance carries search-cost counters.
type Performance struct {
	CalculationTimeMS float64 `json:"calculation_time_ms"`
	StatesExplored    int     `json:"states_explored"`
}

// Result is the outcome of Solve. Budget and reachability outcomes are
// reported here (StatusUnsolved + Reason); only invalid input surfaces as a
// Go error.
type Result struct {
	Status      Status      `json:"status"`
	Reason      Reason      `json:"reason,omitempty"`
	Steps       []Step      `json:"steps,omitempty"`
	Performance Performance `json:"performance"`
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Default limits. All limits are hard ceilings.
const (
	// DefaultMaxDepth caps the number of construction steps.
	DefaultMaxDepth = 12

	// DefaultMaxStates caps the total number of states materialized in the
	// node arena, root included.
	DefaultMaxStates = 200_000
)

// Options configures a single Solve call.
//
// MaxDepth  – construction-step ceiling (must be > 0). Default: 12.
// MaxStates – state-arena ceiling (must be > 0). Default: 200 000.
// WallClock – soft time budget; zero means no limit. Checked on every pop
//             and every 1024 generated successors.
// Cancel    – optional cooperative cancellation flag, polled at the same
//             points as the deadline; when set the engine returns
//             Unsolved(time_budget_exhausted).
type Options struct {
	MaxDepth  int
	MaxStates int
	WallClock time.Duration
	Cancel    *atomic.Bool
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithMaxDepth overrides the construction-depth ceiling.
// Must be positive; non-positive values panic with the ErrBadMaxDepth message.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth <= 0 {
			panic(ErrBadMaxDepth.Error())
		}
		o.MaxDepth = depth
	}
}

// WithMaxStates overrides the state-arena ceiling.
// Must be positive; non-positive values panic with the ErrBadMaxStates message.
func WithMaxStates(states int) Option {
	return func(o *Options) {
		if states <= 0 {
			panic(ErrBadMaxStates.Error())
		}
		o.MaxStates = states
	}
}

// WithWallClock sets a soft wall-clock budget for the search.
// Must be non-negative; negative values panic with the ErrBadWallClock message.
// Zero (the default) disables the time budget.
func WithWallClock(budget time.Duration) Option {
	return func(o *Options) {
		if budget < 0 {
			panic(ErrBadWallClock.Error())
		}
		o.WallClock = budget
	}
}

// WithCancel attaches a cooperative cancellation flag. The caller sets the
// flag from another goroutine; the engine observes it at its polling points
// and stops with Unsolved(time_budget_exhausted).
func WithCancel(flag *atomic.Bool) Option {
	return func(o *Options) {
		o.Cancel = flag
	}
}

// DefaultOptions returns an Options struct with production defaults:
// depth 12, 200 000 states, no time budget, no cancellation flag.
func DefaultOptions() Options {
	return Options{
		MaxDepth:  DefaultMaxDepth,
		MaxStates: DefaultMaxStates,
		WallClock: 0,
		Cancel:    nil,
	}
}
