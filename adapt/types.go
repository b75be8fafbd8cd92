// Package adapt defines configuration options, result types and sentinel
// errors for the adaptive vector quadrature engine.
//
// The engine integrates a batched integrand f(x, params) → []float64 over
// one interval, treating every entry of the result as an independent "lane"
// that shares the single adaptive subdivision schedule. Tolerances, budgets
// and the rule pair are configured through functional options.
//
// Errors (sentinel):
//
//	– ErrNilIntegrand if the integrand is nil.
//	– ErrBadBounds    if either bound is NaN.
//	– ErrBadTolerance if a tolerance is negative, NaN, or both are zero.
//	– ErrBadBudget    if a budget cannot fit even one rule evaluation.
//
// Integrand failures surface as the rule package sentinels
// (rule.ErrIntegrand, rule.ErrNonFinite, rule.ErrShapeMismatch), wrapped
// with interval context.
package adapt

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/quadra/rule"
)

// Sentinel errors returned by Integrate before any refinement work starts.
var (
	// ErrNilIntegrand indicates that a nil integrand function was passed.
	ErrNilIntegrand = errors.New("adapt: integrand is nil")

	// ErrBadBounds indicates a NaN integration bound. Infinities are legal
	// (they select a domain transform); NaN is meaningless.
	ErrBadBounds = errors.New("adapt: integration bound is NaN")

	// ErrBadTolerance indicates an unusable tolerance pair: negative, NaN,
	// or AbsTol == RelTol == 0, which no finite refinement can satisfy.
	ErrBadTolerance = errors.New("adapt: tolerances must be non-negative and not both zero")

	// ErrBadBudget indicates that MaxEvaluations is smaller than a single
	// rule evaluation, so not even the seed interval could be estimated
	// without overrunning the budget.
	ErrBadBudget = errors.New("adapt: evaluation budget below one rule evaluation")
)

// zeroFloor is the absolute error floor applied to a lane's tolerance when
// AbsTol == 0. A lane whose total estimate is (near) zero can never satisfy
// a purely relative criterion from a nonzero error estimate, so the policy
// falls back to this floor — a small multiple of machine epsilon (2⁻⁵⁰),
// not an incidental default. See laneTolerance.
const zeroFloor = 0x1p-50

// resyncEvery is the number of subdivisions between full resummations of
// the running totals. The accumulator maintains totals as a running sum
// (O(lanes) per step instead of O(intervals·lanes)); periodic resummation
// bounds the floating-point drift that the running form accumulates.
const resyncEvery = 256

// Status reports how an integration run ended.
//
// Converged – every lane's error is within its tolerance band.
// Exhausted – a budget (evaluations, intervals or steps) was hit first;
// the Result still carries the best-so-far estimate and its error bound,
// and the caller decides whether that is acceptable.
type Status int

const (
	// Converged means the global stopping criterion was satisfied.
	Converged Status = iota

	// Exhausted means a configured limit was reached before convergence.
	// This is a soft outcome, never an error: the returned estimate and
	// error bound are valid, just not as tight as requested.
	Exhausted
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Integrate call.
type Result struct {
	// Estimate holds the accumulated integral per lane.
	Estimate []float64

	// Error holds the accumulated error bound per lane.
	Error []float64

	// Status is Converged or Exhausted.
	Status Status

	// Evaluations is the total number of integrand calls spent.
	// It never exceeds MaxEvaluations.
	Evaluations int

	// Intervals is the number of active subintervals at termination.
	Intervals int

	// Steps is the number of subdivision steps performed.
	Steps int
}

// Options configures Integrate.
//
// AbsTol / RelTol   – lane i is satisfied when
//
//	error[i] ≤ max(AbsTol, RelTol·|estimate[i]|);
//	the run converges when every lane is satisfied.
//
// MaxEvaluations    – hard cap on integrand calls (always respected).
// MaxIntervals      – cap on the active subinterval count.
// MaxSteps          – cap on subdivision steps; 0 means no step cap.
// Rule              – which embedded Gauss–Kronrod pair to use.
// Params            – lane parameter slice passed to every integrand call;
//
//	also declares the lane shape. If nil, the shape is
//	inferred once from the first integrand call.
//
// Logger            – optional slog logger for refinement tracing (Debug
//
//	level); nil means silent.
type Options struct {
	AbsTol         float64
	RelTol         float64
	MaxEvaluations int
	MaxIntervals   int
	MaxSteps       int
	Rule           rule.Kind
	Params         []float64
	Logger         *slog.Logger
}

// Option is a functional option for configuring Integrate.
type Option func(*Options)

// WithAbsTol sets the absolute tolerance. Must be non-negative.
func WithAbsTol(tol float64) Option {
	return func(o *Options) {
		o.AbsTol = tol
	}
}

// WithRelTol sets the relative tolerance. Must be non-negative.
func WithRelTol(tol float64) Option {
	return func(o *Options) {
		o.RelTol = tol
	}
}

// WithMaxEvaluations caps the total number of integrand calls.
// Must be positive; non-positive values panic early, in the option
// constructor, to surface the misconfiguration at the call site.
func WithMaxEvaluations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadBudget.Error())
		}
		o.MaxEvaluations = n
	}
}

// WithMaxIntervals caps the number of active subintervals. Must be positive.
func WithMaxIntervals(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadBudget.Error())
		}
		o.MaxIntervals = n
	}
}

// WithMaxSteps caps the number of subdivision steps. Must be positive;
// use DefaultOptions' zero value for "no step cap".
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadBudget.Error())
		}
		o.MaxSteps = n
	}
}

// WithRule selects the embedded rule pair.
func WithRule(k rule.Kind) Option {
	return func(o *Options) {
		o.Rule = k
	}
}

// WithParams sets the lane parameter slice handed to every integrand call
// and fixes the lane shape to len(params). The engine never mutates it.
// Callers with several parameter arrays broadcast them into one conformable
// slice themselves; the engine performs no broadcasting.
func WithParams(params []float64) Option {
	return func(o *Options) {
		o.Params = params
	}
}

// WithLogger attaches a slog logger; the refinement loop emits one Debug
// record per subdivision (step, worst priority, running error norm,
// evaluations used) and one Info record at termination. Hot per-node loops
// never log.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied. Use it as a starting point for manual construction in tests.
//
// Defaults:
//   - AbsTol:         1e-8
//   - RelTol:         1e-8
//   - MaxEvaluations: 10000
//   - MaxIntervals:   2000
//   - MaxSteps:       0 (no step cap; evaluation/interval budgets govern)
//   - Rule:           rule.GaussKronrod15
//   - Params:         nil (lane shape inferred from the first call)
//   - Logger:         nil (silent)
func DefaultOptions() Options {
	return Options{
		AbsTol:         1e-8,
		RelTol:         1e-8,
		MaxEvaluations: 10000,
		MaxIntervals:   2000,
		MaxSteps:       0,
		Rule:           rule.GaussKronrod15,
	}
}
