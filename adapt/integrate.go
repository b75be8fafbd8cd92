package adapt

import (
	"container/heap"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/quadra/rule"
)

// Integrate computes ∫ f(x, params) dx over [low, high] for every lane of
// the batched integrand f, sharing one adaptive subdivision schedule across
// all lanes. It accepts functional options to customize tolerances, budgets,
// the rule pair, the lane parameters, and tracing.
//
// Returns:
//
//   - Result with per-lane Estimate and Error, the termination Status
//     (Converged or Exhausted), and the evaluation/interval/step counts.
//   - err for fatal conditions only: invalid arguments, or an integrand
//     failure (rule.ErrIntegrand, rule.ErrNonFinite, rule.ErrShapeMismatch),
//     in which case no partial result is returned.
//
// Domain handling:
//
//   - low > high is normalized by swapping the bounds and negating the
//     final estimate (documented behavior, not an error).
//   - low == high is the zero integral: zero estimate and error, Converged,
//     no integrand calls. With no Params the lane shape is unknown in this
//     case and the returned slices have length zero.
//   - Infinite bounds select a rational substitution onto a finite domain;
//     the composition absorbs the Jacobian (see transformDomain).
//
// Budgets: Evaluations ≤ MaxEvaluations always holds — the loop stops
// before a subdivision whose two rule calls would overrun the budget and
// reports Exhausted with the best-so-far totals.
//
// Complexity: O(S · (nodes·lanes + log S)) time for S subdivisions,
// O(S · lanes) space.
func Integrate(f rule.Integrand, low, high float64, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the integrand and bounds.
	if f == nil {
		return Result{}, ErrNilIntegrand
	}
	if math.IsNaN(low) || math.IsNaN(high) {
		return Result{}, fmt.Errorf("%w: low=%g high=%g", ErrBadBounds, low, high)
	}

	// 3) Validate tolerances: non-negative, finite, not both zero.
	if math.IsNaN(cfg.AbsTol) || math.IsNaN(cfg.RelTol) ||
		cfg.AbsTol < 0 || cfg.RelTol < 0 || (cfg.AbsTol == 0 && cfg.RelTol == 0) {
		return Result{}, fmt.Errorf("%w: abs=%g rel=%g", ErrBadTolerance, cfg.AbsTol, cfg.RelTol)
	}

	// 4) The budget must fit at least the seed evaluation.
	pair := rule.ForKind(cfg.Rule)
	if cfg.MaxEvaluations < len(pair.Nodes) {
		return Result{}, fmt.Errorf("%w: max=%d, one %s evaluation costs %d",
			ErrBadBudget, cfg.MaxEvaluations, pair.Kind, len(pair.Nodes))
	}

	// 5) Normalize orientation: integrate over [min, max], negate at return.
	sign := 1.0
	if low > high {
		low, high = high, low
		sign = -1
	}

	// 6) Zero-width domain (also covers equal infinite bounds): the
	//    integral is zero, no evaluations are spent.
	if low == high {
		n := len(cfg.Params)

		return Result{
			Estimate: make([]float64, n),
			Error:    make([]float64, n),
			Status:   Converged,
		}, nil
	}

	// 7) Map infinite domains onto a finite interval.
	g, tLow, tHigh := transformDomain(f, low, high)

	// 8) Seed the runner with one interval spanning the whole domain and
	//    run the refinement loop.
	r := &runner{cfg: cfg, pair: pair, f: g}
	if err := r.seed(tLow, tHigh); err != nil {
		return Result{}, err
	}
	res, err := r.process()
	if err != nil {
		return Result{}, err
	}

	// 9) Undo the orientation swap on the estimate (error bounds are
	//    magnitudes and stay as-is).
	if sign < 0 {
		floats.Scale(-1, res.Estimate)
	}

	return res, nil
}

// runner holds the mutable state for a single Integrate execution. It is
// owned exclusively by that call; nothing is shared or locked.
type runner struct {
	cfg  Options
	pair rule.Pair
	f    rule.Integrand

	pool  intervalHeap // active intervals, max-heap by priority
	accum *accumulator // running per-lane totals over the pool

	lanes int // memoized lane shape, fixed after the seed evaluation
	evals int // integrand calls spent so far
	steps int // subdivisions performed so far
}

// seed evaluates the rule pair once over the full (transformed) domain,
// memoizes the lane shape, and initializes the pool and the accumulator.
func (r *runner) seed(low, high float64) error {
	seg, err := r.pair.Evaluate(low, high, r.cfg.Params, r.f)
	if err != nil {
		return err
	}
	r.evals += seg.Calls
	r.lanes = len(seg.Estimate)

	iv := newInterval(low, high, seg)
	r.pool = make(intervalHeap, 0, 64)
	heap.Init(&r.pool)
	heap.Push(&r.pool, iv)

	r.accum = newAccumulator(r.lanes)
	r.accum.add(iv)

	if r.cfg.Logger != nil {
		r.cfg.Logger.Debug("quadra: seeded",
			"low", low, "high", high, "lanes", r.lanes, "evals", r.evals)
	}

	return nil
}

// process is the refinement loop: pop the worst interval, bisect it,
// evaluate both children, and swap the parent's contribution for the
// children's — until the convergence policy is satisfied or a budget runs
// out.
func (r *runner) process() (Result, error) {
	stepCost := 2 * len(r.pair.Nodes)
	var worst, left, right *interval
	var mid float64
	for {
		// 1) Convergence check comes first: the seed alone may already be
		//    inside tolerance (exactness on low-degree polynomials).
		if converged(r.accum.totalEst, r.accum.totalErr, r.cfg.AbsTol, r.cfg.RelTol) {
			return r.result(Converged), nil
		}

		// 2) Budget checks, before spending anything.
		if r.evals+stepCost > r.cfg.MaxEvaluations ||
			len(r.pool) >= r.cfg.MaxIntervals ||
			(r.cfg.MaxSteps > 0 && r.steps >= r.cfg.MaxSteps) {
			return r.result(Exhausted), nil
		}

		// 3) Pop the interval with the largest max-lane error.
		worst = heap.Pop(&r.pool).(*interval)

		// 4) A zero priority here means every remaining interval is
		//    unrefinable (demoted below): no further progress is possible.
		if worst.priority == 0 {
			heap.Push(&r.pool, worst)

			return r.result(Exhausted), nil
		}

		// 5) Bisect at the midpoint. If the interval is already at ulp
		//    resolution the midpoint collapses onto a bound; demote the
		//    interval so it is never popped again (its error still counts
		//    toward the totals) and move on to the next-worst one.
		mid = worst.low + 0.5*(worst.high-worst.low)
		if mid <= worst.low || mid >= worst.high {
			worst.priority = 0
			heap.Push(&r.pool, worst)

			continue
		}

		// 6) Evaluate both children.
		lseg, err := r.evaluate(worst.low, mid)
		if err != nil {
			return Result{}, err
		}
		rseg, err := r.evaluate(mid, worst.high)
		if err != nil {
			return Result{}, err
		}
		left = newInterval(worst.low, mid, lseg)
		right = newInterval(mid, worst.high, rseg)

		// 7) Swap the parent's contribution for the children's and insert
		//    the children. Net interval count +1 per step.
		r.accum.remove(worst)
		r.accum.add(left)
		r.accum.add(right)
		heap.Push(&r.pool, left)
		heap.Push(&r.pool, right)
		r.accum.maybeResync(r.pool)
		r.steps++

		if r.cfg.Logger != nil {
			r.cfg.Logger.Debug("quadra: refined",
				"step", r.steps,
				"low", worst.low, "high", worst.high,
				"worst", worst.priority,
				"nextWorst", r.pool.peekWorst(),
				"errNorm", floats.Norm(r.accum.totalErr, math.Inf(1)),
				"evals", r.evals,
				"intervals", len(r.pool))
		}
	}
}

// evaluate runs the rule pair over one child interval, charges the call
// count, and enforces the memoized lane shape across intervals (a change
// mid-run is a contract violation by the integrand).
func (r *runner) evaluate(low, high float64) (rule.Segment, error) {
	seg, err := r.pair.Evaluate(low, high, r.cfg.Params, r.f)
	if err != nil {
		return rule.Segment{}, err
	}
	if len(seg.Estimate) != r.lanes {
		return rule.Segment{}, fmt.Errorf("%w: got %d lanes, want %d (interval [%g, %g])",
			rule.ErrShapeMismatch, len(seg.Estimate), r.lanes, low, high)
	}
	r.evals += seg.Calls

	return seg, nil
}

// result snapshots the totals into a caller-owned Result.
func (r *runner) result(st Status) Result {
	est, errEst := r.accum.snapshot()
	if r.cfg.Logger != nil {
		r.cfg.Logger.Info("quadra: finished",
			"status", st.String(), "evals", r.evals,
			"intervals", len(r.pool), "steps", r.steps)
	}

	return Result{
		Estimate:    est,
		Error:       errEst,
		Status:      st,
		Evaluations: r.evals,
		Intervals:   len(r.pool),
		Steps:       r.steps,
	}
}
