// Package adapt implements adaptive vector quadrature: one priority-driven
// subdivision schedule shared by every lane of an array-valued integrand.
//
// Algorithm outline:
//
//  1. Normalize bounds (swap + negate for low > high; zero-width is the
//     zero integral) and, for infinite domains, substitute onto a finite
//     interval (the composition absorbs the Jacobian).
//  2. Seed: evaluate the rule pair once over the whole domain, inferring
//     and memoizing the lane shape, and initialize the running totals.
//  3. Refine: while the convergence policy is unsatisfied and budget
//     remains, pop the interval with the largest max-lane error, bisect it
//     at its midpoint, evaluate both children (2 rule calls), swap the
//     parent's contribution for the children's in the running totals, and
//     push the children back onto the heap.
//  4. Terminate: Converged when every lane's accumulated error is within
//     max(AbsTol, RelTol·|estimate|); Exhausted when an evaluation,
//     interval or step budget is hit first (best-so-far result, soft
//     outcome); error when the integrand fails (no partial result).
//
// Complexity:
//
//   - Time:  O(S · (nodes·lanes + log S)) for S subdivision steps —
//     two rule evaluations plus O(log S) heap maintenance per step.
//   - Space: O(S · lanes) for the active interval set's cached arrays.
//
// One Integrate call owns all of its state (heap, accumulator, counters);
// nothing is shared across calls, so concurrent calls need no locking.
// Determinism: identical inputs pop identical intervals in identical order
// (priority ties break on width, then left bound).
//
// Example usage:
//
//	a := []float64{1, 2, 3}
//	f := func(x float64, p []float64) ([]float64, error) {
//	    out := make([]float64, len(p))
//	    for i, ai := range p {
//	        out[i] = math.Exp(-ai * x * x)
//	    }
//	    return out, nil
//	}
//	res, err := adapt.Integrate(f, -1, 3, adapt.WithParams(a))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Status, res.Estimate)
package adapt
