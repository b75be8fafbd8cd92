package adapt

import "gonum.org/v1/gonum/floats"

// accumulator maintains the running per-lane totals of all active
// intervals' estimates and error bounds.
//
// Design tradeoff: keeping the totals as a running sum makes each
// subdivision O(lanes) instead of O(intervals·lanes) — the active set can
// grow to thousands of intervals under tight tolerances, so recomputing
// from scratch every step is ruled out. The price is cumulative
// floating-point drift from the repeated subtract/add cycle, which is
// bounded by fully resumming the pool every resyncEvery subdivisions.
type accumulator struct {
	totalEst []float64
	totalErr []float64

	// sinceResync counts subdivisions since the last full resummation.
	sinceResync int
}

// newAccumulator returns an empty accumulator for the given lane count.
func newAccumulator(lanes int) *accumulator {
	return &accumulator{
		totalEst: make([]float64, lanes),
		totalErr: make([]float64, lanes),
	}
}

// add folds an interval's contribution into the totals.
func (a *accumulator) add(iv *interval) {
	floats.Add(a.totalEst, iv.estimate)
	floats.Add(a.totalErr, iv.errEst)
}

// remove withdraws a retiring interval's contribution from the totals.
func (a *accumulator) remove(iv *interval) {
	floats.Sub(a.totalEst, iv.estimate)
	floats.Sub(a.totalErr, iv.errEst)
}

// maybeResync recomputes the totals from the full pool once every
// resyncEvery subdivisions, restoring the invariant that the totals equal
// the exact sum of all active intervals' cached arrays.
func (a *accumulator) maybeResync(pool intervalHeap) {
	a.sinceResync++
	if a.sinceResync < resyncEvery {
		return
	}
	a.sinceResync = 0
	for l := range a.totalEst {
		a.totalEst[l] = 0
		a.totalErr[l] = 0
	}
	for _, iv := range pool {
		a.add(iv)
	}
}

// snapshot returns copies of the current totals, safe to hand to callers
// without aliasing the accumulator's mutable state.
func (a *accumulator) snapshot() (est, errEst []float64) {
	est = make([]float64, len(a.totalEst))
	errEst = make([]float64, len(a.totalErr))
	copy(est, a.totalEst)
	copy(errEst, a.totalErr)

	return est, errEst
}
