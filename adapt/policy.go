package adapt

import "math"

// laneTolerance returns the error budget for one lane: the larger of the
// absolute tolerance and the relative tolerance scaled by the lane's
// current estimate magnitude.
//
// Degenerate case: when AbsTol == 0 a lane whose estimate is (near) zero
// faces a purely relative criterion that a nonzero error estimate can never
// satisfy — the relative band collapses with the estimate. The policy then
// floors the budget at zeroFloor so legitimately-zero integrals still
// converge instead of refining forever.
func laneTolerance(est, absTol, relTol float64) float64 {
	tol := relTol * math.Abs(est)
	if absTol > 0 {
		if absTol > tol {
			tol = absTol
		}

		return tol
	}
	if tol < zeroFloor {
		tol = zeroFloor
	}

	return tol
}

// converged reports whether every lane satisfies its tolerance band.
// Worst-lane gating: a single unconverged lane keeps the whole interval set
// refining, because intervals are shared across lanes and cannot be split
// per lane.
func converged(totalEst, totalErr []float64, absTol, relTol float64) bool {
	for i, e := range totalErr {
		if e > laneTolerance(totalEst[i], absTol, relTol) {
			return false
		}
	}

	return true
}
