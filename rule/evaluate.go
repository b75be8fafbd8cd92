package rule

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// epsRel is the unit roundoff of float64 (2⁻⁵²). Per-lane error estimates
// are floored at epsRel·|estimate| so floating-point cancellation between
// the Kronrod and Gauss sums can never zero out an interval's priority.
const epsRel = 0x1p-52

// Segment is the evaluator's verdict on one interval: the high-order
// estimate and the error bound for every lane, plus the number of integrand
// calls spent (always len(Nodes), or zero for a degenerate interval).
// Estimate and Error are freshly allocated on every call and owned by the
// caller; they describe exactly the interval they were computed for and go
// stale the instant that interval is bisected.
type Segment struct {
	Estimate []float64
	Error    []float64
	Calls    int
}

// Evaluate applies the rule pair to [low, high], calling f once per node
// with the full params slice. It returns the Kronrod estimate, the per-lane
// error bound derived from the Kronrod/Gauss discrepancy, and the call
// count.
//
// The lane shape is fixed by len(params) when params is non-nil, otherwise
// by the first node result; any later call returning a different length
// fails with ErrShapeMismatch. A NaN or ±Inf in any lane fails with
// ErrNonFinite, and an integrand error is wrapped in ErrIntegrand — failures
// propagate immediately, never substituting a default value.
//
// A zero-width interval (low == high) returns zero estimate and zero error
// without invoking the integrand; the lane shape is then len(params)
// (possibly zero when params is nil, which the caller resolves).
//
// Complexity: O(nodes · lanes) time, O(lanes) extra space.
func (p Pair) Evaluate(low, high float64, params []float64, f Integrand) (Segment, error) {
	if low == high {
		n := len(params)

		return Segment{Estimate: make([]float64, n), Error: make([]float64, n)}, nil
	}

	// Affine map from the reference interval (-1,1) onto [low, high]:
	// x = center + halfWidth·node.
	halfWidth := 0.5 * (high - low)
	center := 0.5 * (low + high)

	lanes := len(params) // 0 means "infer from the first node result"
	var sumK, sumG []float64

	var x float64
	var out []float64
	var err error
	for i, node := range p.Nodes {
		x = center + halfWidth*node
		out, err = f(x, params)
		if err != nil {
			return Segment{}, fmt.Errorf("%w: x=%g: %w", ErrIntegrand, x, err)
		}
		if lanes == 0 && i == 0 {
			lanes = len(out)
		}
		if len(out) != lanes {
			return Segment{}, fmt.Errorf("%w: got %d lanes, want %d (x=%g)", ErrShapeMismatch, len(out), lanes, x)
		}
		if sumK == nil {
			sumK = make([]float64, lanes)
			sumG = make([]float64, lanes)
		}
		wk, wg := p.Kronrod[i], p.Gauss[i]
		for l, v := range out {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Segment{}, fmt.Errorf("%w: lane %d at x=%g: %g", ErrNonFinite, l, x, v)
			}
			sumK[l] += wk * v
			sumG[l] += wg * v
		}
	}

	// Kronrod estimate = halfWidth · Σ wk·f; the Gauss/Kronrod discrepancy,
	// scaled the same way, is the per-lane error bound.
	estimate := make([]float64, lanes)
	copy(estimate, sumK)
	floats.Scale(halfWidth, estimate)

	errEst := make([]float64, lanes)
	absHW := math.Abs(halfWidth)
	for l := range errEst {
		d := absHW * math.Abs(sumK[l]-sumG[l])
		if floor := epsRel * math.Abs(estimate[l]); d < floor {
			d = floor
		}
		errEst[l] = d
	}

	return Segment{Estimate: estimate, Error: errEst, Calls: len(p.Nodes)}, nil
}
