package adapt

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/quadra/rule"
)

// transformDomain maps an infinite or semi-infinite integration domain onto
// a finite one via a rational change of variable, composing the Jacobian
// into the returned integrand. Finite domains pass through unchanged.
//
// Substitutions:
//
//	[a, +∞)   : x = a + t/(1−t),  t ∈ [0, 1),   Jacobian 1/(1−t)²
//	(−∞, b]   : x = b − t/(1−t),  t ∈ [0, 1),   Jacobian 1/(1−t)²
//	(−∞, +∞)  : x = t/(1−t²),     t ∈ (−1, 1),  Jacobian (1+t²)/(1−t²)²
//
// The substitutions are singular at the far endpoint(s) of the t-domain,
// but the rule evaluator only ever samples strictly interior reference
// nodes (a table invariant, verified by test), so the transformed integrand
// needs no endpoint clamping.
//
// Bounds are assumed normalized (low < high) and non-NaN by the caller.
func transformDomain(f rule.Integrand, low, high float64) (g rule.Integrand, tLow, tHigh float64) {
	lowInf := math.IsInf(low, -1)
	highInf := math.IsInf(high, 1)

	switch {
	case lowInf && highInf:
		return doublyInfinite(f), -1, 1
	case highInf:
		return semiInfinite(f, low, +1), 0, 1
	case lowInf:
		return semiInfinite(f, high, -1), 0, 1
	default:
		return f, low, high
	}
}

// semiInfinite folds the substitution x = a + dir·t/(1−t) into f.
// dir = +1 integrates [a, +∞); dir = −1 integrates (−∞, a] (the mirrored
// substitution preserves orientation, so no sign flip is needed).
func semiInfinite(f rule.Integrand, a, dir float64) rule.Integrand {
	return func(t float64, params []float64) ([]float64, error) {
		u := 1 - t
		x := a + dir*t/u
		out, err := f(x, params)
		if err != nil {
			return nil, err
		}
		floats.Scale(1/(u*u), out)

		return out, nil
	}
}

// doublyInfinite folds the substitution x = t/(1−t²) into f.
func doublyInfinite(f rule.Integrand) rule.Integrand {
	return func(t float64, params []float64) ([]float64, error) {
		u := 1 - t*t
		x := t / u
		out, err := f(x, params)
		if err != nil {
			return nil, err
		}
		floats.Scale((1+t*t)/(u*u), out)

		return out, nil
	}
}
