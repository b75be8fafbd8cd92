package adapt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadra/adapt"
)

// TestIntegrate_SemiInfinite checks ∫₀^∞ exp(-a·x) dx = 1/a lane by lane.
func TestIntegrate_SemiInfinite(t *testing.T) {
	a := []float64{1, 2, 4}
	f := func(x float64, p []float64) ([]float64, error) {
		out := make([]float64, len(p))
		for i, ai := range p {
			out[i] = math.Exp(-ai * x)
		}

		return out, nil
	}

	res, err := adapt.Integrate(f, 0, math.Inf(1), adapt.WithParams(a))
	require.NoError(t, err)
	require.Equal(t, adapt.Converged, res.Status)
	for i, ai := range a {
		assert.InDelta(t, 1/ai, res.Estimate[i], 1e-7, "lane %d (a=%g)", i, ai)
	}
}

// TestIntegrate_SemiInfiniteMirrored checks the (−∞, b] substitution:
// ∫₋∞⁰ exp(a·x) dx = 1/a.
func TestIntegrate_SemiInfiniteMirrored(t *testing.T) {
	a := []float64{1, 3}
	f := func(x float64, p []float64) ([]float64, error) {
		out := make([]float64, len(p))
		for i, ai := range p {
			out[i] = math.Exp(ai * x)
		}

		return out, nil
	}

	res, err := adapt.Integrate(f, math.Inf(-1), 0, adapt.WithParams(a))
	require.NoError(t, err)
	require.Equal(t, adapt.Converged, res.Status)
	for i, ai := range a {
		assert.InDelta(t, 1/ai, res.Estimate[i], 1e-7, "lane %d (a=%g)", i, ai)
	}
}

// TestIntegrate_DoublyInfinite checks the full Gaussian integral
// ∫₋∞^∞ exp(-a·x²) dx = √(π/a).
func TestIntegrate_DoublyInfinite(t *testing.T) {
	a := []float64{0.5, 1, 2, 5}

	res, err := adapt.Integrate(gaussLanes, math.Inf(-1), math.Inf(1), adapt.WithParams(a))
	require.NoError(t, err)
	require.Equal(t, adapt.Converged, res.Status)
	for i, ai := range a {
		assert.InDelta(t, math.Sqrt(math.Pi/ai), res.Estimate[i], 1e-7, "lane %d (a=%g)", i, ai)
	}
}

// TestIntegrate_DoublyInfiniteReversed checks orientation normalization
// across a transform: (+∞, −∞) is the negation of (−∞, +∞).
func TestIntegrate_DoublyInfiniteReversed(t *testing.T) {
	a := []float64{1}

	fwd, err := adapt.Integrate(gaussLanes, math.Inf(-1), math.Inf(1), adapt.WithParams(a))
	require.NoError(t, err)
	rev, err := adapt.Integrate(gaussLanes, math.Inf(1), math.Inf(-1), adapt.WithParams(a))
	require.NoError(t, err)
	assert.Equal(t, -fwd.Estimate[0], rev.Estimate[0])
}

// TestIntegrate_CutoffGaussian is the infinite-domain scenario with a
// discontinuous integrand: f(x, a) = 𝟙[-a,a](x)·exp(-a·x²) over (−∞, ∞)
// for a = 1..19, checked against the analytic √(π/a)·erf(a^{3/2}) within
// the absolute tolerance. The jumps at ±a force genuine adaptive work
// around the transformed discontinuity locations.
func TestIntegrate_CutoffGaussian(t *testing.T) {
	a := make([]float64, 19)
	for i := range a {
		a[i] = float64(i + 1)
	}
	f := func(x float64, p []float64) ([]float64, error) {
		out := make([]float64, len(p))
		for i, ai := range p {
			if x >= -ai && x <= ai {
				out[i] = math.Exp(-ai * x * x)
			}
		}

		return out, nil
	}

	// Converge to half the asserted delta: on a jump the Kronrod/Gauss
	// discrepancy tracks the true error only to a modest constant, so the
	// claimed bound needs headroom before comparing against the analytic
	// value.
	res, err := adapt.Integrate(f, math.Inf(-1), math.Inf(1),
		adapt.WithParams(a),
		adapt.WithAbsTol(5e-7), adapt.WithRelTol(0),
		adapt.WithMaxEvaluations(500000), adapt.WithMaxIntervals(50000))
	require.NoError(t, err)
	require.Equal(t, adapt.Converged, res.Status)

	for i, ai := range a {
		want := math.Sqrt(math.Pi/ai) * math.Erf(math.Pow(ai, 1.5))
		assert.InDelta(t, want, res.Estimate[i], 1e-6, "lane %d (a=%g)", i, ai)
	}
}
