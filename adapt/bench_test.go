package adapt_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quadra/adapt"
)

// benchmarkIntegrate runs a full adaptive integration of shifted Gaussians
// per iteration, with one lane per (a, b) pair.
func benchmarkIntegrate(b *testing.B, lanes int) {
	aG := make([]float64, lanes)
	bG := make([]float64, lanes)
	for i := range aG {
		aG[i] = 1 + float64(i%19)
		bG[i] = -1 + 4*float64(i)/float64(lanes)
	}
	out := make([]float64, lanes)
	f := func(x float64, _ []float64) ([]float64, error) {
		for l := range out {
			d := x - bG[l]
			out[l] = math.Exp(-aG[l] * d * d)
		}

		return out, nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := adapt.Integrate(f, -1, 3,
			adapt.WithMaxEvaluations(200000), adapt.WithMaxIntervals(20000))
		if err != nil {
			b.Fatalf("Integrate failed: %v", err)
		}
		if res.Status != adapt.Converged {
			b.Fatalf("did not converge: %v", res.Status)
		}
	}
}

// BenchmarkIntegrate_1Lane is the scalar baseline the batching is measured
// against.
func BenchmarkIntegrate_1Lane(b *testing.B) { benchmarkIntegrate(b, 1) }

// BenchmarkIntegrate_100Lanes shares one schedule across 100 lanes.
func BenchmarkIntegrate_100Lanes(b *testing.B) { benchmarkIntegrate(b, 100) }

// BenchmarkIntegrate_1900Lanes is the full 19×100 parameter grid.
func BenchmarkIntegrate_1900Lanes(b *testing.B) { benchmarkIntegrate(b, 1900) }

// BenchmarkIntegrate_SemiInfinite exercises the domain transform path.
func BenchmarkIntegrate_SemiInfinite(b *testing.B) {
	a := []float64{1, 2, 4, 8}
	out := make([]float64, len(a))
	f := func(x float64, p []float64) ([]float64, error) {
		for i, ai := range p {
			out[i] = math.Exp(-ai * x)
		}

		return out, nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := adapt.Integrate(f, 0, math.Inf(1), adapt.WithParams(a)); err != nil {
			b.Fatalf("Integrate failed: %v", err)
		}
	}
}
