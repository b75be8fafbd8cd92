package rule_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quadra/rule"
)

// benchmarkEvaluate runs one rule evaluation per iteration over the given
// lane count, reusing the integrand's output buffer to keep the benchmark
// focused on the evaluator itself.
func benchmarkEvaluate(b *testing.B, kind rule.Kind, lanes int) {
	params := make([]float64, lanes)
	for i := range params {
		params[i] = 1 + float64(i)/float64(lanes)
	}
	out := make([]float64, lanes)
	f := func(x float64, p []float64) ([]float64, error) {
		for i, a := range p {
			out[i] = math.Exp(-a * x * x)
		}

		return out, nil
	}
	pair := rule.ForKind(kind)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pair.Evaluate(-1, 3, params, f); err != nil {
			b.Fatalf("Evaluate failed: %v", err)
		}
	}
}

// BenchmarkEvaluate_GK15_1Lane measures the scalar-integrand baseline.
func BenchmarkEvaluate_GK15_1Lane(b *testing.B) {
	benchmarkEvaluate(b, rule.GaussKronrod15, 1)
}

// BenchmarkEvaluate_GK15_100Lanes measures 100 lanes sharing 15 calls.
func BenchmarkEvaluate_GK15_100Lanes(b *testing.B) {
	benchmarkEvaluate(b, rule.GaussKronrod15, 100)
}

// BenchmarkEvaluate_GK21_100Lanes measures the larger pair on 100 lanes.
func BenchmarkEvaluate_GK21_100Lanes(b *testing.B) {
	benchmarkEvaluate(b, rule.GaussKronrod21, 100)
}
