package rule_test

import (
	"fmt"

	"github.com/katalvlaran/quadra/rule"
)

// ExamplePair_Evaluate integrates a quadratic over [0, 1] across two lanes
// in a single batched evaluation. The polynomial is well inside the rule's
// exactness degree, so the estimate is exact and the error estimate is at
// the floating-point floor.
func ExamplePair_Evaluate() {
	// One lane per parameter: out[i] = a[i]·(3x² + 1), so lane i integrates
	// to a[i]·2 over [0, 1].
	f := func(x float64, a []float64) ([]float64, error) {
		out := make([]float64, len(a))
		for i, ai := range a {
			out[i] = ai * (3*x*x + 1)
		}

		return out, nil
	}

	p := rule.ForKind(rule.GaussKronrod15)
	seg, err := p.Evaluate(0, 1, []float64{1, 2}, f)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("calls=%d\n", seg.Calls)
	fmt.Printf("lane0=%.6f lane1=%.6f\n", seg.Estimate[0], seg.Estimate[1])
	// Output:
	// calls=15
	// lane0=2.000000 lane1=4.000000
}
