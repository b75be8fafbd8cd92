// Package rule defines the rule-pair types, the batched integrand contract,
// and the sentinel errors shared by every evaluator.
//
// Errors (sentinel):
//
//	– ErrUnknownKind   if ForKind receives a Kind outside the table.
//	– ErrIntegrand     if the integrand itself returned an error.
//	– ErrNonFinite     if the integrand produced NaN or ±Inf in any lane.
//	– ErrShapeMismatch if a returned lane slice changed length mid-run.
package rule

import "errors"

// Sentinel errors returned by rule evaluation.
var (
	// ErrUnknownKind indicates a Kind value with no node/weight table.
	ErrUnknownKind = errors.New("rule: unknown rule kind")

	// ErrIntegrand indicates the integrand returned a non-nil error.
	// The original error is wrapped alongside for errors.Is inspection.
	ErrIntegrand = errors.New("rule: integrand evaluation failed")

	// ErrNonFinite indicates the integrand produced NaN or ±Inf where a
	// finite value is required. The run aborts with no partial result.
	ErrNonFinite = errors.New("rule: integrand returned non-finite value")

	// ErrShapeMismatch indicates the integrand returned a lane slice whose
	// length disagrees with the declared or previously observed lane shape.
	// Silently broadcasting here would mask caller bugs, so it is fatal.
	ErrShapeMismatch = errors.New("rule: integrand lane shape mismatch")
)

// Kind selects one embedded Gauss–Kronrod pair. The variant is fixed when
// the Pair is looked up; it never changes during a run.
//
// GaussKronrod15 – 7-point Gauss embedded in a 15-point Kronrod extension.
// GaussKronrod21 – 10-point Gauss embedded in a 21-point Kronrod extension.
type Kind int

const (
	// GaussKronrod15 is the classic G7/K15 pair: 15 integrand calls per
	// interval, Gauss component exact to polynomial degree 13.
	GaussKronrod15 Kind = iota

	// GaussKronrod21 is the G10/K21 pair: 21 integrand calls per interval,
	// Gauss component exact to polynomial degree 19. Prefer it for smooth
	// integrands where fewer, larger intervals suffice.
	GaussKronrod21
)

// String returns the conventional name of the rule pair.
func (k Kind) String() string {
	switch k {
	case GaussKronrod15:
		return "G7/K15"
	case GaussKronrod21:
		return "G10/K21"
	default:
		return "unknown"
	}
}

// Integrand is the batched integrand contract: one scalar node position in,
// one result per lane out. It must be a pure function of its inputs, return
// the same lane shape on every call within a run, and may be evaluated at
// arbitrary points in any order. The params slice is owned by the caller of
// Integrate and must not be mutated.
type Integrand func(x float64, params []float64) ([]float64, error)

// Pair holds one embedded rule: reference nodes on (-1, 1) in ascending
// order, the Kronrod weight for every node, and the embedded Gauss weight
// (zero at Kronrod-only nodes, so both weighted sums run in a single pass
// over the node results). The slices are shared lookup tables — read-only.
type Pair struct {
	Kind Kind

	Nodes   []float64 // reference nodes, ascending, strictly inside (-1, 1)
	Kronrod []float64 // Kronrod weights, len == len(Nodes)
	Gauss   []float64 // embedded Gauss weights, zero where the node is Kronrod-only

	// GaussDegree and KronrodDegree are the highest polynomial degrees the
	// two components integrate exactly (2n-1 and 3n+1 for a Gn/K2n+1 pair).
	GaussDegree   int
	KronrodDegree int
}

// ForKind returns the prebuilt Pair for k. The returned Pair shares the
// package-level node/weight tables; callers must treat them as immutable.
// Unknown kinds panic with ErrUnknownKind: selecting a rule that does not
// exist is a programmer error, not a runtime condition.
func ForKind(k Kind) Pair {
	switch k {
	case GaussKronrod15:
		return gk15
	case GaussKronrod21:
		return gk21
	default:
		panic(ErrUnknownKind.Error())
	}
}
