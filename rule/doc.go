// Package rule provides fixed-order embedded quadrature rule pairs and the
// batched interval evaluator they drive.
//
// A rule pair is two quadrature formulas of different polynomial exactness
// that share one set of evaluation nodes: a Gauss formula and its Kronrod
// extension. Evaluating the integrand once per node yields both the
// high-order (Kronrod) estimate and the low-order (Gauss) estimate; their
// per-lane discrepancy is the error estimate that steers adaptive refinement.
//
// Batching is the point of the design: the integrand receives one scalar
// node position and the full lane-parameter slice, and returns one result
// per lane. An interval therefore costs exactly len(Nodes) integrand calls
// no matter how many lanes are integrated.
//
// Rule selection is a tagged enum (Kind), fixed at lookup time via ForKind —
// there is no runtime polymorphism over rule variants.
//
// Invariant relied on by infinite-domain transforms upstream: every
// reference node lies strictly inside (-1, 1), so a transformed integrand is
// never evaluated at the singular endpoints of its substitution.
package rule
