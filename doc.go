// Package quadra is adaptive numerical quadrature for many integrals at once —
// one subdivision schedule, shared by every "lane" of an array-valued integrand.
//
// 🚀 What is quadra?
//
//	A small, focused library that integrates a batched integrand
//	f(x, params) → []float64 over a finite or infinite interval:
//		• Embedded Gauss–Kronrod rule pairs (G7/K15, G10/K21)
//		• Priority-queue driven adaptive bisection
//		• Per-lane error estimates, worst-lane global stopping rule
//		• Absolute + relative tolerances, evaluation/interval budgets
//		• Semi-infinite and doubly infinite domains via rational substitution
//
// ✨ Why choose quadra?
//
//   - One schedule, many integrals – a 19×100 parameter grid costs the same
//     number of integrand calls as a single scalar integral
//   - Honest outcomes – Converged vs Exhausted is always explicit; a budget
//     hit returns the best-so-far estimate together with its error bound
//   - Deterministic – identical inputs refine identical intervals in the
//     same order, every run
//
// Under the hood, everything is organized under two subpackages:
//
//	rule/  — fixed-order Gauss–Kronrod pairs & the batched interval evaluator
//	adapt/ — interval heap, running accumulator, convergence policy,
//	         infinite-domain transforms and the public Integrate entry point
//
// Quick sketch of the refinement loop:
//
//	seed [a,b] ──▶ pop worst ──▶ bisect ──▶ evaluate children ──▶ update totals
//	                  ▲                                               │
//	                  └────────────── not yet converged ◀─────────────┘
//
// Dive into examples/ for runnable demos, including progress tracing of the
// refinement loop through log/slog.
//
//	go get github.com/katalvlaran/quadra
package quadra
