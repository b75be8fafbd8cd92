package adapt

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/quadra/rule"
)

// interval is one active subinterval of the (transformed) integration
// domain. estimate and errEst are the rule evaluator's output for exactly
// [low, high]; they go stale the instant the interval is bisected, so the
// interval is evicted from the pool together with its cached arrays.
type interval struct {
	low, high float64
	estimate  []float64 // per-lane Kronrod estimate over [low, high]
	errEst    []float64 // per-lane error bound over [low, high]
	priority  float64   // scalar reduction of errEst used for heap ordering
}

// newInterval wraps a rule evaluation into a pool entry. The priority is
// the max-magnitude lane error (∞-norm): it is monotone in the worst lane's
// convergence gap, which is what the all-lanes stopping rule waits on.
func newInterval(low, high float64, seg rule.Segment) *interval {
	return &interval{
		low:      low,
		high:     high,
		estimate: seg.Estimate,
		errEst:   seg.Error,
		priority: floats.Norm(seg.Error, math.Inf(1)),
	}
}

// width returns the interval length.
func (iv *interval) width() float64 { return iv.high - iv.low }

// intervalHeap is a max-heap of *interval ordered by priority descending,
// so heap.Pop always yields the interval whose refinement helps global
// convergence the most. Ties break on larger width, then on lower left
// bound, making the refinement order deterministic and reproducible across
// runs with identical input — never dependent on heap traversal order.
type intervalHeap []*interval

// Len returns the number of active intervals.
func (h intervalHeap) Len() int { return len(h) }

// Less orders by priority descending, then width descending, then left
// bound ascending (the deterministic tie-break chain).
func (h intervalHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	if wa, wb := a.width(), b.width(); wa != wb {
		return wa > wb
	}

	return a.low < b.low
}

// Swap swaps two elements in the heap.
func (h intervalHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *interval.
func (h *intervalHeap) Push(x interface{}) { *h = append(*h, x.(*interval)) }

// peekWorst returns the priority of the next interval heap.Pop would
// yield, or 0 for an empty pool.
func (h intervalHeap) peekWorst() float64 {
	if len(h) == 0 {
		return 0
	}

	return h[0].priority
}

// Pop removes and returns the highest-priority element.
// Called by heap.Pop; returns interface{} that must be cast to *interval.
func (h *intervalHeap) Pop() interface{} {
	old := *h
	n := len(old)
	iv := old[n-1]
	*h = old[:n-1]

	return iv
}
