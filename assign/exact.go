// Package assign — exact matching search (branch-and-bound).
//
// solveExact enumerates matchings via depth-first branch-and-bound with
// deterministic branching and an admissible lower bound:
//
//  1. Branching: take the lowest free index v, try partners u in ascending
//     cost order (index tiebreak); for odd populations one vertex may be
//     left unmatched, tried last.
//  2. Bound: every future pair (u,v) costs at least
//     (minPair[u]+minPair[v])/2, so half the sum of min(0, minPair[v]) over
//     free vertices lower-bounds the remaining cost. Prune when
//     costSoFar + bound cannot beat the incumbent.
//  3. Completeness: a branch records an incumbent only at exactly
//     target pairs, so the search never trades coverage for cost — greedy
//     local minimization can strand two participants with only penalized
//     options left; exhaustive search cannot.
package assign

import "math"

// exactEngine holds all search data and policies. A dedicated engine
// struct (instead of closures) keeps hot-path state explicit and testable.
type exactEngine struct {
	n      int
	target int
	eps    float64

	// skipsLeft is the number of vertices allowed to stay unmatched on the
	// current branch: n − 2·target (1 for odd populations, else 0).
	skipsLeft int

	// w is the dense cost buffer: w[u*n+v].
	w []float64

	// order[v] lists partners of v ascending by cost, index tiebreak.
	order [][]int

	// minPair[v] is the cheapest cost of any pair containing v.
	minPair []float64

	// taken marks vertices already matched or skipped on the current branch.
	taken []bool
	cur   []Pair

	best     []Pair
	bestCost float64
	found    bool
}

func (e *exactEngine) at(u, v int) float64 { return e.w[u*e.n+v] }

// precompute fills the branching order and the per-vertex minima backing
// the lower bound.
func (e *exactEngine) precompute(cands []candidate) {
	e.order = make([][]int, e.n)
	e.minPair = make([]float64, e.n)
	for v := 0; v < e.n; v++ {
		e.minPair[v] = math.Inf(1)
	}

	// cands is already cost-sorted, so appending preserves ascending order
	// per vertex.
	for _, c := range cands {
		e.order[c.i] = append(e.order[c.i], c.j)
		e.order[c.j] = append(e.order[c.j], c.i)
		if c.cost < e.minPair[c.i] {
			e.minPair[c.i] = c.cost
		}
		if c.cost < e.minPair[c.j] {
			e.minPair[c.j] = c.cost
		}
	}
}

// lowerBound returns an admissible bound on the cost still to be paid:
// half the sum of the non-positive per-vertex minima over free vertices.
// (Positive minima are dropped — the true remainder can only be larger.)
func (e *exactEngine) lowerBound() float64 {
	var sum float64
	for v := 0; v < e.n; v++ {
		if !e.taken[v] && e.minPair[v] < 0 {
			sum += e.minPair[v]
		}
	}

	return sum / 2
}

// record commits a new incumbent.
func (e *exactEngine) record(cost float64) {
	if e.found && cost >= e.bestCost-e.eps {
		return
	}
	e.best = e.best[:0]
	e.best = append(e.best, e.cur...)
	e.bestCost = cost
	e.found = true
}

// dfs extends the partial matching from the lowest free vertex.
func (e *exactEngine) dfs(matched int, costSoFar float64) {
	if matched == e.target {
		e.record(costSoFar)

		return
	}

	// Prune against the incumbent.
	if e.found && costSoFar+e.lowerBound() >= e.bestCost-e.eps {
		return
	}

	// Lowest free vertex anchors the branch; every matching contains
	// exactly one pair (or one skip) for it, so no duplicates arise.
	v := 0
	for v < e.n && e.taken[v] {
		v++
	}
	if v == e.n {
		return
	}

	e.taken[v] = true
	for _, u := range e.order[v] {
		if e.taken[u] {
			continue
		}
		e.taken[u] = true
		e.cur = append(e.cur, Pair{I: v, J: u})
		e.dfs(matched+1, costSoFar+e.at(v, u))
		e.cur = e.cur[:len(e.cur)-1]
		e.taken[u] = false
	}

	// Odd population: v may sit the round out, at most skipsLeft times.
	if e.skipsLeft > 0 {
		e.skipsLeft--
		e.dfs(matched, costSoFar)
		e.skipsLeft++
	}
	e.taken[v] = false
}

// solveExact runs the branch-and-bound search and returns the optimal
// matching of floor(n/2) pairs.
func solveExact(n int, w []float64, o Options) []Pair {
	e := exactEngine{
		n:         n,
		target:    n / 2,
		eps:       o.Epsilon,
		skipsLeft: n % 2,
		w:         w,
		taken:     make([]bool, n),
		cur:       make([]Pair, 0, n/2),
		best:      make([]Pair, 0, n/2),
		bestCost:  math.Inf(1),
	}
	e.precompute(sortedCandidates(n, w))
	e.dfs(0, 0)

	out := make([]Pair, len(e.best))
	copy(out, e.best)

	return out
}
