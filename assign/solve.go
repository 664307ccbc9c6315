package assign

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Solve computes a minimum-total-cost matching over the cost matrix m:
// every index used at most once, floor(n/2) pairs, pairs ordered by
// commitment. Populations up to ExactMaxSize are solved exactly by
// branch-and-bound; larger ones by the greedy heuristic with a stranding
// deterrent.
//
// Degenerate matrices (nil, zero-sized, non-square) are recoverable and
// yield an empty pair list with a nil error. The only error surfaced is
// ErrOptionViolation for invalid options.
//
// Complexity: exact mode worst-case exponential (bounded by ExactMaxSize);
// heuristic mode O(n² log n) sort + O(k·n²) selection for k pairs.
func Solve(m *mat.Dense, opts ...Option) ([]Pair, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if m == nil {
		return []Pair{}, nil
	}
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 || rows != cols || rows < 2 {
		return []Pair{}, nil
	}

	n := rows
	w := prefetch(m, n, o.HardPenalty)

	if n <= o.ExactMaxSize {
		return solveExact(n, w, o), nil
	}

	return solveGreedy(n, w, o), nil
}

// prefetch loads the matrix into a dense row-major buffer to remove
// interface overhead in the search hot loops. Numeric faults (NaN) are
// treated as cost 0 per the engine's error policy; ±Inf collapses to the
// hard penalty so comparisons stay total.
func prefetch(m *mat.Dense, n int, penalty float64) []float64 {
	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := m.At(i, j)
			switch {
			case math.IsNaN(x):
				x = 0
			case math.IsInf(x, 0):
				x = penalty
			}
			w[i*n+j] = x
		}
	}

	return w
}

// candidate is one unordered index pair with its matrix cost.
type candidate struct {
	i, j int
	cost float64
}

// sortedCandidates enumerates all unordered pairs and sorts them ascending
// by cost with an index tiebreak, keeping both solver modes deterministic.
func sortedCandidates(n int, w []float64) []candidate {
	cands := make([]candidate, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cands = append(cands, candidate{i: i, j: j, cost: w[i*n+j]})
		}
	}
	sort.Slice(cands, func(a, b int) bool {
		ca, cb := cands[a], cands[b]
		if ca.cost != cb.cost {
			return ca.cost < cb.cost
		}
		if ca.i != cb.i {
			return ca.i < cb.i
		}

		return ca.j < cb.j
	})

	return cands
}
