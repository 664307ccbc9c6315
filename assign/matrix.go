package assign

import (
	"gonum.org/v1/gonum/mat"

	"github.com/brewpair/brewpair/pairgraph"
	"github.com/brewpair/brewpair/score"
)

// selfPairPenaltyFactor raises the price of pairing an identity with
// itself (the duplicated designee against its own original) strictly above
// the already-met penalty. A forced all-repeat round must prefer any
// repeat matching that covers everyone over one that collapses the
// duplicate into a self-pair; equal pricing would let the solver's index
// tie-break pick either.
const selfPairPenaltyFactor = 10

// BuildCostMatrix computes the square pairing-cost matrix over ids, which
// may contain one identity twice when the odd-population handler duplicated
// a designee.
//
// Cell policy, per ordered index pair (i, j):
//   - i == j or identical identities (the duplicate against its original)
//     ⇒ cfg.HardPenalty × selfPairPenaltyFactor, dominating every
//     two-person cost including already-met repeats;
//   - an existing edge in g (the pair already met) ⇒ cfg.HardPenalty;
//   - otherwise ⇒ the negated composite desirability from the scorer
//     (arithmetic faults are clamped to 0 inside score, never propagated).
//
// Each unordered pair is scored once and written to both cells, so the
// matrix is symmetric in value by construction. An empty ids list yields
// nil (gonum disallows 0×0 dense matrices); callers treat nil as the
// degenerate empty round.
//
// Complexity: O(n²) cells, each O(min-degree) for the common-neighbor scan.
func BuildCostMatrix(ids []string, g *pairgraph.Graph, communities map[string]int, cfg score.Config) *mat.Dense {
	n := len(ids)
	if n == 0 {
		return nil
	}

	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, selfPairPenaltyFactor*cfg.HardPenalty)
		for j := i + 1; j < n; j++ {
			var cost float64
			switch {
			case ids[i] == ids[j]:
				cost = selfPairPenaltyFactor * cfg.HardPenalty
			case g != nil && g.HasMet(ids[i], ids[j]):
				cost = cfg.HardPenalty
			default:
				cost = score.Cost(g, communities, ids[i], ids[j], cfg)
			}
			m.Set(i, j, cost)
			m.Set(j, i, cost)
		}
	}

	return m
}
