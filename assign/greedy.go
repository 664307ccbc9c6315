// Package assign — heuristic matching (greedy with a stranding deterrent).
//
// solveGreedy repeatedly commits the globally cheapest effective candidate
// pair. A candidate's effective cost is its matrix cost plus the stranding
// surcharge when committing it would leave some remaining participant with
// only penalized (already-met) options — discouraging, not forbidding, the
// choice. Because candidates are scanned in ascending base-cost order, the
// scan stops as soon as no later candidate can beat the best effective
// cost found, keeping selection cheap in practice.
package assign

import "math"

// solveGreedy returns up to floor(n/2) pairs chosen greedily.
func solveGreedy(n int, w []float64, o Options) []Pair {
	target := n / 2
	cands := sortedCandidates(n, w)
	taken := make([]bool, n)
	out := make([]Pair, 0, target)

	for len(out) < target {
		bestIdx := -1
		bestEff := math.Inf(1)

		for idx := range cands {
			c := cands[idx]
			if taken[c.i] || taken[c.j] {
				continue
			}
			// Sorted pool: once base cost cannot beat the incumbent
			// effective cost, no later candidate can either.
			if c.cost >= bestEff {
				break
			}
			eff := c.cost
			if wouldStrand(n, w, taken, c, o.HardPenalty) {
				eff += o.StrandSurcharge
			}
			if eff < bestEff {
				bestEff = eff
				bestIdx = idx
			}
		}

		if bestIdx < 0 {
			break // no valid pair remains
		}
		c := cands[bestIdx]
		taken[c.i] = true
		taken[c.j] = true
		out = append(out, Pair{I: c.i, J: c.j})
	}

	return out
}

// wouldStrand reports whether committing c leaves some still-free
// participant whose every remaining option is penalized. A participant
// with no remaining partners at all (the inevitable odd leftover) does not
// count — there is nothing left to deter.
func wouldStrand(n int, w []float64, taken []bool, c candidate, penalty float64) bool {
	for v := 0; v < n; v++ {
		if taken[v] || v == c.i || v == c.j {
			continue
		}

		var hasOption, hasOpen bool
		for u := 0; u < n; u++ {
			if u == v || taken[u] || u == c.i || u == c.j {
				continue
			}
			hasOption = true
			if w[v*n+u] < penalty {
				hasOpen = true

				break
			}
		}
		if hasOption && !hasOpen {
			return true
		}
	}

	return false
}
