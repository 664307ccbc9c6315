package engine

import (
	"sort"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/brewpair/brewpair/community"
	"github.com/brewpair/brewpair/pairgraph"
)

// newRoundID stamps a fresh identifier for audit correlation.
func newRoundID() uuid.UUID { return uuid.New() }

// baseDiagnostics derives the graph-level figures: community count and
// mean degree (equal to 2·E/V).
func baseDiagnostics(g *pairgraph.Graph, comms map[string]int) Diagnostics {
	d := Diagnostics{Communities: community.Count(comms), Unpaired: []string{}}

	ids := g.ParticipantIDs()
	if len(ids) == 0 {
		return d
	}
	degrees := make([]float64, 0, len(ids))
	for _, id := range ids {
		deg, err := g.Degree(id)
		if err != nil {
			continue
		}
		degrees = append(degrees, float64(deg))
	}
	d.AvgDegree = stat.Mean(degrees, nil)

	return d
}

// finishDiagnostics derives the pair-level figures from the final pair
// list and the graph — never from solver internals, so callers can always
// reproduce them.
func finishDiagnostics(res *Result, g *pairgraph.Graph, comms map[string]int, active []string) {
	if len(res.Pairs) > 0 {
		var cross, fresh int
		for _, p := range res.Pairs {
			if ca, okA := comms[p.A]; okA {
				if cb, okB := comms[p.B]; okB && ca != cb {
					cross++
				}
			}
			if !g.HasMet(p.A, p.B) {
				fresh++
			}
		}
		total := float64(len(res.Pairs))
		res.Diagnostics.CrossCommunityShare = float64(cross) / total
		res.Diagnostics.NewPairShare = float64(fresh) / total
	}

	covered := make(map[string]int, len(active))
	for _, p := range res.Pairs {
		covered[p.A]++
		covered[p.B]++
	}

	unpaired := make([]string, 0)
	for _, id := range active {
		if covered[id] == 0 {
			unpaired = append(unpaired, id)
		}
	}
	sort.Strings(unpaired)
	res.Diagnostics.Unpaired = unpaired
}
