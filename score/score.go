package score

import (
	"math"

	"go.uber.org/zap"

	"github.com/brewpair/brewpair/pairgraph"
)

// Diversity scores how socially distant a and b are: the base constant plus
// max(0, base − |common neighbors|). Fewer mutual past partners means the
// two more likely represent different social clusters, so the score rises.
// Absent nodes (or a nil graph) yield the base constant unmodified.
//
// Complexity: O(min(deg a, deg b)).
func Diversity(g *pairgraph.Graph, a, b string, cfg Config) float64 {
	if g == nil || !g.HasParticipant(a) || !g.HasParticipant(b) {
		lookupNote(cfg, "diversity: participant missing from graph", a, b)

		return DefaultDiversityBase
	}

	common, err := g.CommonNeighbors(a, b)
	if err != nil {
		lookupNote(cfg, "diversity: common-neighbor lookup failed", a, b)

		return DefaultDiversityBase
	}

	adj := DefaultDiversityBase - float64(common)
	if adj < 0 {
		adj = 0
	}

	return DefaultDiversityBase + adj
}

// Network scores the structural benefit of the pair: the cross-community
// bonus when a and b live in different communities, plus the
// bridge-building bonus when their degrees differ by more than
// cfg.BridgeDegreeGap. The bonuses are additive and independent — both can
// apply at once. Lookup failures contribute zero, never an error.
//
// Complexity: O(1).
func Network(g *pairgraph.Graph, communities map[string]int, a, b string, cfg Config) float64 {
	var s float64

	if ca, okA := communities[a]; okA {
		if cb, okB := communities[b]; okB && ca != cb {
			s += cfg.CrossCommunityBonus
		}
	}

	if g != nil {
		da, errA := g.Degree(a)
		db, errB := g.Degree(b)
		switch {
		case errA != nil || errB != nil:
			lookupNote(cfg, "network: degree lookup failed", a, b)
		case abs(da-db) > cfg.BridgeDegreeGap:
			s += cfg.BridgeBonus
		}
	}

	return s
}

// Composite blends Diversity and Network by the configured weights. It is
// only meaningful for pairs that have never met; already-met pairs bypass
// scoring entirely via the hard-constraint penalty in the cost matrix.
// Any arithmetic fault (NaN, ±Inf) clamps to 0 locally.
func Composite(g *pairgraph.Graph, communities map[string]int, a, b string, cfg Config) float64 {
	s := cfg.DiversityWeight*Diversity(g, a, b, cfg) +
		cfg.NetworkWeight*Network(g, communities, a, b, cfg)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		lookupNote(cfg, "composite: non-finite score clamped to 0", a, b)

		return 0
	}

	return s
}

// Cost is the minimization view of Composite: more desirable pairs cost
// less (never-met pairs always yield a non-positive cost).
func Cost(g *pairgraph.Graph, communities map[string]int, a, b string, cfg Config) float64 {
	return -Composite(g, communities, a, b, cfg)
}

// lookupNote emits the best-effort debug note for a degraded lookup.
func lookupNote(cfg Config, msg, a, b string) {
	if cfg.Logger == nil {
		return
	}
	cfg.Logger.Debug(msg, zap.String("a", a), zap.String("b", b))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
