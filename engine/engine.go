package engine

import (
	"go.uber.org/zap"

	"github.com/brewpair/brewpair/assign"
	"github.com/brewpair/brewpair/community"
	"github.com/brewpair/brewpair/pairgraph"
	"github.com/brewpair/brewpair/roster"
)

// Match runs one pairing round over an already-typed roster and history and
// returns the pair list plus diagnostics.
//
// Pipeline: graph build → community detection → odd-population expansion →
// cost matrix → assignment solve → identity translation → diagnostics.
//
// Error policy: no well-typed input is fatal. Fewer than two active
// participants, empty history, or a fully-saturated history all return a
// best-effort Result with a nil error; an odd population without a
// volunteer surfaces as one entry in Diagnostics.Unpaired. The only error
// returned is an Option violation.
func Match(entries []roster.Entry, history []roster.Meeting, opts ...Option) (Result, error) {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if o.scoreCfgSet && o.scoreCfg.Logger == nil {
		o.scoreCfg.Logger = o.logger
	}

	res := Result{RoundID: newRoundID(), Pairs: []Pair{}}

	g := pairgraph.Build(entries, history)
	ids := g.ParticipantIDs()
	o.logger.Debug("graph built",
		zap.Int("participants", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()))

	comms := community.Detect(g)
	res.Diagnostics = baseDiagnostics(g, comms)

	// Fewer than two active participants: nothing to pair, not an error.
	if len(ids) < 2 {
		res.Diagnostics.Unpaired = append([]string(nil), ids...)

		return res, nil
	}

	expanded, designee := assign.ExpandOdd(ids, twiceVolunteers(entries), assign.RNG(o.seed))
	res.Diagnostics.PairedTwice = designee

	m := assign.BuildCostMatrix(expanded, g, comms, o.scoreCfg)
	idxPairs, err := assign.Solve(m,
		assign.WithExactMaxSize(o.exactMaxSize),
		assign.WithHardPenalty(o.scoreCfg.HardPenalty),
	)
	if err != nil {
		return Result{}, err
	}

	res.Pairs = translate(expanded, idxPairs)
	finishDiagnostics(&res, g, comms, ids)

	o.logger.Debug("round solved",
		zap.String("round_id", res.RoundID.String()),
		zap.Int("pairs", len(res.Pairs)),
		zap.Int("communities", res.Diagnostics.Communities),
		zap.Float64("new_pair_share", res.Diagnostics.NewPairShare),
		zap.Float64("cross_community_share", res.Diagnostics.CrossCommunityShare),
		zap.Strings("unpaired", res.Diagnostics.Unpaired))

	return res, nil
}

// twiceVolunteers collects active participants flagged to pair twice, in
// roster order (the order feeds the seeded uniform choice).
func twiceVolunteers(entries []roster.Entry) []string {
	var out []string
	for _, e := range entries {
		if e.Active && e.PairTwice {
			out = append(out, e.Identity)
		}
	}

	return out
}

// translate maps solver index pairs back to identities, dropping any
// defensive self-pair (the duplicate matched against its own original —
// priced prohibitively, so only reachable when nothing else existed).
func translate(ids []string, idxPairs []assign.Pair) []Pair {
	out := make([]Pair, 0, len(idxPairs))
	for _, p := range idxPairs {
		if p.I < 0 || p.J < 0 || p.I >= len(ids) || p.J >= len(ids) {
			continue // dummy index: never ours, but never surfaced either
		}
		a, b := ids[p.I], ids[p.J]
		if a == b {
			continue
		}
		out = append(out, Pair{A: a, B: b})
	}

	return out
}
