// Package engine declares the round result types and the orchestration
// options.
package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brewpair/brewpair/assign"
	"github.com/brewpair/brewpair/score"
)

// Pair is one unordered pairing of participant identities.
type Pair struct {
	A string
	B string
}

// Diagnostics summarizes a round for auditability. Every figure is
// re-derivable from the final pair list and the connection graph.
type Diagnostics struct {
	// Communities is the number of connected clusters in the graph.
	Communities int

	// AvgDegree is the mean number of distinct past partners per
	// participant (2·E/V).
	AvgDegree float64

	// CrossCommunityShare is the fraction of output pairs whose members
	// belong to different communities.
	CrossCommunityShare float64

	// NewPairShare is the fraction of output pairs with no prior meeting.
	NewPairShare float64

	// PairedTwice names the designated twice-participant of an odd round,
	// or "" when none was needed or none volunteered.
	PairedTwice string

	// Unpaired lists active participants left without a partner.
	Unpaired []string
}

// Result is the outcome of one pairing round.
type Result struct {
	// RoundID correlates this round in caller-side audit logs.
	RoundID uuid.UUID

	// Pairs is the final assignment, in solver commitment order.
	Pairs []Pair

	// Diagnostics describes the round; it never alters the result.
	Diagnostics Diagnostics
}

// options holds the orchestration knobs.
type options struct {
	seed         int64
	exactMaxSize int
	scoreCfg     score.Config
	scoreCfgSet  bool
	logger       *zap.Logger

	err error
}

// Option configures Match via functional arguments.
type Option func(*options)

// WithSeed fixes the RNG stream for the twice-participant choice
// (seed 0 selects the deterministic default stream).
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithExactMaxSize overrides the exact-vs-heuristic solver switchover.
// Negative sizes surface as assign.ErrOptionViolation.
func WithExactMaxSize(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = assign.ErrOptionViolation

			return
		}
		o.exactMaxSize = n
	}
}

// WithScoreConfig supplies a validated scoring configuration
// (see score.NewConfig); defaults apply otherwise.
func WithScoreConfig(cfg score.Config) Option {
	return func(o *options) {
		o.scoreCfg = cfg
		o.scoreCfgSet = true
	}
}

// WithLogger attaches a structured logger for round diagnostics;
// defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultEngineOptions() options {
	return options{
		exactMaxSize: assign.DefaultExactMaxSize,
		scoreCfg:     score.DefaultConfig(),
		logger:       zap.NewNop(),
	}
}
