package score

import (
	"errors"
	"math"

	"go.uber.org/zap"
)

// Default scoring constants. They are starting points, not truths; tune via
// the With* options.
const (
	// DefaultDiversityBase is the floor score every never-met pair receives.
	DefaultDiversityBase = 10.0

	// DefaultDiversityWeight and DefaultNetworkWeight blend the two
	// heuristics. The weights of a valid Config always sum to 1.
	DefaultDiversityWeight = 0.6
	DefaultNetworkWeight   = 0.4

	// DefaultCrossCommunityBonus rewards pairs spanning two communities.
	DefaultCrossCommunityBonus = 5.0

	// DefaultBridgeBonus rewards joining a well-connected participant with
	// an isolated one; it applies when the degree gap exceeds
	// DefaultBridgeDegreeGap.
	DefaultBridgeBonus     = 3.0
	DefaultBridgeDegreeGap = 2

	// DefaultHardPenalty is the cost of a prohibited pairing (already met,
	// or a participant against themselves). Several orders of magnitude
	// above any reachable composite score, so it is chosen only when no
	// alternative exists.
	DefaultHardPenalty = 1e6

	// weightSumTolerance bounds the acceptable drift of the weight sum
	// from 1 (floating-point slack only, not a policy knob).
	weightSumTolerance = 1e-9
)

// ErrWeightSum is returned by NewConfig when the diversity and network
// weights do not sum to 1.
var ErrWeightSum = errors.New("score: diversity and network weights must sum to 1")

// Config carries every scoring knob as one immutable value, so scoring
// stays referentially transparent and testable in isolation.
type Config struct {
	// DiversityWeight and NetworkWeight blend the two heuristics;
	// they must sum to 1.
	DiversityWeight float64
	NetworkWeight   float64

	// CrossCommunityBonus is added when the two participants belong to
	// different communities.
	CrossCommunityBonus float64

	// BridgeBonus is added when the participants' degrees differ by more
	// than BridgeDegreeGap.
	BridgeBonus     float64
	BridgeDegreeGap int

	// HardPenalty is the prohibitive cost for already-met and self pairs.
	HardPenalty float64

	// Logger receives best-effort debug notes on malformed lookups.
	// Defaults to a no-op logger.
	Logger *zap.Logger
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithWeights sets the diversity/network blend. Validation happens in
// NewConfig, not here.
func WithWeights(diversity, network float64) Option {
	return func(c *Config) {
		c.DiversityWeight = diversity
		c.NetworkWeight = network
	}
}

// WithCrossCommunityBonus sets the bonus for community-spanning pairs.
func WithCrossCommunityBonus(bonus float64) Option {
	return func(c *Config) { c.CrossCommunityBonus = bonus }
}

// WithBridgeBonus sets the bridge-building bonus and the degree gap that
// triggers it.
func WithBridgeBonus(bonus float64, degreeGap int) Option {
	return func(c *Config) {
		c.BridgeBonus = bonus
		c.BridgeDegreeGap = degreeGap
	}
}

// WithHardPenalty overrides the prohibitive pairing cost.
func WithHardPenalty(penalty float64) Option {
	return func(c *Config) { c.HardPenalty = penalty }
}

// WithLogger attaches a logger for best-effort lookup diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// DefaultConfig returns the default scoring configuration.
func DefaultConfig() Config {
	return Config{
		DiversityWeight:     DefaultDiversityWeight,
		NetworkWeight:       DefaultNetworkWeight,
		CrossCommunityBonus: DefaultCrossCommunityBonus,
		BridgeBonus:         DefaultBridgeBonus,
		BridgeDegreeGap:     DefaultBridgeDegreeGap,
		HardPenalty:         DefaultHardPenalty,
		Logger:              zap.NewNop(),
	}
}

// NewConfig builds a validated Config from the defaults plus opts.
// Returns ErrWeightSum when the blend weights do not sum to 1, and rejects
// non-finite or negative weights and penalties the same way.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	if c.DiversityWeight < 0 || c.NetworkWeight < 0 {
		return Config{}, ErrWeightSum
	}
	sum := c.DiversityWeight + c.NetworkWeight
	if math.IsNaN(sum) || math.Abs(sum-1) > weightSumTolerance {
		return Config{}, ErrWeightSum
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	return c, nil
}
