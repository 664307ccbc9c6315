package assign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewpair/brewpair/assign"
	"github.com/brewpair/brewpair/community"
	"github.com/brewpair/brewpair/pairgraph"
	"github.com/brewpair/brewpair/roster"
	"github.com/brewpair/brewpair/score"
)

func TestBuildCostMatrix_CellPolicy(t *testing.T) {
	cfg, err := score.NewConfig()
	require.NoError(t, err)

	entries := []roster.Entry{
		{Identity: "a", Active: true},
		{Identity: "b", Active: true},
		{Identity: "c", Active: true},
	}
	history := []roster.Meeting{{A: "a", B: "b"}}
	g := pairgraph.Build(entries, history)
	comms := community.Detect(g)

	ids := []string{"a", "b", "c"}
	m := assign.BuildCostMatrix(ids, g, comms, cfg)
	require.NotNil(t, m)

	rows, cols := m.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)

	// Diagonal is priced even above the already-met penalty.
	for i := 0; i < 3; i++ {
		assert.Greater(t, m.At(i, i), cfg.HardPenalty)
	}

	// Already-met pair carries the hard penalty, both cells.
	assert.Equal(t, cfg.HardPenalty, m.At(0, 1))
	assert.Equal(t, cfg.HardPenalty, m.At(1, 0))

	// Never-met pairs carry finite negative costs, symmetric in value.
	assert.Negative(t, m.At(0, 2))
	assert.Equal(t, m.At(0, 2), m.At(2, 0))
	assert.Equal(t, m.At(1, 2), m.At(2, 1))
}

func TestBuildCostMatrix_DuplicateIdentity(t *testing.T) {
	cfg, err := score.NewConfig()
	require.NoError(t, err)

	entries := []roster.Entry{
		{Identity: "a", Active: true},
		{Identity: "b", Active: true},
		{Identity: "c", Active: true},
	}
	g := pairgraph.Build(entries, nil)
	comms := community.Detect(g)

	// Odd round: "a" was duplicated by the odd-population handler.
	ids := []string{"a", "b", "c", "a"}
	m := assign.BuildCostMatrix(ids, g, comms, cfg)

	// The duplicate must never be matched to its own original: the
	// self-pair cell strictly dominates the already-met penalty, so even a
	// fully-saturated round prefers a covering repeat matching.
	assert.Greater(t, m.At(0, 3), cfg.HardPenalty)
	assert.Equal(t, m.At(0, 3), m.At(3, 0))

	// But it scores normally against everyone else.
	assert.Negative(t, m.At(3, 1))
	assert.Negative(t, m.At(3, 2))
}

// TestBuildCostMatrix_SelfPairDominatesRepeats pins the ordering that
// keeps saturated odd rounds covering: repeat pairs stay at the hard
// penalty, self-pairs cost strictly more.
func TestBuildCostMatrix_SelfPairDominatesRepeats(t *testing.T) {
	cfg, err := score.NewConfig()
	require.NoError(t, err)

	entries := []roster.Entry{
		{Identity: "a", Active: true},
		{Identity: "b", Active: true},
	}
	g := pairgraph.Build(entries, []roster.Meeting{{A: "a", B: "b"}})
	comms := community.Detect(g)

	ids := []string{"a", "b", "a"} // "a" duplicated by the odd handler
	m := assign.BuildCostMatrix(ids, g, comms, cfg)

	assert.Equal(t, cfg.HardPenalty, m.At(0, 1), "repeat pair keeps the plain penalty")
	assert.Greater(t, m.At(0, 2), m.At(0, 1), "self-pair must cost strictly more than a repeat")
}

func TestBuildCostMatrix_Empty(t *testing.T) {
	cfg, err := score.NewConfig()
	require.NoError(t, err)

	assert.Nil(t, assign.BuildCostMatrix(nil, pairgraph.New(), nil, cfg))
}
