package assign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewpair/brewpair/assign"
)

func TestExpandOdd_EvenPopulationUnchanged(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	out, designee := assign.ExpandOdd(ids, []string{"a"}, assign.RNG(1))
	assert.Equal(t, ids, out)
	assert.Empty(t, designee)
}

func TestExpandOdd_NoVolunteer(t *testing.T) {
	ids := []string{"a", "b", "c"}
	out, designee := assign.ExpandOdd(ids, nil, assign.RNG(1))
	assert.Equal(t, ids, out)
	assert.Empty(t, designee, "no volunteer: odd count proceeds unchanged")
}

func TestExpandOdd_AppendsDesignee(t *testing.T) {
	ids := []string{"a", "b", "c"}
	out, designee := assign.ExpandOdd(ids, []string{"b"}, assign.RNG(7))
	require.Equal(t, "b", designee)
	require.Len(t, out, 4)
	assert.Equal(t, ids, out[:3], "original order preserved")
	assert.Equal(t, "b", out[3])
}

func TestExpandOdd_IgnoresAbsentVolunteers(t *testing.T) {
	ids := []string{"a", "b", "c"}
	// "ghost" volunteered but is not in the round; only "c" qualifies.
	_, designee := assign.ExpandOdd(ids, []string{"ghost", "c"}, assign.RNG(3))
	assert.Equal(t, "c", designee)
}

func TestExpandOdd_DeterministicUnderSeed(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	twice := []string{"a", "c", "e"}

	_, first := assign.ExpandOdd(ids, twice, assign.RNG(42))
	for i := 0; i < 10; i++ {
		_, again := assign.ExpandOdd(ids, twice, assign.RNG(42))
		assert.Equal(t, first, again)
	}

	// nil rng falls back to the deterministic default stream.
	_, d1 := assign.ExpandOdd(ids, twice, nil)
	_, d2 := assign.ExpandOdd(ids, twice, nil)
	assert.Equal(t, d1, d2)
}
