package community_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewpair/brewpair/community"
	"github.com/brewpair/brewpair/pairgraph"
	"github.com/brewpair/brewpair/roster"
)

func buildGraph(t *testing.T, ids []string, meetings [][2]string) *pairgraph.Graph {
	t.Helper()

	entries := make([]roster.Entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, roster.Entry{Identity: id, Active: true})
	}
	history := make([]roster.Meeting, 0, len(meetings))
	for _, m := range meetings {
		history = append(history, roster.Meeting{A: m[0], B: m[1]})
	}

	return pairgraph.Build(entries, history)
}

// TestDetect_Components checks the reachability invariant: same component
// iff same id, plus singleton ids for isolated nodes.
func TestDetect_Components(t *testing.T) {
	g := buildGraph(t,
		[]string{"a", "b", "c", "d", "e", "loner"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"d", "e"}},
	)

	assignment := community.Detect(g)
	require.Len(t, assignment, 6)

	// Path-connected nodes share an id.
	assert.Equal(t, assignment["a"], assignment["b"])
	assert.Equal(t, assignment["b"], assignment["c"])
	assert.Equal(t, assignment["d"], assignment["e"])

	// Distinct components never share an id.
	assert.NotEqual(t, assignment["a"], assignment["d"])
	assert.NotEqual(t, assignment["a"], assignment["loner"])
	assert.NotEqual(t, assignment["d"], assignment["loner"])

	assert.Equal(t, 3, community.Count(assignment))
}

func TestDetect_AllIsolated(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, nil)

	assignment := community.Detect(g)
	require.Len(t, assignment, 3)
	assert.Equal(t, 3, community.Count(assignment), "isolated nodes form singleton communities")
}

func TestDetect_Deterministic(t *testing.T) {
	g := buildGraph(t,
		[]string{"a", "b", "c", "d"},
		[][2]string{{"a", "b"}, {"c", "d"}},
	)

	first := community.Detect(g)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, community.Detect(g))
	}
}

func TestDetect_NilAndEmpty(t *testing.T) {
	assert.Empty(t, community.Detect(nil))
	assert.Empty(t, community.Detect(pairgraph.New()))
	assert.Equal(t, 0, community.Count(nil))
}
