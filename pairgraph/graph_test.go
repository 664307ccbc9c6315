package pairgraph_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewpair/brewpair/pairgraph"
)

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return &t
}

func TestGraph_AddParticipant(t *testing.T) {
	g := pairgraph.New()

	require.NoError(t, g.AddParticipant("alice"))
	require.NoError(t, g.AddParticipant("alice")) // idempotent
	assert.Equal(t, 1, g.NodeCount())
	assert.True(t, g.HasParticipant("alice"))
	assert.False(t, g.HasParticipant("bob"))

	assert.ErrorIs(t, g.AddParticipant(""), pairgraph.ErrEmptyIdentity)
}

func TestGraph_RecordMeeting_MergesParallelEdges(t *testing.T) {
	g := pairgraph.New()
	require.NoError(t, g.AddParticipant("alice"))
	require.NoError(t, g.AddParticipant("bob"))

	require.NoError(t, g.RecordMeeting("alice", "bob", day("2026-01-05")))
	require.NoError(t, g.RecordMeeting("bob", "alice", day("2026-02-02"))) // reversed order, same edge
	require.NoError(t, g.RecordMeeting("alice", "bob", nil))               // unparseable date placeholder

	assert.Equal(t, 1, g.EdgeCount(), "parallel meetings must merge into one edge")

	m, ok := g.MeetingsBetween("alice", "bob")
	require.True(t, ok)
	assert.Equal(t, 3, m.Count)
	require.Len(t, m.Dates, 3)
	assert.Nil(t, m.Dates[2], "unparseable dates are kept as nil placeholders")
}

func TestGraph_RecordMeeting_Rejections(t *testing.T) {
	g := pairgraph.New()
	require.NoError(t, g.AddParticipant("alice"))

	assert.ErrorIs(t, g.RecordMeeting("alice", "alice", nil), pairgraph.ErrSelfMeeting)
	assert.ErrorIs(t, g.RecordMeeting("alice", "ghost", nil), pairgraph.ErrParticipantNotFound)
	assert.ErrorIs(t, g.RecordMeeting("", "alice", nil), pairgraph.ErrEmptyIdentity)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_DegreeNeighborsCommon(t *testing.T) {
	g := pairgraph.New()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddParticipant(id))
	}
	require.NoError(t, g.RecordMeeting("a", "b", nil))
	require.NoError(t, g.RecordMeeting("a", "c", nil))
	require.NoError(t, g.RecordMeeting("b", "c", nil))

	deg, err := g.Degree("a")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	nbrs, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, nbrs)

	common, err := g.CommonNeighbors("a", "b")
	require.NoError(t, err)
	assert.Equal(t, 1, common) // c

	_, err = g.Degree("ghost")
	assert.True(t, errors.Is(err, pairgraph.ErrParticipantNotFound))

	_, err = g.CommonNeighbors("a", "ghost")
	assert.ErrorIs(t, err, pairgraph.ErrParticipantNotFound)
}

func TestGraph_ParticipantIDsSorted(t *testing.T) {
	g := pairgraph.New()
	for _, id := range []string{"zoe", "alice", "mia"} {
		require.NoError(t, g.AddParticipant(id))
	}
	assert.Equal(t, []string{"alice", "mia", "zoe"}, g.ParticipantIDs())
}
