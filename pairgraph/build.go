package pairgraph

import "github.com/brewpair/brewpair/roster"

// Build constructs the connection graph for one pairing round.
//
// Nodes are created only for active roster entries. History rows are merged
// into edges only when both endpoints are active nodes; rows touching
// inactive or unknown identities are dropped, which retires stale
// connections by attrition rather than by timestamp. Malformed rows (empty
// identity, self-meeting) are skipped silently — partial data is the
// expected steady state, never an error.
//
// Build is idempotent: identical inputs always yield identical node sets,
// edge sets and per-edge meeting counts.
//
// Complexity: O(R + H) over roster and history lengths.
func Build(entries []roster.Entry, history []roster.Meeting) *Graph {
	g := New()

	for _, e := range entries {
		if !e.Active {
			continue
		}
		// AddParticipant only rejects empty identities; skip those rows.
		_ = g.AddParticipant(e.Identity)
	}

	for _, m := range history {
		// RecordMeeting rejects self-meetings and endpoints that are not
		// active nodes; both are drop-the-row conditions here.
		_ = g.RecordMeeting(m.A, m.B, m.Occurred)
	}

	return g
}
