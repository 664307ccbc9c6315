package pairgraph

import (
	"sort"
	"time"
)

// AddParticipant inserts a node for id. Adding an existing participant is a
// no-op. Returns ErrEmptyIdentity for an empty key.
// Complexity: O(1).
func (g *Graph) AddParticipant(id string) error {
	if id == "" {
		return ErrEmptyIdentity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = struct{}{}
		g.adjacency[id] = make(map[string]*Meetings)
	}

	return nil
}

// RecordMeeting merges one historical meeting into the edge between a and b,
// creating the edge on first contact. occurred may be nil (unparseable
// source date); the placeholder is appended so the date list stays in step
// with the count.
//
// Returns ErrSelfMeeting for a==b and ErrParticipantNotFound when either
// endpoint is not a node — callers drop such rows rather than failing.
// Complexity: O(1).
func (g *Graph) RecordMeeting(a, b string, occurred *time.Time) error {
	if a == "" || b == "" {
		return ErrEmptyIdentity
	}
	if a == b {
		return ErrSelfMeeting
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[a]; !ok {
		return ErrParticipantNotFound
	}
	if _, ok := g.nodes[b]; !ok {
		return ErrParticipantNotFound
	}

	m := g.adjacency[a][b]
	if m == nil {
		// First contact: one shared payload, visible from both directions.
		m = &Meetings{}
		g.adjacency[a][b] = m
		g.adjacency[b][a] = m
		g.edgeCount++
	}
	m.Count++
	m.Dates = append(m.Dates, occurred)

	return nil
}

// HasParticipant reports whether id is a node.
// Complexity: O(1).
func (g *Graph) HasParticipant(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// HasMet reports whether an edge exists between a and b, i.e. the pair has
// met at least once.
// Complexity: O(1).
func (g *Graph) HasMet(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[a][b] != nil
}

// MeetingsBetween returns a copy of the edge payload for (a, b).
// ok=false when no edge exists (including unknown endpoints).
// Complexity: O(Count) for the date copy.
func (g *Graph) MeetingsBetween(a, b string) (Meetings, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	m := g.adjacency[a][b]
	if m == nil {
		return Meetings{}, false
	}

	out := Meetings{Count: m.Count, Dates: make([]*time.Time, len(m.Dates))}
	copy(out.Dates, m.Dates)

	return out, true
}

// Degree returns the number of distinct past partners of id, or
// ErrParticipantNotFound for an unknown node.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, ErrParticipantNotFound
	}

	return len(g.adjacency[id]), nil
}

// Neighbors returns the distinct past partners of id in sorted order, or
// ErrParticipantNotFound for an unknown node. Sorting keeps traversals
// reproducible.
// Complexity: O(d log d) where d is the degree.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrParticipantNotFound
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// CommonNeighbors counts the past partners a and b share. Unknown endpoints
// yield ErrParticipantNotFound.
// Complexity: O(min(da, db)).
func (g *Graph) CommonNeighbors(a, b string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	na, ok := g.adjacency[a]
	if !ok {
		return 0, ErrParticipantNotFound
	}
	nb, ok := g.adjacency[b]
	if !ok {
		return 0, ErrParticipantNotFound
	}
	if len(nb) < len(na) {
		na, nb = nb, na
	}

	var common int
	for nbr := range na {
		if _, hit := nb[nbr]; hit {
			common++
		}
	}

	return common, nil
}

// ParticipantIDs returns all node identities in sorted order.
// Complexity: O(V log V).
func (g *Graph) ParticipantIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// NodeCount returns the number of participants in the graph.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of distinct pairs that have ever met.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
