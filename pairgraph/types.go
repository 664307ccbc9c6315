// Package pairgraph declares the Graph type, its Meetings edge payload,
// and the sentinel errors shared by all graph operations.
package pairgraph

import (
	"errors"
	"sync"
	"time"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyIdentity indicates an operation received an empty participant key.
	ErrEmptyIdentity = errors.New("pairgraph: participant identity is empty")

	// ErrParticipantNotFound indicates an operation referenced an unknown participant.
	ErrParticipantNotFound = errors.New("pairgraph: participant not found")

	// ErrSelfMeeting indicates a meeting was recorded between a participant and themselves.
	ErrSelfMeeting = errors.New("pairgraph: self-meeting not allowed")
)

// Meetings is the payload of one edge: how often the two endpoints met and
// when. Dates holds one element per historical meeting, in record order; a
// nil element stands in for a date the caller could not normalize, so
// len(Dates) always equals Count.
type Meetings struct {
	// Count is the number of historical meeting records for this pair.
	Count int

	// Dates lists the meeting dates, nil placeholders included.
	Dates []*time.Time
}

// Graph is the in-memory connection graph.
//
// nodes holds the active participant set; adjacency maps both directions of
// every undirected edge to a single shared *Meetings payload, so merging a
// repeated meeting updates both views at once.
type Graph struct {
	mu sync.RWMutex

	nodes     map[string]struct{}
	adjacency map[string]map[string]*Meetings
	edgeCount int
}

// New creates an empty connection graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		nodes:     make(map[string]struct{}),
		adjacency: make(map[string]map[string]*Meetings),
	}
}
