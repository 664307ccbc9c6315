// Package pairgraph models the connection graph of a pairing population:
// an undirected graph whose nodes are currently-active participants and
// whose edges aggregate historical meetings between two people.
//
// Shape invariants, enforced on every mutation:
//   - no self-loops and no parallel edges — repeated meetings of the same
//     unordered pair merge into one edge whose Count grows and whose date
//     list is appended to (nil placeholders preserve counts for
//     unparseable dates);
//   - an edge exists iff the pair has met at least once;
//   - only active participants appear; history touching anyone else is
//     dropped at build time (soft decay by attrition, not by time).
//
// All accessors take read locks, so a built Graph may be shared across
// goroutines; the engine itself is single-threaded per invocation.
package pairgraph
