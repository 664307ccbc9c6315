// Package community partitions a connection graph into communities: the
// connected components of the graph, used as a proxy for organizational
// silos when scoring candidate pairs.
//
// Detection is a breadth-first sweep from each unvisited node; every node
// reachable from the start shares its integer community id, and isolated
// nodes form singleton communities. Identifier values carry no meaning
// beyond equality — only "same community or not" matters downstream.
//
// Start nodes are taken in sorted identity order, so the assignment is
// fully deterministic for a given graph.
package community
