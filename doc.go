// Package brewpair assigns people into pairs for recurring coffee-meetup
// rounds, avoiding recent repeats and favoring structurally beneficial
// matches — cross-group connections and network diversity.
//
// 🚀 What is brewpair?
//
//	A small, deterministic matching engine that:
//		• Builds a connection graph from past pairing history (pairgraph)
//		• Detects communities of frequently co-paired people (community)
//		• Scores every candidate pairing on diversity and network structure (score)
//		• Solves a min-cost one-to-one assignment: exact branch-and-bound for
//		  small rounds, greedy with a stranding deterrent for large ones (assign)
//		• Orchestrates a round and reports diagnostics (engine)
//
// The engine is a pure function boundary: it consumes an already-typed
// roster and meeting history and returns a pair list plus diagnostics.
// Storage, transfer protocols, configuration files and date normalization
// belong to its callers.
//
// Quick start:
//
//	res, err := engine.Match(entries, history, engine.WithSeed(42))
//
// No condition inside the engine is fatal for well-typed inputs: malformed
// rows are skipped, unparseable dates become placeholders, degenerate
// populations yield empty results.
package brewpair
