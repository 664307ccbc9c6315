// Package engine orchestrates one pairing round end to end: build the
// connection graph from roster and history, detect communities, expand an
// odd population through a willing twice-participant, price every candidate
// pair, solve the assignment, and report diagnostics.
//
// Match is a pure function boundary — stateless between calls, no I/O, and
// never fatal for well-typed inputs: degenerate populations, empty or
// fully-saturated histories all yield a best-effort Result with a nil
// error. The single source of non-determinism (the twice-participant
// choice) is seedable via WithSeed.
//
// Diagnostics are observational only: they are re-derived from the final
// pair list and the graph, never from solver internals, so a caller can
// always reproduce them.
package engine
