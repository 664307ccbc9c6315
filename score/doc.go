// Package score computes the desirability of pairing two participants who
// have never met, combining two weighted heuristics over the connection
// graph and its community assignment:
//
//   - Diversity — fewer mutual past partners means the two likely sit in
//     different social clusters, so the pair scores higher.
//   - Network — a fixed bonus for crossing community boundaries, plus a
//     bridge-building bonus for joining a well-connected participant with
//     an isolated one. The bonuses are additive and independent.
//
// Composite blends both by configurable weights (which must sum to 1) and
// Cost negates the blend into the minimization view used by the assignment
// solver. Already-met pairs never reach this package: the cost matrix
// assigns them the hard-constraint penalty directly.
//
// Scoring is referentially transparent: all knobs live in an immutable
// Config value, never in package state. Malformed graph lookups degrade to
// the base score with a best-effort debug log — they are never fatal.
package score
