// Package assign turns a scored population into a round of pairs: it
// builds the cost/benefit matrix, expands an odd population by duplicating
// one willing participant, and solves the constrained one-to-one
// assignment that minimizes total pairing cost.
//
// Two solver modes share one contract:
//
//   - Exact (population ≤ ExactMaxSize): depth-first branch-and-bound over
//     partial matchings with an admissible cheapest-remaining lower bound.
//     Guaranteed optimal — unlike greedy local minimization, which can
//     strand two participants whose only remaining options are penalized
//     repeats.
//   - Heuristic (larger populations): sorted greedy selection with a
//     stranding deterrent — a candidate that would leave some remaining
//     participant with only penalized options pays a surcharge before
//     costs are compared, discouraging but not forbidding the choice.
//
// Degenerate inputs (nil, empty or non-square matrices, populations below
// two) are recoverable and yield an empty pair list, never an error.
package assign
