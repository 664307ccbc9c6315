// Package assign declares the solver's result type, tunables and sentinel
// errors.
package assign

import (
	"errors"

	"github.com/brewpair/brewpair/score"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("assign: invalid option supplied")

// Default solver tunables.
const (
	// DefaultExactMaxSize is the largest population solved exactly.
	// Above it the greedy heuristic takes over; the exact search's running
	// time is unbounded in principle, the heuristic's is O(n²·k).
	DefaultExactMaxSize = 12

	// DefaultStrandSurcharge is the deterrent added to a greedy candidate
	// that would strand a remaining participant with only penalized
	// options. Large enough to matter, far below the hard penalty so the
	// choice stays possible when nothing better exists.
	DefaultStrandSurcharge = 1e3

	// defaultEpsilon guards strict-improvement comparisons against
	// floating-point drift.
	defaultEpsilon = 1e-9
)

// Pair is one matched pair of row/column indices into the cost matrix,
// with I < J.
type Pair struct {
	I int
	J int
}

// Options carries the solver tunables. Zero value is not useful; build via
// Solve's functional options, which start from defaults.
type Options struct {
	// ExactMaxSize bounds the population solved by exhaustive
	// branch-and-bound; larger rounds use the greedy heuristic.
	ExactMaxSize int

	// StrandSurcharge is the greedy stranding deterrent.
	StrandSurcharge float64

	// HardPenalty mirrors the scorer's prohibitive cost; any matrix cell at
	// or above it counts as a penalized (already-met or self) option.
	HardPenalty float64

	// Epsilon is the strict-improvement tolerance of the exact search.
	Epsilon float64

	// internal error recorded during option parsing
	err error
}

// Option configures solver behavior via functional arguments. Invalid
// values are recorded and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// DefaultOptions returns the solver defaults: exact search up to
// DefaultExactMaxSize, the default stranding surcharge, and the scorer's
// default hard penalty.
func DefaultOptions() Options {
	return Options{
		ExactMaxSize:    DefaultExactMaxSize,
		StrandSurcharge: DefaultStrandSurcharge,
		HardPenalty:     score.DefaultHardPenalty,
		Epsilon:         defaultEpsilon,
	}
}

// WithExactMaxSize sets the exact-vs-heuristic switchover size.
//
//	n > 0: solve populations up to n exactly
//	n == 0: always use the heuristic
//	n < 0: invalid → ErrOptionViolation
func WithExactMaxSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation

			return
		}
		o.ExactMaxSize = n
	}
}

// WithStrandSurcharge sets the greedy stranding deterrent; negative values
// are invalid.
func WithStrandSurcharge(s float64) Option {
	return func(o *Options) {
		if s < 0 {
			o.err = ErrOptionViolation

			return
		}
		o.StrandSurcharge = s
	}
}

// WithHardPenalty tells the solver which cost level marks a prohibited
// pairing; it must match the penalty used to build the matrix.
func WithHardPenalty(p float64) Option {
	return func(o *Options) {
		if p <= 0 {
			o.err = ErrOptionViolation

			return
		}
		o.HardPenalty = p
	}
}
