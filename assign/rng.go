// Package assign - RNG policy for the odd-population designee choice.
//
// The only non-determinism in the whole engine is the uniform choice of the
// participant allowed to pair twice. Centralizing the RNG factory here
// keeps that choice seedable: same seed, same designee, reproducible test
// suites. No time-based sources anywhere.
package assign

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// RNG returns a deterministic *rand.Rand for the designee choice.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func RNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
