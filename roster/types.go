package roster

import "time"

// Entry is one fully-typed roster row: a participant eligible for pairing.
//
// Identity uniquely identifies the participant (typically an email).
// Entries are reconstructed fresh from the roster on every run; the engine
// never persists them.
type Entry struct {
	// Identity is the unique participant key. Never empty for a valid Entry.
	Identity string

	// Active reports whether the participant takes part in the current round.
	Active bool

	// PairTwice marks a participant willing to appear in two pairs when the
	// active population is odd.
	PairTwice bool
}

// Meeting is one historical pairing event between two participants.
//
// Occurred is nil when the caller could not normalize the source date; the
// event still counts toward the pair's meeting total.
type Meeting struct {
	// A and B are the participant identities of the pairing.
	A string
	B string

	// Occurred is the meeting date, or nil for an unparseable source value.
	Occurred *time.Time
}
