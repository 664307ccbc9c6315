package roster

import (
	"strconv"
	"strings"
)

// twiceMarker is the textual flag value that grants the may-pair-twice
// permission. Comparison is trimmed and case-folded.
const twiceMarker = "twice"

// ParseActive reports whether a heterogeneously encoded "active" cell is
// truthy. Accepted encodings: boolean true, the number 1 (any integer or
// float type), and the case-insensitive string "true" or "1". Everything
// else — including nil — is inactive.
//
// Complexity: O(len(s)) for string inputs, O(1) otherwise.
func ParseActive(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		s := strings.TrimSpace(x)
		if strings.EqualFold(s, "true") {
			return true
		}
		n, err := strconv.Atoi(s)

		return err == nil && n == 1
	case int:
		return x == 1
	case int64:
		return x == 1
	case float64:
		return x == 1
	default:
		return false
	}
}

// ParseTwice reports whether a flag cell grants the may-pair-twice
// permission: the trimmed, case-folded value must equal "twice". Non-string
// values never qualify.
func ParseTwice(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}

	return strings.EqualFold(strings.TrimSpace(s), twiceMarker)
}

// NormalizeEntry converts one raw roster row into a typed Entry.
// A row with a missing (empty after trimming) identity yields ok=false and
// must be skipped by the caller — silently, per the engine's error policy.
func NormalizeEntry(identity string, active, twice any) (Entry, bool) {
	id := strings.TrimSpace(identity)
	if id == "" {
		return Entry{}, false
	}

	return Entry{
		Identity:  id,
		Active:    ParseActive(active),
		PairTwice: ParseTwice(twice),
	}, true
}
