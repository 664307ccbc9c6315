package assign

import "math/rand"

// ExpandOdd prepares an odd-sized population for matching by appending a
// second copy of one participant who volunteered to pair twice. The
// duplicate becomes a distinct matrix row/column so it can meet a second
// partner; the cost matrix prices it against its own original at the hard
// penalty so the two copies never pair with each other unless nothing else
// exists.
//
// Selection is uniform over the twice-flagged candidates actually present
// in ids, using rng (nil ⇒ the deterministic default stream). Even-sized
// populations and rounds with no volunteer are returned unchanged with an
// empty designee — the caller then simply reports one unpaired participant.
//
// Complexity: O(len(ids) + len(twice)).
func ExpandOdd(ids []string, twice []string, rng *rand.Rand) ([]string, string) {
	if len(ids)%2 == 0 {
		return ids, ""
	}

	present := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		present[id] = struct{}{}
	}

	// Keep candidate order aligned with the twice list for determinism
	// under a fixed seed.
	candidates := make([]string, 0, len(twice))
	seen := make(map[string]struct{}, len(twice))
	for _, id := range twice {
		if _, ok := present[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		candidates = append(candidates, id)
	}
	if len(candidates) == 0 {
		return ids, ""
	}

	r := rng
	if r == nil {
		r = RNG(0)
	}
	designee := candidates[r.Intn(len(candidates))]

	out := make([]string, 0, len(ids)+1)
	out = append(out, ids...)
	out = append(out, designee)

	return out, designee
}
