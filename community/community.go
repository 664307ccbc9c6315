package community

import "github.com/brewpair/brewpair/pairgraph"

// Detect assigns every participant in g a community identifier such that
// two participants share an id iff some path of historical pairings
// connects them. A nil graph yields an empty assignment.
//
// Complexity: O(V + E) traversal plus O(V log V) for the deterministic
// start order.
func Detect(g *pairgraph.Graph) map[string]int {
	if g == nil {
		return map[string]int{}
	}

	ids := g.ParticipantIDs()
	assignment := make(map[string]int, len(ids))

	var next int
	for _, start := range ids {
		if _, seen := assignment[start]; seen {
			continue
		}

		// BFS: flood the component reachable from start with one id.
		queue := []string{start}
		assignment[start] = next
		for qi := 0; qi < len(queue); qi++ {
			cur := queue[qi]
			nbrs, err := g.Neighbors(cur)
			if err != nil {
				continue // node vanished mid-walk; cannot happen on a quiescent graph
			}
			for _, nbr := range nbrs {
				if _, seen := assignment[nbr]; !seen {
					assignment[nbr] = next
					queue = append(queue, nbr)
				}
			}
		}
		next++
	}

	return assignment
}

// Count returns the number of distinct communities in an assignment.
// Complexity: O(V).
func Count(assignment map[string]int) int {
	seen := make(map[int]struct{}, len(assignment))
	for _, id := range assignment {
		seen[id] = struct{}{}
	}

	return len(seen)
}
