package ranking

// ComputeFrontier returns the IDs of Pareto-optimal candidates, in ranking order.
// A candidate is dominated when another candidate scores >= on every dimension
// and strictly better on at least one. O(n^2 * dims), fine for typical set sizes.
func ComputeFrontier(scored []ScoredCandidate) []string {
	var frontier []string
	for i := range scored {
		dominated := false
		for j := range scored {
			if i == j {
				continue
			}
			if dominates(scored[j], scored[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, scored[i].ID)
		}
	}
	return frontier
}

// dominates returns true if a dominates b on per-dimension scores.
func dominates(a, b ScoredCandidate) bool {
	strictlyBetter := false
	for d := range a.Dimensions {
		if a.Dimensions[d].Score < b.Dimensions[d].Score {
			return false
		}
		if a.Dimensions[d].Score > b.Dimensions[d].Score {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}
