package ranking

// SortValues returns a new slice holding the same values in non-decreasing order.
// The input is never modified.
//
// Three-way partition around the middle element: strictly-less and strictly-greater
// values recurse, pivot-equal values collapse into the middle. O(n^2) worst case,
// fine for the tens of candidates a ranking sees.
func SortValues(values []float64) []float64 {
	if len(values) <= 1 {
		return append([]float64(nil), values...)
	}

	pivot := values[len(values)/2]
	var less, equal, greater []float64
	for _, v := range values {
		switch {
		case v < pivot:
			less = append(less, v)
		case v > pivot:
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	sorted := make([]float64, 0, len(values))
	sorted = append(sorted, SortValues(less)...)
	sorted = append(sorted, equal...)
	sorted = append(sorted, SortValues(greater)...)
	return sorted
}
