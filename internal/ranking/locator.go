package ranking

import "math"

// NearestIndex returns the index of the element of sorted closest to query.
// sorted must be non-decreasing. When two elements are equally close the lower
// index wins, so a run of equal values always resolves to its first element.
// An empty slice yields 0; callers must not index into it.
func NearestIndex(sorted []float64, query float64) int {
	if len(sorted) == 0 {
		return 0
	}

	low, high := 0, len(sorted)-1
	for low < high {
		mid := (low + high) / 2
		if sorted[mid] == query {
			low = mid
			break
		}
		if query > sorted[mid] {
			low = mid + 1
		} else {
			high = mid
		}
	}

	// low now points at an element >= query, or at the last element. The only
	// other contender is its left neighbour.
	if low > 0 && math.Abs(sorted[low-1]-query) <= math.Abs(sorted[low]-query) {
		low--
	}
	for low > 0 && sorted[low-1] == sorted[low] {
		low--
	}
	return low
}
