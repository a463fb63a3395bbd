package interp

// SearchSorted returns the smallest index i in [0, len(x)] such that
// x[i] > v, i.e. the insertion point that keeps x sorted when equal
// values are treated as "not greater".  This is an upper-bound search:
// ties move the lower bound up, which pairs with the edge-clamp policy
// in Row.At.
//
// x must be sorted ascending.  O(log M) comparisons, no allocation.
func SearchSorted[T Float](x []T, v T) int {
	low, high := -1, len(x)
	// Invariant: x[low] <= v < x[high], with virtual x[-1] = -inf and
	// x[len(x)] = +inf.
	for high-low > 1 {
		probe := (low + high) / 2
		if x[probe] > v {
			high = probe
		} else {
			low = probe
		}
	}

	return high
}
