// Package selection implements in-place selection of the k-th smallest
// element (quickselect with median-of-three pivoting).
//
// Select partially partitions the slice around rank k in expected linear
// time without sorting either side, which is exactly what a k-d build
// needs: the median on the current axis in the middle, smaller-or-equal
// elements on the left, greater-or-equal elements on the right.
package selection

// Select reorders s in place so that s[k] holds the element of rank k
// under less, everything before index k compares <= s[k], and everything
// after compares >= s[k]. Neither side is sorted.
//
// less must describe a strict weak ordering. If it does not (NaN keys),
// the resulting arrangement is unspecified, though Select always
// terminates and never indexes out of bounds.
func Select[T any](s []T, k int, less func(a, b T) bool) {
	if k < 0 || k >= len(s) {
		panic("selection: rank out of range")
	}

	lo, hi := 0, len(s)
	for hi-lo > insertionThreshold {
		p := partition(s, lo, hi, less)
		switch {
		case k < p:
			hi = p
		case k > p:
			lo = p + 1
		default:
			return
		}
	}

	insertionSort(s[lo:hi], less)
}

// insertionThreshold is the subrange length below which Select falls back
// to insertion sort. Sorting a handful of elements is cheaper than
// further partitioning rounds.
const insertionThreshold = 12

// partition splits s[lo:hi] around a median-of-three pivot and returns
// the pivot's final index.
func partition[T any](s []T, lo, hi int, less func(a, b T) bool) int {
	mid := lo + (hi-lo)/2
	last := hi - 1

	// Median-of-three: order s[lo], s[mid], s[last], then park the median
	// at s[last] as the pivot.
	if less(s[mid], s[lo]) {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if less(s[last], s[lo]) {
		s[last], s[lo] = s[lo], s[last]
	}
	if less(s[last], s[mid]) {
		s[last], s[mid] = s[mid], s[last]
	}
	s[mid], s[last] = s[last], s[mid]

	pivot := s[last]
	i := lo
	for j := lo; j < last; j++ {
		if less(s[j], pivot) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[last] = s[last], s[i]

	return i
}

func insertionSort[T any](s []T, less func(a, b T) bool) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && less(s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
