package sliceutil

import "slices"

// FindAllInstancesOf returns every start index at which token occurs in
// collection as a contiguous, element-by-element match, including
// occurrences that overlap each other. A window of len(token) slides
// from index 0 through len(collection)-len(token) inclusive and each
// window is compared in full, so the worst case is
// O((len(collection)-len(token)+1) * len(token)).
//
// A token longer than the collection matches nowhere. An empty token
// panics.
func FindAllInstancesOf[T comparable](collection, token []T) []int {
	if len(token) == 0 {
		panic("sliceutil.FindAllInstancesOf: empty token")
	}
	res := []int{}
	if len(token) > len(collection) {
		return res
	}
	last := len(collection) - len(token)
	for i := 0; i <= last; i++ {
		if slices.Equal(collection[i:i+len(token)], token) {
			res = append(res, i)
		}
	}
	return res
}

// FindAllInstancesOfNonOverlapping returns the greedy left-to-right
// subset of FindAllInstancesOf in which no two selected occurrences
// overlap: after accepting a start index, the next accepted one must
// begin at or after the end of the accepted window.
func FindAllInstancesOfNonOverlapping[T comparable](collection, token []T) []int {
	overlapping := FindAllInstancesOf(collection, token)
	res := []int{}
	for _, idx := range overlapping {
		if len(res) == 0 || res[len(res)-1]+len(token) <= idx {
			res = append(res, idx)
		}
	}
	return res
}
