package sliceutil

import "slices"

// Reversed returns a new slice with the elements of collection in
// reverse order. The input is never modified.
func Reversed[T any](collection []T) []T {
	res := slices.Clone(collection)
	slices.Reverse(res)
	return res
}
