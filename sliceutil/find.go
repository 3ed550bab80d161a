// Package sliceutil provides generic search primitives over slices:
// locating elements or indices by predicate or by value, and exact
// subsequence matching.
//
// All functions treat their inputs as read-only and allocate fresh
// outputs. "Not found" is a normal outcome, reported as an empty
// mo.Option or an empty index slice, never as an error. Predicates
// must be pure: the last-match variants run them against a reversed
// copy of the input, so a side-effecting predicate would observe a
// different visit order.
package sliceutil

import (
	"github.com/samber/mo"

	"seeker/fn"
)

// FindFirstBy returns the first element satisfying the predicate,
// scanning from the start of the collection.
func FindFirstBy[T any](collection []T, predicate func(T) bool) mo.Option[T] {
	if len(collection) == 0 {
		return mo.None[T]()
	}
	_ = collection[len(collection)-1] // BCE hint
	for _, v := range collection {
		if predicate(v) {
			return mo.Some(v)
		}
	}
	return mo.None[T]()
}

// FindLastBy returns the last element satisfying the predicate. It is
// FindFirstBy over a reversed copy, so both directions share one scan
// and can never disagree on tie-breaking.
func FindLastBy[T any](collection []T, predicate func(T) bool) mo.Option[T] {
	return FindFirstBy(Reversed(collection), predicate)
}

// FindFirstIdxBy returns the index of the first element satisfying the
// predicate.
func FindFirstIdxBy[T any](collection []T, predicate func(T) bool) mo.Option[int] {
	if len(collection) == 0 {
		return mo.None[int]()
	}
	_ = collection[len(collection)-1] // BCE hint
	for i, v := range collection {
		if predicate(v) {
			return mo.Some(i)
		}
	}
	return mo.None[int]()
}

// FindLastIdxBy returns the index of the last element satisfying the
// predicate, in the coordinates of the original slice. The index found
// in the reversed copy is corrected through Option.Map, so an empty
// result propagates unchanged.
func FindLastIdxBy[T any](collection []T, predicate func(T) bool) mo.Option[int] {
	n := len(collection)
	return FindFirstIdxBy(Reversed(collection), predicate).Map(func(i int) (int, bool) {
		return n - (i + 1), true
	})
}

// FindFirstIdx returns the index of the first element equal to target.
func FindFirstIdx[T comparable](collection []T, target T) mo.Option[int] {
	return FindFirstIdxBy(collection, fn.Bind1st(fn.Eq[T], target))
}

// FindLastIdx returns the index of the last element equal to target.
func FindLastIdx[T comparable](collection []T, target T) mo.Option[int] {
	return FindLastIdxBy(collection, fn.Bind1st(fn.Eq[T], target))
}

// FindAllIdxsBy returns the indices of every element satisfying the
// predicate, in ascending order. A single forward pass that never
// stops early; no match yields an empty slice.
func FindAllIdxsBy[T any](collection []T, predicate func(T) bool) []int {
	res := []int{}
	if len(collection) == 0 {
		return res
	}
	_ = collection[len(collection)-1] // BCE hint
	for i, v := range collection {
		if predicate(v) {
			res = append(res, i)
		}
	}
	return res
}

// FindAllIdxsOf returns the indices of every element equal to target,
// in ascending order.
func FindAllIdxsOf[T comparable](collection []T, target T) []int {
	return FindAllIdxsBy(collection, fn.Bind1st(fn.Eq[T], target))
}
