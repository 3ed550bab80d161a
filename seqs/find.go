package seqs

import (
	"iter"

	"github.com/samber/mo"

	"seeker/fn"
)

// FirstBy returns the first element of seq satisfying the predicate,
// stopping the iteration at the first hit.
func FirstBy[T any](seq iter.Seq[T], predicate func(T) bool) mo.Option[T] {
	for v := range seq {
		if predicate(v) {
			return mo.Some(v)
		}
	}
	return mo.None[T]()
}

// LastBy returns the last element of seq satisfying the predicate.
// The whole sequence is consumed.
func LastBy[T any](seq iter.Seq[T], predicate func(T) bool) mo.Option[T] {
	res := mo.None[T]()
	for v := range seq {
		if predicate(v) {
			res = mo.Some(v)
		}
	}
	return res
}

// FirstIdxBy returns the position of the first element satisfying the
// predicate, counted from the start of the sequence. The iteration
// stops at the first hit.
func FirstIdxBy[T any](seq iter.Seq[T], predicate func(T) bool) mo.Option[int] {
	i := 0
	for v := range seq {
		if predicate(v) {
			return mo.Some(i)
		}
		i++
	}
	return mo.None[int]()
}

// LastIdxBy returns the position of the last element satisfying the
// predicate. The whole sequence is consumed.
func LastIdxBy[T any](seq iter.Seq[T], predicate func(T) bool) mo.Option[int] {
	res := mo.None[int]()
	i := 0
	for v := range seq {
		if predicate(v) {
			res = mo.Some(i)
		}
		i++
	}
	return res
}

// FirstIdxOf returns the position of the first element equal to target.
func FirstIdxOf[T comparable](seq iter.Seq[T], target T) mo.Option[int] {
	return FirstIdxBy(seq, fn.Bind1st(fn.Eq[T], target))
}

// AllIdxsBy yields, in ascending order, the position of every element
// satisfying the predicate. The result is lazy; stopping the consumer
// stops the scan.
func AllIdxsBy[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		i := 0
		for v := range seq {
			if predicate(v) {
				if !yield(i) {
					return
				}
			}
			i++
		}
	}
}

// AllIdxsOf yields the position of every element equal to target.
func AllIdxsOf[T comparable](seq iter.Seq[T], target T) iter.Seq[int] {
	return AllIdxsBy(seq, fn.Bind1st(fn.Eq[T], target))
}

// Contains reports whether seq yields an element equal to target,
// stopping at the first hit.
func Contains[T comparable](seq iter.Seq[T], target T) bool {
	return FirstIdxOf(seq, target).IsPresent()
}
