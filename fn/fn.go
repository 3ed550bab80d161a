// Package fn provides small generic function combinators used to build
// predicates for the search helpers.
package fn

// Bind1st fixes the first argument of a binary function, producing a
// unary function of the remaining argument.
func Bind1st[A, B, C any](f func(A, B) C, a A) func(B) C {
	return func(b B) C {
		return f(a, b)
	}
}

// Eq reports whether a equals b. Useful as a first-class value for
// building equality predicates with Bind1st.
func Eq[T comparable](a, b T) bool {
	return a == b
}

// Not negates a predicate.
func Not[T any](predicate func(T) bool) func(T) bool {
	return func(v T) bool {
		return !predicate(v)
	}
}
