// Package seqs provides equality and ordering helpers over iter.Seq
// sequences, plus adapters for trivial sequences. It fills the gaps the
// standard slices helpers leave for values that arrive as iterators.
package seqs

import (
	"cmp"
	"iter"
)

// Of returns a sequence yielding exactly v.
func Of[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(v)
	}
}

// Of2 returns a key/value sequence yielding exactly the pair (k, v).
func Of2[K, V any](k K, v V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		yield(k, v)
	}
}

// Empty returns a sequence yielding nothing.
func Empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}

// Equal reports whether a and b yield equal elements in the same order and
// have the same length.
func Equal[T comparable](a, b iter.Seq[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[A, B any](a iter.Seq[A], b iter.Seq[B], eq func(A, B) bool) bool {
	next, stop := iter.Pull(b)
	defer stop()
	for av := range a {
		bv, ok := next()
		if !ok || !eq(av, bv) {
			return false
		}
	}
	_, ok := next()
	return !ok
}

// Compare orders a and b lexicographically: the first unequal element pair
// decides; on a common prefix the shorter sequence orders first.
func Compare[T cmp.Ordered](a, b iter.Seq[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied element ordering.
func CompareFunc[A, B any](a iter.Seq[A], b iter.Seq[B], compare func(A, B) int) int {
	next, stop := iter.Pull(b)
	defer stop()
	for av := range a {
		bv, ok := next()
		if !ok {
			return +1
		}
		if c := compare(av, bv); c != 0 {
			return c
		}
	}
	if _, ok := next(); ok {
		return -1
	}
	return 0
}

// IsSorted reports whether s yields elements in non-decreasing order.
func IsSorted[T cmp.Ordered](s iter.Seq[T]) bool {
	return IsSortedFunc(s, cmp.Compare[T])
}

// IsSortedFunc is IsSorted with a caller-supplied element ordering.
func IsSortedFunc[T any](s iter.Seq[T], compare func(T, T) int) bool {
	first := true
	var prev T
	for v := range s {
		if !first && compare(prev, v) > 0 {
			return false
		}
		prev, first = v, false
	}
	return true
}
