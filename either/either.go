// Package either provides a discriminated union of two alternatives.
//
// By convention the left side carries the unusual case and the right side the
// expected one, but Either imposes no such reading; both sides are plain
// values. The zero value is a Left holding L's zero value.
package either

import "fmt"

// Either holds exactly one of an L or an R.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns an Either holding v on the left side.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right returns an Either holding v on the right side.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// IsLeft reports whether the left side is held.
func (e Either[L, R]) IsLeft() bool { return !e.isRight }

// IsRight reports whether the right side is held.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// Left returns the left value and whether it is the held side.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and whether it is the held side.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Swap exchanges the sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold reduces the union to a single value by applying the handler for the
// held side.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapLeft transforms the left side, passing a Right through unchanged.
func MapLeft[L, R, T any](e Either[L, R], fn func(L) T) Either[T, R] {
	if e.isRight {
		return Right[T, R](e.right)
	}
	return Left[T, R](fn(e.left))
}

// MapRight transforms the right side, passing a Left through unchanged.
func MapRight[L, R, T any](e Either[L, R], fn func(R) T) Either[L, T] {
	if !e.isRight {
		return Left[L, T](e.left)
	}
	return Right[L, T](fn(e.right))
}
