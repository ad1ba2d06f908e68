// Package try reifies the outcome of a computation as a value. A Try holds
// either a result or the error that prevented one, so fallible work can be
// stored, passed around, and combined before anyone decides what a failure
// means.
package try

import "fmt"

// Try holds the outcome of a computation: a value on success, an error on
// failure. The zero value is a success holding T's zero value.
type Try[T any] struct {
	value T
	err   error
}

// Succeed returns a successful Try holding v.
func Succeed[T any](v T) Try[T] {
	return Try[T]{value: v}
}

// Fail returns a failed Try holding err. A nil err still counts as a
// failure with a placeholder error, so IsSuccess stays truthful.
func Fail[T any](err error) Try[T] {
	if err == nil {
		err = fmt.Errorf("try: failed with nil error")
	}
	return Try[T]{err: err}
}

// Of captures fn's conventional (value, error) outcome as a Try.
func Of[T any](fn func() (T, error)) Try[T] {
	v, err := fn()
	if err != nil {
		return Fail[T](err)
	}
	return Succeed(v)
}

// Do runs fn, converting a panic into a failed Try. Panics whose value is an
// error are held as-is; other panic values are wrapped.
func Do[T any](fn func() T) (t Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				t = Fail[T](err)
				return
			}
			t = Fail[T](fmt.Errorf("try: panic: %v", r))
		}
	}()
	return Succeed(fn())
}

// Get returns the outcome in conventional (value, error) form.
func (t Try[T]) Get() (T, error) {
	return t.value, t.err
}

// Must returns the held value, panicking with the held error on failure.
func (t Try[T]) Must() T {
	if t.err != nil {
		panic(t.err)
	}
	return t.value
}

// Err returns the held error, nil on success.
func (t Try[T]) Err() error {
	return t.err
}

// IsSuccess reports whether a value is held.
func (t Try[T]) IsSuccess() bool {
	return t.err == nil
}

// OrElse returns the held value, or fallback on failure.
func (t Try[T]) OrElse(fallback T) T {
	if t.err != nil {
		return fallback
	}
	return t.value
}

func (t Try[T]) String() string {
	if t.err != nil {
		return fmt.Sprintf("Failure(%v)", t.err)
	}
	return fmt.Sprintf("Success(%v)", t.value)
}

// Map transforms a successful value, passing a failure through unchanged.
func Map[T, U any](t Try[T], fn func(T) U) Try[U] {
	if t.err != nil {
		return Fail[U](t.err)
	}
	return Succeed(fn(t.value))
}

// FlatMap chains a fallible transformation, passing a failure through
// unchanged.
func FlatMap[T, U any](t Try[T], fn func(T) Try[U]) Try[U] {
	if t.err != nil {
		return Fail[U](t.err)
	}
	return fn(t.value)
}

// Recover turns a failure back into a success via fn; successes pass through
// untouched.
func Recover[T any](t Try[T], fn func(error) T) Try[T] {
	if t.err == nil {
		return t
	}
	return Succeed(fn(t.err))
}
