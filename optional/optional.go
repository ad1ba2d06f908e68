// Package optional provides a value type for values that may be absent.
//
// Option[T] is a plain struct; the zero value is the empty option. FromPtr
// and Ptr bridge to the pointer convention (nil means absent) for code that
// already speaks it.
package optional

import "fmt"

// Option holds either a value of type T or nothing.
type Option[T any] struct {
	value   T
	present bool
}

// Of returns an option holding v.
func Of[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns the empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns an option holding *p, or the empty option when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Of(*p)
}

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet is the panic-on-absence variant of Get.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic(fmt.Errorf("optional: no value present"))
	}
	return o.value
}

// IsPresent reports whether a value is held.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the held value, or fallback when empty.
func (o Option[T]) OrElse(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// OrElseGet returns the held value, or the result of fallback when empty.
// fallback is not invoked when a value is present.
func (o Option[T]) OrElseGet(fallback func() T) T {
	if !o.present {
		return fallback()
	}
	return o.value
}

// Ptr returns a pointer to a copy of the held value, or nil when empty.
func (o Option[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map transforms the held value, preserving absence.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Of(fn(o.value))
}

// FlatMap transforms the held value into another option, preserving absence.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}
	return fn(o.value)
}

// Filter empties the option unless the held value satisfies pred.
func Filter[T any](o Option[T], pred func(T) bool) Option[T] {
	if !o.present || !pred(o.value) {
		return None[T]()
	}
	return o
}
