// Package util holds small generic helpers.
package util

import "fmt"

// Optional is an explicit maybe-value. Store lookups return it so a dangling
// reference is a value the caller has to handle, not a silent zero struct.
type Optional[T any] struct {
	Val   T
	IsSet bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Val: v, IsSet: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) {
	return o.Val, o.IsSet
}

func (o Optional[T]) Unwrap() T {
	if !o.IsSet {
		panic("called Unwrap on a None value")
	}
	return o.Val
}

func (o Optional[T]) UnwrapOr(defaultVal T) T {
	if !o.IsSet {
		return defaultVal
	}
	return o.Val
}

// Map projects a set value through fn and keeps None as None.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.IsSet {
		return None[U]()
	}
	return Some(fn(o.Val))
}

func (o Optional[T]) String() string {
	if !o.IsSet {
		return ""
	}
	return fmt.Sprintf("%v", o.Val)
}
