package glint

import (
	"reflect"

	"github.com/glint-dev/glint/internal"
)

// Signal is a read/write reactive value cell.
type Signal[T any] struct {
	signal *internal.Signal
}

// NewSignal creates a signal holding initial, owned by the current owner.
// Panics with *NoOwnerError outside any owner.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		internal.GetRuntime().NewSignal(initial, defaultEquals),
	}
}

// Read returns the current value, subscribing the enclosing memo or effect
// when called inside one.
func (s *Signal[T]) Read() T {
	return as[T](s.signal.Read())
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	return as[T](s.signal.Peek())
}

// Write stores a new value. Subscribers are notified only when the value is
// not equal to the previous one; see WithEquals and AlwaysNotify.
func (s *Signal[T]) Write(v T) {
	s.signal.Write(v)
}

// Update writes fn applied to the current value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.signal.Update(func(v any) any { return fn(as[T](v)) })
}

// WithEquals replaces the equality function used for the write cut-off.
// Useful when reflect.DeepEqual is too expensive or has the wrong semantics
// for T. Returns s for chaining at creation.
func (s *Signal[T]) WithEquals(equals func(a, b T) bool) *Signal[T] {
	s.signal.SetEquals(func(a, b any) bool {
		return equals(as[T](a), as[T](b))
	})
	return s
}

// AlwaysNotify disables the equality cut-off: every write propagates, equal
// values included. Returns s for chaining at creation.
func (s *Signal[T]) AlwaysNotify() *Signal[T] {
	s.signal.SetEquals(func(a, b any) bool { return false })
	return s
}

// WithName labels the signal in inspection output. Returns s for chaining at
// creation.
func (s *Signal[T]) WithName(name string) *Signal[T] {
	s.signal.SetName(name)
	return s
}

// defaultEquals provides type-appropriate equality: == for the common
// comparable types, reflect.DeepEqual for everything else.
func defaultEquals(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case uint64:
		bv, ok := b.(uint64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return reflect.DeepEqual(a, b)
	}
}
