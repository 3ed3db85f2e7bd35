package glint

import "github.com/glint-dev/glint/internal"

// Memo is a cached derived value. Its body runs lazily: not at creation, and
// after an invalidation not before the next Read. A recompute whose result
// equals the cached value does not notify subscribers.
type Memo[T any] struct {
	memo *internal.Computation
}

// NewMemo creates a memo computing its value with fn, owned by the current
// owner. Panics with *NoOwnerError outside any owner.
func NewMemo[T any](fn func() T) *Memo[T] {
	return &Memo[T]{
		internal.GetRuntime().NewMemo(func() any { return fn() }, defaultEquals),
	}
}

// NewComputed is an alias for NewMemo.
func NewComputed[T any](fn func() T) *Memo[T] {
	return NewMemo(fn)
}

// Read returns the memo's value, recomputing first when a dependency changed
// since the last read. Subscribes the enclosing memo or effect when called
// inside one.
func (m *Memo[T]) Read() T {
	return as[T](m.memo.Read())
}

// Peek returns the cached value without subscribing or recomputing. Before
// the first Read it returns the zero value.
func (m *Memo[T]) Peek() T {
	return as[T](m.memo.Peek())
}

// WithEquals replaces the equality function used for the recompute cut-off.
// Returns m for chaining at creation.
func (m *Memo[T]) WithEquals(equals func(a, b T) bool) *Memo[T] {
	m.memo.SetEquals(func(a, b any) bool {
		return equals(as[T](a), as[T](b))
	})
	return m
}

// WithName labels the memo in inspection output. Returns m for chaining at
// creation.
func (m *Memo[T]) WithName(name string) *Memo[T] {
	m.memo.SetName(name)
	return m
}
