package glint

import "github.com/glint-dev/glint/internal"

// Context carries a typed value down the owner tree. Set binds a value on
// the current owner; Value reads the nearest binding up the chain, falling
// back to the default. Bindings die with their owner.
type Context[T any] struct {
	ctx *internal.Context
}

// NewContext creates a context with a default value, returned by Value
// whenever no enclosing owner has Set one.
func NewContext[T any](def T) *Context[T] {
	return &Context[T]{
		internal.GetRuntime().NewContext(def),
	}
}

// Value returns the value bound on the nearest enclosing owner, or the
// default.
func (c *Context[T]) Value() T {
	return as[T](c.ctx.Value())
}

// Set binds a value on the current owner, visible to Value calls from that
// owner and its descendants. Outside any owner it is a no-op.
func (c *Context[T]) Set(value T) {
	c.ctx.Set(value)
}
