package glint

import "github.com/glint-dev/glint/internal"

// Owner scopes the lifetime of reactive nodes. Every signal, memo and effect
// created while an owner is current belongs to it and is torn down when the
// owner is disposed, children first, most recently created first.
type Owner struct {
	owner *internal.Owner
}

// NewOwner creates an owner. Inside another owner's Run it becomes a child
// of that owner; otherwise it is a standalone root.
func NewOwner() *Owner {
	return &Owner{
		internal.GetRuntime().NewOwner(),
	}
}

// WithName labels the owner in inspection output. Returns o for chaining at
// creation.
func (o *Owner) WithName(name string) *Owner {
	o.owner.SetName(name)
	return o
}

// Run executes fn with this owner current: nodes created inside belong to
// it. Panics escaping fn are delivered to the nearest OnError boundary and
// otherwise resume.
func (o *Owner) Run(fn func() error) error {
	var err error
	o.owner.Run(func() { err = fn() })
	return err
}

// Dispose tears down the owner: child owners depth-first in reverse creation
// order, cleanups in reverse registration order, then every owned node is
// unlinked from the graph. Safe to call more than once.
func (o *Owner) Dispose() {
	o.owner.Dispose()
}

// OnCleanup registers fn to run once when this owner is disposed. On an
// already-disposed owner fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	o.owner.OnCleanup(fn)
}

// OnError registers fn as an error boundary. Panics from computations owned
// by this scope, or a descendant without a nearer boundary, are delivered to
// fn instead of propagating.
func (o *Owner) OnError(fn func(any)) {
	o.owner.OnError(fn)
}
