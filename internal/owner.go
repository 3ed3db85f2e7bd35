package internal

// NoOwnerError reports a reactive primitive created, or a cleanup registered,
// with no enclosing owner scope.
type NoOwnerError struct {
	Op string
}

func (e *NoOwnerError) Error() string {
	return e.Op + " requires an enclosing owner; create one with NewRoot or NewOwner"
}

// Owner controls the lifetime of every reactive node created while it is
// current. Disposing an owner disposes its children depth-first (most recent
// first), runs its cleanups in reverse registration order, then detaches it
// from its parent. Disposal is idempotent.
type Owner struct {
	id     uint64
	name   string
	parent *Owner

	children []*Owner
	cleanups []func()
	catchers []func(any)

	// signals created directly under this owner; unlinked on disposal.
	signals []*Signal

	// comp is non-nil when this owner is the implicit scope of a
	// computation body.
	comp *Computation

	// values holds context values set on this owner.
	values map[*Context]any

	disposed bool
}

// NewOwner creates an owner attached to the current owner, or a root owner
// when none is current.
func (r *Runtime) NewOwner() *Owner {
	o := &Owner{id: nextID()}

	mu.Lock()
	if parent := r.tracker.currentOwner; parent != nil && !parent.disposed {
		o.parent = parent
		parent.children = append(parent.children, o)
	}
	mu.Unlock()

	return o
}

// newScope creates the implicit owner of a computation body. The computation
// must be created under an existing owner. Under an already-disposed owner
// the scope is born disposed, so the computation never runs and never
// subscribes.
func (r *Runtime) newScope(c *Computation, op string) *Owner {
	parent := r.tracker.currentOwner
	if parent == nil {
		panic(&NoOwnerError{Op: op})
	}

	o := &Owner{id: nextID(), parent: parent, comp: c}

	mu.Lock()
	if parent.disposed {
		o.disposed = true
		c.flags.Set(FlagDisposed)
	} else {
		parent.children = append(parent.children, o)
	}
	mu.Unlock()

	return o
}

// SetName labels the owner for inspection output.
func (o *Owner) SetName(name string) {
	mu.Lock()
	o.name = name
	mu.Unlock()
}

// Run executes fn with this owner current. Panics escaping fn are routed to
// the nearest error boundary registered on this owner or an ancestor.
func (o *Owner) Run(fn func()) {
	rec := func() (rec any) {
		defer func() { rec = recover() }()
		GetRuntime().tracker.RunWithOwner(o, fn)
		return nil
	}()

	routePanic(o, rec)
}

// OnCleanup registers fn to run once when this owner is disposed (or, for a
// computation scope, right before the next run).
func (o *Owner) OnCleanup(fn func()) {
	mu.Lock()
	disposed := o.disposed
	if !disposed {
		o.cleanups = append(o.cleanups, fn)
	}
	mu.Unlock()

	if disposed {
		fn()
	}
}

// OnError registers fn as an error boundary: panics from computations owned
// by this scope (or a descendant without its own boundary) are delivered to
// fn instead of propagating.
func (o *Owner) OnError(fn func(any)) {
	mu.Lock()
	o.catchers = append(o.catchers, fn)
	mu.Unlock()
}

// Dispose tears down this owner: children depth-first in reverse creation
// order, then this owner's cleanups in reverse registration order, then the
// owned computation and signals are unlinked from the graph. Idempotent.
func (o *Owner) Dispose() {
	mu.Lock()
	if o.disposed {
		mu.Unlock()
		return
	}
	o.disposed = true

	children := o.children
	o.children = nil
	cleanups := o.cleanups
	o.cleanups = nil

	if o.comp != nil {
		o.comp.teardown()
	}
	for _, s := range o.signals {
		s.teardown()
	}
	o.signals = nil

	if o.parent != nil {
		o.parent.removeChild(o)
	}
	mu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	runUntrackedFns(reversed(cleanups))
	statOwnersDisposed.Add(1)
}

// reset clears the owner for the next run of its computation: children are
// disposed and cleanups run exactly as on disposal, but the owner itself
// stays live.
func (o *Owner) reset() {
	mu.Lock()
	if o.disposed {
		mu.Unlock()
		return
	}
	children := o.children
	o.children = nil
	cleanups := o.cleanups
	o.cleanups = nil
	for _, s := range o.signals {
		s.teardown()
	}
	o.signals = nil
	mu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	runUntrackedFns(reversed(cleanups))
}

// removeChild detaches a child. Caller holds mu.
func (o *Owner) removeChild(child *Owner) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

func reversed(fns []func()) []func() {
	if len(fns) < 2 {
		return fns
	}
	out := make([]func(), len(fns))
	for i, fn := range fns {
		out[len(fns)-1-i] = fn
	}
	return out
}

// routePanic delivers a recovered panic to the nearest ancestor owner with a
// registered error boundary. Without a boundary the panic resumes, surfacing
// at whatever write or batch close triggered the run.
func routePanic(o *Owner, rec any) {
	if rec == nil {
		return
	}

	for scope := o; scope != nil; scope = scope.parent {
		mu.Lock()
		catchers := scope.catchers
		mu.Unlock()

		if len(catchers) > 0 {
			statPanicsCaught.Add(1)
			for _, catch := range catchers {
				catch(rec)
			}
			return
		}
	}

	panic(rec)
}
