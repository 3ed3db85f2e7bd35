package internal

// CompKind distinguishes the two computation flavors.
type CompKind uint8

const (
	// KindMemo caches its result and recomputes lazily at the next read
	// after an invalidation (pull), never eagerly on a write (push).
	KindMemo CompKind = iota + 1
	// KindEffect runs for its side effects, queued by the scheduler.
	KindEffect
)

// Computation is a function re-run when its tracked dependencies change.
// It unifies memos and effects: both track dependencies the same way and own
// an implicit scope; only scheduling and value caching differ.
type Computation struct {
	node

	kind       CompKind
	effectType EffectType

	// owner is the implicit scope for nodes and cleanups created during a
	// run; it is reset before every re-run.
	owner *Owner

	// fn is the body. Memos return the value to cache, effects return nil.
	fn func() any

	// deps is exactly the set of tracked reads of the latest run; it is
	// discarded and rebuilt on every run so stale edges are pruned
	// immediately.
	deps []source

	value    any
	hasValue bool
	equals   func(a, b any) bool
}

// NewMemo creates a lazy cached computation under the current owner. The
// body does not run until the first Read.
func (r *Runtime) NewMemo(fn func() any, equals func(a, b any) bool) *Computation {
	c := &Computation{
		node:   newNode(),
		kind:   KindMemo,
		fn:     fn,
		equals: equals,
	}
	c.flags.Set(FlagDirty)
	c.owner = r.newScope(c, "NewMemo")

	statMemosCreated.Add(1)
	return c
}

// Read returns the memo's value, recomputing first if an upstream write
// invalidated it. Inside a tracking context the caller is linked as a
// subscriber.
func (c *Computation) Read() any {
	track(c)
	c.settle()
	return c.Peek()
}

// Peek returns the cached value without tracking or settling.
func (c *Computation) Peek() any {
	mu.Lock()
	v := c.value
	mu.Unlock()
	return v
}

// SetEquals replaces the equality function used for the downstream cut-off.
// Meant for configuration before the first read.
func (c *Computation) SetEquals(equals func(a, b any) bool) {
	mu.Lock()
	c.equals = equals
	mu.Unlock()
}

// SetName labels the computation for inspection output.
func (c *Computation) SetName(name string) {
	mu.Lock()
	c.name = name
	mu.Unlock()
}

// settle brings a memo up to date: if only possibly stale (Check), its memo
// dependencies are settled first; the body re-runs only when an upstream
// value actually changed. Caller must not hold mu.
func (c *Computation) settle() {
	mu.Lock()
	if c.flags.Has(FlagDisposed) || c.flags.Has(FlagRecomputing) {
		mu.Unlock()
		return
	}
	if c.flags.Has(FlagDirty) || !c.hasValue {
		mu.Unlock()
		c.recompute()
		return
	}
	if !c.flags.Has(FlagCheck) {
		mu.Unlock()
		return
	}
	deps := make([]source, len(c.deps))
	copy(deps, c.deps)
	mu.Unlock()

	for _, dep := range deps {
		dep.settle()
		if c.isDirty() {
			break
		}
	}

	mu.Lock()
	dirty := c.flags.Has(FlagDirty)
	c.flags.Clear(FlagCheck | FlagDirty)
	mu.Unlock()

	if dirty {
		c.recompute()
	}
}

// recompute re-runs the memo body and, when the result is not equal to the
// cached value, marks subscribers dirty. An unchanged result suppresses all
// downstream propagation.
func (c *Computation) recompute() {
	mu.Lock()
	if c.flags.Has(FlagDisposed) || c.flags.Has(FlagRecomputing) {
		mu.Unlock()
		return
	}
	c.flags.Set(FlagRecomputing)
	c.flags.Clear(FlagCheck | FlagDirty)
	old, had := c.value, c.hasValue
	mu.Unlock()

	c.owner.reset()
	c.clearDeps()

	var result any
	rec := runTracked(c, func() { result = c.fn() })

	mu.Lock()
	c.flags.Clear(FlagRecomputing)
	if rec != nil {
		// failed run: stay dirty so the next read retries, with the
		// half-run's dependency set kept (every recorded edge is live).
		c.flags.Set(FlagDirty)
		mu.Unlock()
		routePanic(c.owner, rec)
		return
	}

	c.value = result
	c.hasValue = true
	if !had || !c.equals(old, result) {
		c.markSubs(FlagDirty)
	}
	mu.Unlock()

	statMemoRecomputes.Add(1)
}

// isDirty reports whether a settle pass upgraded this node to FlagDirty.
func (c *Computation) isDirty() bool {
	mu.Lock()
	dirty := c.flags.Has(FlagDirty)
	mu.Unlock()
	return dirty
}

// clearDeps unsubscribes from every dependency of the previous run.
func (c *Computation) clearDeps() {
	mu.Lock()
	for _, dep := range c.deps {
		dep.base().removeSub(c)
	}
	c.deps = c.deps[:0]
	mu.Unlock()
}

// removeDep drops a single dependency edge (the source side is already
// unlinked). Caller holds mu.
func (c *Computation) removeDep(s source) {
	for i, dep := range c.deps {
		if dep == s {
			c.deps = append(c.deps[:i], c.deps[i+1:]...)
			return
		}
	}
}

// teardown unlinks the computation from the graph when its owner is
// disposed. Caller holds mu.
func (c *Computation) teardown() {
	if c.flags.Has(FlagDisposed) {
		return
	}
	c.flags.Set(FlagDisposed)

	for _, dep := range c.deps {
		dep.base().removeSub(c)
	}
	c.deps = nil

	for _, sub := range c.subs {
		sub.removeDep(c)
	}
	c.subs = nil
}
