package internal

// Signal is an observable value cell. Reads inside a tracking context
// subscribe the running computation; writes that pass the equality check
// mark every subscriber stale and flush unless a batch is open.
type Signal struct {
	node

	value  any
	equals func(a, b any) bool
}

// NewSignal creates a signal under the current owner. The equality function
// gates propagation: writes of an equal value are complete no-ops.
func (r *Runtime) NewSignal(initial any, equals func(a, b any) bool) *Signal {
	owner := r.tracker.currentOwner
	if owner == nil {
		panic(&NoOwnerError{Op: "NewSignal"})
	}

	s := &Signal{
		node:   newNode(),
		value:  initial,
		equals: equals,
	}

	mu.Lock()
	if owner.disposed {
		s.flags.Set(FlagDisposed)
	} else {
		owner.signals = append(owner.signals, s)
	}
	mu.Unlock()

	statSignalsCreated.Add(1)
	return s
}

// settle implements source. Signals are always up to date.
func (s *Signal) settle() {}

// Read returns the current value, linking the running computation as a
// subscriber when called inside a tracking context. Never fails.
func (s *Signal) Read() any {
	track(s)
	return s.Peek()
}

// Peek returns the current value without registering a dependency.
func (s *Signal) Peek() any {
	mu.Lock()
	v := s.value
	mu.Unlock()
	return v
}

// Write stores a new value and propagates to subscribers. Equal values do
// not propagate; inside a batch the flush is deferred to the outermost
// batch close.
func (s *Signal) Write(v any) {
	mu.Lock()
	if s.flags.Has(FlagDisposed) || s.equals(s.value, v) {
		mu.Unlock()
		return
	}
	s.value = v
	s.markSubs(FlagDirty)
	mu.Unlock()

	statWrites.Add(1)
	GetRuntime().Schedule()
}

// Update applies fn to the current value and writes the result. fn runs
// outside the engine lock and must not write signals itself.
func (s *Signal) Update(fn func(any) any) {
	s.Write(fn(s.Peek()))
}

// SetEquals replaces the equality function. Meant for configuration right
// after creation.
func (s *Signal) SetEquals(equals func(a, b any) bool) {
	mu.Lock()
	s.equals = equals
	mu.Unlock()
}

// SetName labels the signal for inspection output.
func (s *Signal) SetName(name string) {
	mu.Lock()
	s.name = name
	mu.Unlock()
}

// teardown unlinks every subscriber when the owning scope is disposed.
// Caller holds mu.
func (s *Signal) teardown() {
	if s.flags.Has(FlagDisposed) {
		return
	}
	s.flags.Set(FlagDisposed)

	for _, sub := range s.subs {
		sub.removeDep(s)
	}
	s.subs = nil
}
