package internal

// Tracker holds the dynamic tracking state of one goroutine: which owner
// newly created nodes attach to, and which computation signal reads link to.
type Tracker struct {
	tracking bool

	currentOwner *Owner
	computation  *Computation
}

func NewTracker() *Tracker {
	return &Tracker{
		tracking: true,
	}
}

// RunWithOwner runs fn with the given owner as the current owner, restoring
// the previous owner on every exit path.
func (t *Tracker) RunWithOwner(owner *Owner, fn func()) {
	prev := t.currentOwner
	t.currentOwner = owner
	defer func() { t.currentOwner = prev }()

	fn()
}

// RunUntracked runs fn with dependency tracking disabled.
func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}

func (t *Tracker) ShouldTrack() bool {
	return t.computation != nil && t.tracking
}

// runTracked executes a computation body with the tracker pointing at it.
// The previous state is restored even when the body panics; the recovered
// value is returned for the caller to route to an error boundary.
func runTracked(c *Computation, fn func()) (rec any) {
	t := GetRuntime().tracker

	prevOwner := t.currentOwner
	prevComputation := t.computation
	prevTracking := t.tracking

	t.currentOwner = c.owner
	t.computation = c
	t.tracking = true

	defer func() {
		t.currentOwner = prevOwner
		t.computation = prevComputation
		t.tracking = prevTracking
	}()

	func() {
		defer func() { rec = recover() }()
		fn()
	}()

	return rec
}

// runUntrackedFns invokes cleanup-style callbacks with tracking disabled so
// reads inside them never register dependencies.
func runUntrackedFns(fns []func()) {
	t := GetRuntime().tracker
	t.RunUntracked(func() {
		for _, fn := range fns {
			fn()
		}
	})
}
