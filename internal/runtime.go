package internal

import (
	"sync"
)

// mu guards all graph state: node flags, dependency and subscriber lists,
// owner trees and the scheduler worklist. User code (signal equality aside)
// never runs while it is held.
var mu sync.Mutex

// Runtime carries the per-goroutine tracking state. The dependency graph
// itself is shared; only "which computation is currently running" and the
// batch depth are goroutine-local.
type Runtime struct {
	tracker *Tracker
	batcher *Batcher
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker: NewTracker(),
		batcher: NewBatcher(),
	}
}

// Schedule flushes the effect worklist unless a batch is open on this
// goroutine.
func (r *Runtime) Schedule() {
	if r.batcher.IsBatching() {
		return
	}
	sched.flush()
}

func (r *Runtime) CurrentOwner() *Owner {
	return r.tracker.currentOwner
}

// OnCleanup registers fn on the current owner.
func (r *Runtime) OnCleanup(fn func()) {
	owner := r.CurrentOwner()
	if owner == nil {
		panic(&NoOwnerError{Op: "OnCleanup"})
	}
	owner.OnCleanup(fn)
}

// OnSettled registers a one-shot callback to run when the next flush
// finishes draining the effect worklist.
func (r *Runtime) OnSettled(fn func()) {
	mu.Lock()
	sched.onSettled(fn)
	mu.Unlock()
}

// Untrack runs fn with dependency tracking suspended. Reads inside fn do not
// subscribe the enclosing computation.
func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}
