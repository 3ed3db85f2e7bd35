// Package glint is a fine-grained reactive engine: signals hold values,
// memos derive cached values from them, and effects run side effects when
// anything they read changes. Dependencies are discovered by running code,
// not declared: whatever a memo or effect reads during a run is exactly what
// it subscribes to for the next one.
//
// Propagation is glitch-free. A write marks its subscribers and queues
// affected effects; each queued effect runs at most once per update and only
// ever observes values from after the write. Memos recompute lazily, on the
// next read, and a recompute whose result equals the old value stops
// propagation there.
//
// Every signal, memo and effect must be created inside an owner (see NewRoot
// and NewOwner); disposing the owner disposes everything created under it.
// Creating a primitive without one panics with *NoOwnerError.
//
// The graph is shared, but tracking state is per goroutine: a computation's
// dependencies are recorded only on the goroutine running its body. Reads
// from goroutines spawned inside an effect are therefore untracked. Cycles
// are not detected: an effect that writes its own dependency queues itself
// for another pass and keeps re-running until an equality check drops the
// write.
package glint

import "github.com/glint-dev/glint/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// NewBatch batches signal writes into a single update cycle: effects marked
// by any number of writes inside fn run once, after fn returns. Batches
// nest; only the outermost one flushes.
func NewBatch(fn func()) {
	internal.GetRuntime().NewBatch(fn)
}

// Untrack runs fn without tracking: reads inside it do not subscribe the
// enclosing memo or effect.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}

// OnCleanup registers fn to run once when the current owner is disposed, or
// right before the next run when called inside a memo or effect body. Panics
// with *NoOwnerError outside any owner.
func OnCleanup(fn func()) {
	internal.GetRuntime().OnCleanup(fn)
}

// OnSettled registers a one-shot callback for the moment the next flush
// finishes: every effect marked by the triggering write, and every effect
// those effects marked in turn, has run.
func OnSettled(fn func()) {
	internal.GetRuntime().OnSettled(fn)
}
