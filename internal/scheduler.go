package internal

// sched is the process-wide effect scheduler. Graph state is guarded by mu;
// effect bodies always run with mu released.
var sched = &Scheduler{}

// Scheduler owns the effect worklist. Marked effects are queued in mark
// order and drained FIFO, render effects before user effects. An effect
// already queued is not queued again, so any number of writes before a flush
// coalesce into a single run.
type Scheduler struct {
	// queues is indexed by EffectType.
	queues [2][]*Computation

	// settled holds one-shot callbacks to run when the worklist drains.
	settled []func()

	// running is true while a flush is draining; writes performed during a
	// run land in the live worklist instead of starting a nested flush.
	running bool
}

// enqueue adds an effect to its worklist unless it is already pending or is
// the effect currently running. Caller holds mu.
func (s *Scheduler) enqueue(c *Computation) {
	if c.flags.Has(FlagQueued) || c.flags.Has(FlagRecomputing) || c.flags.Has(FlagDisposed) {
		return
	}
	c.flags.Set(FlagQueued)
	s.queues[c.effectType] = append(s.queues[c.effectType], c)
}

// pop removes the next pending effect, render queue first, and clears its
// queued flag: marks arriving after this point queue a fresh pass instead of
// being lost. Caller holds mu.
func (s *Scheduler) pop() *Computation {
	for i := range s.queues {
		if len(s.queues[i]) > 0 {
			c := s.queues[i][0]
			s.queues[i] = s.queues[i][1:]
			c.flags.Clear(FlagQueued)
			return c
		}
	}
	return nil
}

// onSettled registers a one-shot callback for the next time the worklist
// drains. Caller holds mu.
func (s *Scheduler) onSettled(fn func()) {
	s.settled = append(s.settled, fn)
}

// flush drains the worklist until it is empty, then fires settled callbacks.
// Effects queued by the effects themselves extend the same drain. A panic
// escaping an unguarded effect leaves the remaining worklist intact and
// propagates to the caller.
func (s *Scheduler) flush() {
	mu.Lock()
	if s.running {
		mu.Unlock()
		return
	}
	s.running = true
	mu.Unlock()

	statFlushes.Add(1)

	completed := false
	defer func() {
		if !completed {
			mu.Lock()
			s.running = false
			mu.Unlock()
		}
	}()

	for {
		mu.Lock()
		c := s.pop()
		if c == nil {
			fns := s.settled
			s.settled = nil
			if len(fns) == 0 {
				s.running = false
				mu.Unlock()
				break
			}
			mu.Unlock()

			// settled callbacks may write; keep draining.
			runUntrackedFns(fns)
			continue
		}
		mu.Unlock()

		s.runEffect(c)
	}

	completed = true
}

// runEffect decides whether a popped effect actually needs to run. A
// possibly-stale effect settles its memo dependencies first; if none of them
// changed value the run is skipped. Settling may re-queue the effect (the
// memo marks it dirty); the duplicate pass finds it clean and skips.
func (s *Scheduler) runEffect(c *Computation) {
	mu.Lock()
	if c.flags.Has(FlagDisposed) {
		mu.Unlock()
		return
	}
	check := c.flags.Has(FlagCheck) && !c.flags.Has(FlagDirty)
	var deps []source
	if check {
		deps = make([]source, len(c.deps))
		copy(deps, c.deps)
	}
	mu.Unlock()

	if check {
		for _, dep := range deps {
			dep.settle()
			if c.isDirty() {
				break
			}
		}
	}

	mu.Lock()
	dirty := c.flags.Has(FlagDirty)
	c.flags.Clear(FlagCheck | FlagDirty)
	mu.Unlock()

	if dirty {
		c.rerun()
	}
}
