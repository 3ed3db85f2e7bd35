package internal

// EffectType selects the scheduler queue an effect runs in. Render effects
// drain before user effects in every flush pass.
type EffectType uint8

const (
	EffectRender EffectType = iota
	EffectUser
)

// NewEffect creates an effect under the current owner and runs it once,
// synchronously, to record its initial dependencies. Re-runs are queued by
// the scheduler whenever a dependency changes. The name is attached before
// the initial run so snapshots taken during the first flush already see it.
func (r *Runtime) NewEffect(fn func(), effectType EffectType, name string) *Computation {
	c := &Computation{
		node:       newNode(),
		kind:       KindEffect,
		effectType: effectType,
		fn: func() any {
			fn()
			return nil
		},
	}
	c.name = name
	c.owner = r.newScope(c, "NewEffect")

	statEffectsCreated.Add(1)
	c.rerun()

	// the initial run can queue work (self-writes, chained marks) without a
	// flush in flight to pick it up
	r.Schedule()
	return c
}

// rerun executes the effect body: previous-run children and cleanups are torn
// down first, then the dependency set is rebuilt from scratch by the tracked
// run. A body that writes one of its own dependencies leaves itself dirty
// and is queued for another pass; the cascade stops when an equality check
// finally drops the write.
func (c *Computation) rerun() {
	mu.Lock()
	if c.flags.Has(FlagDisposed) {
		mu.Unlock()
		return
	}
	c.flags.Set(FlagRecomputing)
	c.flags.Clear(FlagCheck | FlagDirty)
	mu.Unlock()

	c.owner.reset()
	c.clearDeps()

	rec := runTracked(c, func() { c.fn() })

	mu.Lock()
	c.flags.Clear(FlagRecomputing)
	if c.flags.Has(FlagDirty) {
		sched.enqueue(c)
	}
	mu.Unlock()

	statEffectRuns.Add(1)

	if rec != nil {
		routePanic(c.owner, rec)
	}
}
