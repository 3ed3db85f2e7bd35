package internal

import "sync/atomic"

var idCounter atomic.Uint64

func nextID() uint64 {
	return idCounter.Add(1)
}

// node is the graph vertex shared by signals and computations. Signals are
// pure sources, memos are both source and subscriber, effects are pure
// subscribers (their subs list stays empty).
type node struct {
	id    uint64
	name  string
	flags Flags

	// subs are the computations currently subscribed to this node.
	// Creation order is preserved; removal shifts rather than swaps so the
	// worklist keeps a stable first-come order.
	subs []*Computation
}

func newNode() node {
	return node{id: nextID()}
}

func (n *node) base() *node {
	return n
}

// source is anything a computation can subscribe to.
type source interface {
	base() *node

	// settle brings the source fully up to date before its value is
	// observed. It must be called without the engine lock held.
	settle()
}

// addSub appends a subscriber. Caller holds mu.
func (n *node) addSub(c *Computation) {
	n.subs = append(n.subs, c)
}

// removeSub unlinks a subscriber, preserving order. Caller holds mu.
func (n *node) removeSub(c *Computation) {
	for i, sub := range n.subs {
		if sub == c {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

// track links the given source to the computation currently running on this
// goroutine, if any. Reads outside a tracking context have no side effect.
func track(s source) {
	t := GetRuntime().tracker
	if !t.ShouldTrack() {
		return
	}
	c := t.computation

	mu.Lock()
	defer mu.Unlock()

	// fast path: already the most recent dependency
	if l := len(c.deps); l > 0 && c.deps[l-1] == s {
		return
	}
	for _, d := range c.deps {
		if d == s {
			return
		}
	}

	c.deps = append(c.deps, s)
	s.base().addSub(c)
}

// markSubs marks every subscriber of n stale and enqueues affected effects.
// Caller holds mu.
func (n *node) markSubs(flag Flags) {
	for _, sub := range n.subs {
		mark(sub, flag)
	}
}

// mark records that c's upstream changed. Direct subscribers of a written
// source are marked FlagDirty; everything further downstream is marked
// FlagCheck and resolves lazily (pull) when settled. Effects are enqueued on
// their first mark; marking is idempotent per update. Caller holds mu.
func mark(c *Computation, flag Flags) {
	if c.flags.Has(FlagDisposed) {
		return
	}

	prev := c.flags.staleness()
	if prev >= flag {
		return
	}
	c.flags.Clear(FlagCheck | FlagDirty)
	c.flags.Set(flag)

	if c.kind == KindEffect {
		sched.enqueue(c)
		return
	}

	// freshly invalidated memo: its own subscribers might be affected
	if prev == FlagNone {
		c.markSubs(FlagCheck)
	}
}
