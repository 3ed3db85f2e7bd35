package internal

// Flags represents the state of a reactive node in the dependency graph.
type Flags uint8

const (
	FlagNone Flags = 0
	// FlagCheck marks a node whose upstream MAY have changed; it must settle
	// its memo dependencies before deciding whether to recompute.
	FlagCheck Flags = 1 << iota
	// FlagDirty marks a node that definitely needs recomputation.
	FlagDirty
	// FlagQueued marks an effect sitting in the scheduler worklist.
	FlagQueued
	// FlagRecomputing marks a node whose body is currently executing.
	FlagRecomputing
	// FlagDisposed marks a node whose owner was disposed; all notifications
	// become no-ops.
	FlagDisposed
)

func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

func (f *Flags) Set(flag Flags) {
	*f |= flag
}

func (f *Flags) Clear(flag Flags) {
	*f &^= flag
}

// staleness returns only the Check/Dirty bits, ordered so that
// FlagDirty > FlagCheck > FlagNone.
func (f Flags) staleness() Flags {
	return f & (FlagCheck | FlagDirty)
}
