package internal

import "sync/atomic"

// Process-wide counters, cheap enough to keep always on. Exposed through
// Snapshot for the metrics package.
var (
	statSignalsCreated atomic.Uint64
	statMemosCreated   atomic.Uint64
	statEffectsCreated atomic.Uint64
	statWrites         atomic.Uint64
	statEffectRuns     atomic.Uint64
	statMemoRecomputes atomic.Uint64
	statFlushes        atomic.Uint64
	statPanicsCaught   atomic.Uint64
	statOwnersDisposed atomic.Uint64
)

// Stats is a point-in-time copy of the engine counters. All values are
// monotonic totals since process start.
type Stats struct {
	SignalsCreated uint64
	MemosCreated   uint64
	EffectsCreated uint64
	Writes         uint64
	EffectRuns     uint64
	MemoRecomputes uint64
	Flushes        uint64
	PanicsCaught   uint64
	OwnersDisposed uint64
}

func Snapshot() Stats {
	return Stats{
		SignalsCreated: statSignalsCreated.Load(),
		MemosCreated:   statMemosCreated.Load(),
		EffectsCreated: statEffectsCreated.Load(),
		Writes:         statWrites.Load(),
		EffectRuns:     statEffectRuns.Load(),
		MemoRecomputes: statMemoRecomputes.Load(),
		Flushes:        statFlushes.Load(),
		PanicsCaught:   statPanicsCaught.Load(),
		OwnersDisposed: statOwnersDisposed.Load(),
	}
}
