package glint

import "github.com/glint-dev/glint/internal"

// Stats is a point-in-time copy of the engine's activity counters. All
// fields are monotonic totals since process start, across every goroutine.
type Stats = internal.Stats

// ReadStats returns the current engine counters.
func ReadStats() Stats {
	return internal.Snapshot()
}
