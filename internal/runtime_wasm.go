//go:build wasm

package internal

import "sync"

var once sync.Once
var globalRuntime *Runtime

// GetRuntime returns the single shared runtime. WASM has no goroutine
// parallelism worth isolating, so one runtime serves the whole program.
func GetRuntime() *Runtime {
	once.Do(func() {
		globalRuntime = NewRuntime()
	})

	return globalRuntime
}
