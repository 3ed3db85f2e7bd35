package glint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwner(t *testing.T) {
	t.Run("runs function and disposes", func(t *testing.T) {
		log := []string{}

		o := NewOwner()

		o.Run(func() error {
			NewEffect(func() {
				log = append(log, "effect")

				OnCleanup(func() { log = append(log, "cleanup") })
			})

			return nil
		})

		log = append(log, "ran")
		o.Dispose()
		log = append(log, "disposed")

		assert.Equal(t, []string{
			"effect",
			"ran",
			"cleanup",
			"disposed",
		}, log)
	})

	t.Run("returns the function's error", func(t *testing.T) {
		o := NewOwner()
		defer o.Dispose()

		sentinel := errors.New("boom")
		err := o.Run(func() error { return sentinel })
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("nested owners dispose children first", func(t *testing.T) {
		log := []string{}

		o := NewOwner()
		o.OnCleanup(func() {
			log = append(log, "parent cleanup")
		})

		o.Run(func() error {
			NewOwner().OnCleanup(func() {
				log = append(log, "child cleanup")
			})

			return nil
		})

		o.Dispose()

		assert.Equal(t, []string{
			"child cleanup",
			"parent cleanup",
		}, log)
	})

	t.Run("sibling effects disposal order", func(t *testing.T) {
		log := []string{}

		o := NewOwner()

		o.Run(func() error {
			OnCleanup(func() {
				log = append(log, "cleanup")
			})

			NewEffect(func() {
				log = append(log, "running first")

				NewEffect(func() {
					log = append(log, "running nested")
					OnCleanup(func() { log = append(log, "cleanup nested") })
				})

				OnCleanup(func() { log = append(log, "cleanup first") })
			})

			NewEffect(func() {
				log = append(log, "running second")
				OnCleanup(func() { log = append(log, "cleanup second") })
			})

			return nil
		})

		log = append(log, "ran")
		o.Dispose()
		log = append(log, "disposed")

		assert.Equal(t, []string{
			"running first",
			"running nested",
			"running second",
			"ran",
			"cleanup second",
			"cleanup nested",
			"cleanup first",
			"cleanup",
			"disposed",
		}, log)
	})

	t.Run("cleanups run in reverse registration order", func(t *testing.T) {
		log := []string{}

		o := NewOwner()
		o.OnCleanup(func() { log = append(log, "first") })
		o.OnCleanup(func() { log = append(log, "second") })
		o.OnCleanup(func() { log = append(log, "third") })

		o.Dispose()

		assert.Equal(t, []string{"third", "second", "first"}, log)
	})

	t.Run("dispose is idempotent", func(t *testing.T) {
		runs := 0

		o := NewOwner()
		o.OnCleanup(func() { runs++ })

		o.Dispose()
		o.Dispose()

		assert.Equal(t, 1, runs)
	})

	t.Run("cleanup on a disposed owner runs immediately", func(t *testing.T) {
		ran := false

		o := NewOwner()
		o.Dispose()
		o.OnCleanup(func() { ran = true })

		assert.True(t, ran)
	})

	t.Run("catches panics with OnError", func(t *testing.T) {
		log := []string{}

		o := NewOwner()
		defer o.Dispose()

		o.OnError(func(err any) {
			log = append(log, fmt.Sprintf("caught %v", err))
		})

		var errSignal *Signal[error]

		o.Run(func() error {
			// no boundary of its own; the panic climbs to o
			NewOwner().Run(func() error {
				errSignal = NewSignal[error](nil)

				NewEffect(func() {
					if e := errSignal.Read(); e != nil {
						panic(e)
					}
				})

				return nil
			})

			return nil
		})

		errSignal.Write(errors.New("oops"))

		assert.Equal(t, []string{
			"caught oops",
		}, log)
	})

	t.Run("unhandled panic escapes the triggering write", func(t *testing.T) {
		o := NewOwner()
		defer o.Dispose()

		var count *Signal[int]

		o.Run(func() error {
			count = NewSignal(0)

			NewEffect(func() {
				if count.Read() > 0 {
					panic("unguarded")
				}
			})

			return nil
		})

		assert.PanicsWithValue(t, "unguarded", func() {
			count.Write(1)
		})

		// the engine stays usable afterwards
		o.Run(func() error {
			probe := NewSignal(0)
			runs := 0
			NewEffect(func() {
				probe.Read()
				runs++
			})
			probe.Write(1)
			assert.Equal(t, 2, runs)

			return nil
		})
	})

	t.Run("disposal prevents effect re-runs", func(t *testing.T) {
		root := NewOwner()
		defer root.Dispose()

		root.Run(func() error {
			log := []int{}

			o := NewOwner()

			count := NewSignal(0)

			o.Run(func() error {
				NewEffect(func() {
					log = append(log, count.Read())
				})

				return nil
			})

			count.Write(1)
			o.Dispose()

			// no run after disposal
			count.Write(2)

			assert.Equal(t, []int{0, 1}, log)

			return nil
		})
	})

	t.Run("nodes created under a disposed owner are inert", func(t *testing.T) {
		root := NewOwner()
		defer root.Dispose()

		root.Run(func() error {
			runs := 0
			memoRuns := 0

			count := NewSignal(0)

			o := NewOwner()
			o.Run(func() error {
				o.Dispose()

				NewEffect(func() {
					count.Read()
					runs++
				})

				double := NewMemo(func() int {
					memoRuns++
					return count.Read() * 2
				})
				assert.Equal(t, 0, double.Read())

				return nil
			})

			count.Write(1)
			count.Write(2)

			assert.Equal(t, 0, runs)
			assert.Equal(t, 0, memoRuns)

			return nil
		})
	})

	t.Run("disposal during effect execution", func(t *testing.T) {
		root := NewOwner()
		defer root.Dispose()

		root.Run(func() error {
			log := []int{}

			o := NewOwner()

			count := NewSignal(0)

			NewEffect(func() {
				if count.Read() > 0 {
					o.Dispose()
				}
			})

			o.Run(func() error {
				NewEffect(func() {
					log = append(log, count.Read())
				})

				return nil
			})

			count.Write(1)

			assert.Equal(t, []int{0}, log)

			return nil
		})
	})

	t.Run("OnCleanup requires an owner", func(t *testing.T) {
		assert.PanicsWithError(t, (&NoOwnerError{Op: "OnCleanup"}).Error(), func() {
			OnCleanup(func() {})
		})
	})
}
