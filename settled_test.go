package glint

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnSettled(t *testing.T) {
	t.Run("runs when flush finishes", func(t *testing.T) {
		o := NewOwner()
		defer o.Dispose()

		o.Run(func() error {
			log := []string{}

			count := NewSignal(0)

			NewEffect(func() {
				log = append(log, fmt.Sprintf("changed %d", count.Read()))

				OnCleanup(func() {
					log = append(log, "cleanup")
				})
			})

			OnSettled(func() {
				log = append(log, "settled")
			})

			count.Write(10)

			assert.Equal(t, []string{
				"changed 0",
				"cleanup",
				"changed 10",
				"settled",
			}, log)

			return nil
		})
	})

	t.Run("waits for chained effects", func(t *testing.T) {
		o := NewOwner()
		defer o.Dispose()

		o.Run(func() error {
			log := []string{}

			a := NewSignal(0)
			b := NewSignal(0)

			NewEffect(func() {
				log = append(log, fmt.Sprintf("A changed %d", a.Read()))

				b.Write(a.Read() * 2)

				OnCleanup(func() {
					log = append(log, "A cleanup")
				})
			})

			NewEffect(func() {
				log = append(log, fmt.Sprintf("B changed %d", b.Read()))

				OnCleanup(func() {
					log = append(log, "B cleanup")
				})
			})

			OnSettled(func() {
				log = append(log, "settled")
			})

			a.Write(10)

			assert.Equal(t, []string{
				"A changed 0",
				"B changed 0",
				"A cleanup",
				"A changed 10",
				"B cleanup",
				"B changed 20",
				"settled",
			}, log)

			return nil
		})
	})

	t.Run("runs once", func(t *testing.T) {
		o := NewOwner()
		defer o.Dispose()

		o.Run(func() error {
			log := []string{}

			count := NewSignal(0)
			NewEffect(func() {
				log = append(log, fmt.Sprintf("changed %d", count.Read()))

				OnCleanup(func() {
					log = append(log, "cleanup")
				})
			})

			OnSettled(func() {
				log = append(log, "settled")
			})

			count.Write(10)
			count.Write(20)

			assert.Equal(t, []string{
				"changed 0",
				"cleanup",
				"changed 10",
				"settled",
				"cleanup",
				"changed 20",
			}, log)

			return nil
		})
	})

	t.Run("from a goroutine", func(t *testing.T) {
		o := NewOwner()
		defer o.Dispose()

		o.Run(func() error {
			var wg sync.WaitGroup
			log := []string{}

			count := NewSignal(0)
			NewEffect(func() {
				log = append(log, fmt.Sprintf("changed %d", count.Read()))

				OnCleanup(func() {
					log = append(log, "cleanup")
				})
			})

			wg.Add(1)
			go func() {
				defer wg.Done()
				OnSettled(func() {
					log = append(log, "settled")
				})

				count.Write(10)
			}()

			wg.Wait()

			assert.Equal(t, []string{
				"changed 0",
				"cleanup",
				"changed 10",
				"settled",
			}, log)

			return nil
		})
	})

	t.Run("writes from settled callbacks keep draining", func(t *testing.T) {
		o := NewOwner()
		defer o.Dispose()

		o.Run(func() error {
			log := []string{}

			a := NewSignal(0)
			b := NewSignal(0)

			NewEffect(func() {
				log = append(log, fmt.Sprintf("b %d", b.Read()))
			})

			NewEffect(func() {
				a.Read()
			})

			OnSettled(func() {
				log = append(log, "settled")
				b.Write(1)
			})

			a.Write(10)

			assert.Equal(t, []string{
				"b 0",
				"settled",
				"b 1",
			}, log)

			return nil
		})
	})
}
