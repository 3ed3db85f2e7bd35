package glint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoot(t *testing.T) {
	t.Run("nodes outlive the function", func(t *testing.T) {
		log := []int{}

		var count *Signal[int]
		dispose := NewRoot(func(dispose func()) func() {
			count = NewSignal(0)

			NewEffect(func() {
				log = append(log, count.Read())
			})

			return dispose
		})

		count.Write(1)
		count.Write(2)

		dispose()
		count.Write(3)

		assert.Equal(t, []int{0, 1, 2}, log)
	})

	t.Run("dispose can be called inside", func(t *testing.T) {
		ran := false

		NewRoot(func(dispose func()) any {
			OnCleanup(func() { ran = true })
			dispose()
			return nil
		})

		assert.True(t, ran)
	})

	t.Run("nests under an enclosing owner", func(t *testing.T) {
		log := []string{}

		parent := NewOwner()
		parent.Run(func() error {
			NewRoot(func(dispose func()) any {
				OnCleanup(func() { log = append(log, "root cleanup") })
				return nil
			})
			return nil
		})

		parent.Dispose()

		assert.Equal(t, []string{"root cleanup"}, log)
	})
}
