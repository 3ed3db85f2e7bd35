package glint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext(t *testing.T) {
	t.Run("store value", func(t *testing.T) {
		ctx := NewContext(0)
		assert.Equal(t, 0, ctx.Value())

		ctx.Set(42)
		assert.Equal(t, 0, ctx.Value()) // still zero, no owner to hold the value
	})

	t.Run("inherit value from parent owner", func(t *testing.T) {
		ctx := NewContext("default")

		parent := NewOwner()
		defer parent.Dispose()

		err := parent.Run(func() error {
			ctx.Set("parent value")

			return NewOwner().Run(func() error {
				assert.Equal(t, "parent value", ctx.Value())
				return nil
			})
		})
		assert.NoError(t, err)

		assert.Equal(t, "default", ctx.Value())
	})

	t.Run("child binding shadows parent", func(t *testing.T) {
		ctx := NewContext("default")

		parent := NewOwner()
		defer parent.Dispose()

		parent.Run(func() error {
			ctx.Set("outer")

			NewOwner().Run(func() error {
				ctx.Set("inner")
				assert.Equal(t, "inner", ctx.Value())
				return nil
			})

			assert.Equal(t, "outer", ctx.Value())
			return nil
		})
	})

	t.Run("visible inside effects", func(t *testing.T) {
		ctx := NewContext(0)

		o := NewOwner()
		defer o.Dispose()

		o.Run(func() error {
			ctx.Set(7)

			seen := -1
			NewEffect(func() {
				seen = ctx.Value()
			})
			assert.Equal(t, 7, seen)

			return nil
		})
	})
}
