package glint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraph(t *testing.T) {
	o := NewOwner()
	defer o.Dispose()

	o.Run(func() error {
		NewSignal(0).WithName("count")
		NewMemo(func() int { return 0 }).WithName("double")
		NewEffect(func() {}, WithEffectName("logger"))

		return nil
	})

	g := o.Graph()
	assert.Equal(t, "owner", g.Kind)
	if assert.Len(t, g.Children, 3) {
		assert.Equal(t, "signal", g.Children[0].Kind)
		assert.Equal(t, "count", g.Children[0].Name)
		assert.Equal(t, "memo", g.Children[1].Kind)
		assert.Equal(t, "double", g.Children[1].Name)
		assert.Equal(t, "effect", g.Children[2].Kind)
		assert.Equal(t, "logger", g.Children[2].Name)
	}
}
