package glint

import "github.com/glint-dev/glint/internal"

// Effect is a computation run for its side effects. The first run happens
// synchronously at creation; later runs are queued when a dependency changes
// and coalesce, so any number of writes before a flush produce one run.
type Effect struct {
	effect *internal.Computation
}

// EffectOption configures an effect at creation.
type EffectOption func(*effectConfig)

type effectConfig struct {
	name string
}

// WithEffectName labels the effect in inspection output. The label is
// attached before the initial run.
func WithEffectName(name string) EffectOption {
	return func(c *effectConfig) {
		c.name = name
	}
}

// NewEffect creates a user effect owned by the current owner and runs it
// once. Panics with *NoOwnerError outside any owner.
func NewEffect(fn func(), opts ...EffectOption) *Effect {
	return newEffect(fn, internal.EffectUser, opts)
}

// NewRenderEffect creates an effect in the render class: within one flush,
// all pending render effects run before any user effect. Meant for effects
// that must observe state before user-level reactions do.
func NewRenderEffect(fn func(), opts ...EffectOption) *Effect {
	return newEffect(fn, internal.EffectRender, opts)
}

func newEffect(fn func(), effectType internal.EffectType, opts []EffectOption) *Effect {
	var cfg effectConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Effect{
		effect: internal.GetRuntime().NewEffect(fn, effectType, cfg.name),
	}
}
