package glint

// NewRoot runs fn inside a fresh owner and hands it that owner's dispose
// function. The owner outlives fn; reactive nodes created inside keep
// running until dispose is called.
func NewRoot[T any](fn func(dispose func()) T) T {
	owner := NewOwner()

	var result T
	owner.Run(func() error {
		result = fn(owner.Dispose)
		return nil
	})
	return result
}
