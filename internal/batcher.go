package internal

// Batcher defers flushing while one or more batches are open. Writes inside
// a batch still mark and queue immediately; only the drain waits for the
// outermost batch to close.
type Batcher struct {
	// each nested batch increases the depth by 1
	depth int
}

func NewBatcher() *Batcher {
	return &Batcher{}
}

func (b *Batcher) IsBatching() bool {
	return b.depth > 0
}

func (b *Batcher) Batch(fn, onComplete func()) {
	b.depth++
	defer func() {
		b.depth--
		if b.depth == 0 && onComplete != nil {
			onComplete()
		}
	}()

	fn()
}

// NewBatch runs fn with flushing deferred until fn (and any batch it is
// nested in) returns. The closing flush runs every queued effect exactly
// once, whatever the number of writes inside.
func (r *Runtime) NewBatch(fn func()) {
	r.batcher.Batch(fn, sched.flush)
}
