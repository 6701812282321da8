package reactive

import (
	"sync"
	"sync/atomic"
)

// Binding is a reactive callback that re-runs when any cell it reads changes.
// Dependencies are tracked automatically during each run, so a binding that
// reads different cells on different runs stays subscribed only to the cells
// it actually used last.
//
// Bindings run immediately when created and re-run synchronously when a
// dependency changes. They can return a Cleanup that is called before the
// binding re-runs and when it is disposed.
type Binding struct {
	id uint64

	// fn is the binding function to run.
	fn func() Cleanup

	// cleanup is the cleanup function from the last run.
	cleanup Cleanup

	// sources are the cells this binding depends on.
	sources   []*cellBase
	sourcesMu sync.Mutex

	// disposed indicates the binding has been disposed.
	disposed atomic.Bool
}

// Bind creates and immediately runs a new binding.
// The function re-runs whenever any cell it reads changes. If it returns a
// Cleanup, the cleanup runs before each re-run and on Dispose.
//
// Example:
//
//	Bind(func() Cleanup {
//	    fmt.Println("index is:", index.Get())
//	    return nil
//	})
func Bind(fn func() Cleanup) *Binding {
	b := &Binding{
		id: nextID(),
		fn: fn,
	}
	b.run()
	return b
}

// MarkDirty re-runs the binding synchronously.
// Implements the Listener interface.
func (b *Binding) MarkDirty() {
	if b.disposed.Load() {
		return
	}
	b.run()
}

// ID returns the unique identifier for this binding.
// Implements the Listener interface.
func (b *Binding) ID() uint64 {
	return b.id
}

// run executes the binding function, re-tracking dependencies.
func (b *Binding) run() {
	if b.disposed.Load() {
		return
	}

	// Run cleanup from the previous run
	if b.cleanup != nil {
		b.cleanup()
		b.cleanup = nil
	}

	// Unsubscribe from old sources; the run below re-subscribes to whatever
	// it actually reads.
	b.sourcesMu.Lock()
	for _, source := range b.sources {
		source.unsubscribe(b)
	}
	b.sources = b.sources[:0]
	b.sourcesMu.Unlock()

	oldListener := setCurrentListener(b)
	b.cleanup = b.fn()
	setCurrentListener(oldListener)
}

// addSource adds a source dependency.
// Called by cells when they are read during a binding run.
func (b *Binding) addSource(source *cellBase) {
	b.sourcesMu.Lock()
	defer b.sourcesMu.Unlock()

	for _, s := range b.sources {
		if s == source {
			return
		}
	}
	b.sources = append(b.sources, source)
}

// Dispose stops the binding, runs its cleanup, and unsubscribes it from all
// sources. Safe to call more than once.
func (b *Binding) Dispose() {
	if b.disposed.Swap(true) {
		return
	}

	if b.cleanup != nil {
		b.cleanup()
		b.cleanup = nil
	}

	b.sourcesMu.Lock()
	for _, source := range b.sources {
		source.unsubscribe(b)
	}
	b.sources = nil
	b.sourcesMu.Unlock()
}
