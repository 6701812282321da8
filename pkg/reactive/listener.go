package reactive

// Listener is anything that can be notified when a cell it depends on changes.
// Bindings implement it.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies has changed.
	// Propagation is synchronous: the listener must finish processing the new
	// value before MarkDirty returns.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	// Used for deduplication during batch processing.
	ID() uint64
}

// Cleanup is a function returned by bindings to release resources.
// It is called before the binding re-runs and when the binding is disposed.
type Cleanup func()
