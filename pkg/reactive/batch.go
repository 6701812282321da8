package reactive

// Batch groups multiple cell updates into a single notification phase.
// All cell updates within the batch function are collected, deduplicated,
// and all affected listeners are notified once when the batch completes.
//
// Batches can be nested. Notifications only fire when the outermost batch
// completes, and still fully propagate before Batch returns.
//
// Example:
//
//	Batch(func() {
//	    paneIndex.Set(2)
//	    legendPinned.Set(1)
//	})
//	// Subscribers see both writes, each notified once
func Batch(fn func()) {
	incrementBatchDepth()

	defer func() {
		if decrementBatchDepth() {
			processPendingUpdates()
		}
	}()

	fn()
}

// processPendingUpdates deduplicates and notifies all pending listeners.
func processPendingUpdates() {
	updates := drainPendingUpdates()
	if len(updates) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(updates))
	unique := make([]Listener, 0, len(updates))

	for _, listener := range updates {
		id := listener.ID()
		if !seen[id] {
			seen[id] = true
			unique = append(unique, listener)
		}
	}

	for _, listener := range unique {
		listener.MarkDirty()
	}
}

// Untracked runs a function without tracking cell reads as dependencies.
//
// Note: for single cell reads, cell.Peek() is more efficient and clearer
// in intent.
func Untracked(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}

// UntrackedGet reads a cell's value without creating a dependency.
// Convenience equivalent of cell.Peek().
func UntrackedGet[T any](c *Cell[T]) T {
	return c.Peek()
}
