package reactive

import "sync/atomic"

// globalIDCounter is the source of unique IDs for all reactive primitives.
// Atomic increments keep ID generation lock-free.
var globalIDCounter uint64

// nextID returns the next unique ID for a reactive primitive.
// IDs are monotonically increasing and never reused.
func nextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}
