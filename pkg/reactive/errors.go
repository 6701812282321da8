package reactive

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrReentrantWrite is the sentinel for a write issued to a cell from inside
// one of that cell's own change handlers. Such writes are dropped (or panic
// in strict mode) because they would recurse through the subscriber list.
var ErrReentrantWrite = errors.New("reactive: reentrant write to cell during notification")

// Strict controls how reentrant writes are handled.
// When false (the default), the write is dropped and counted.
// When true, the write panics with ErrReentrantWrite, which surfaces the
// offending handler immediately during development.
var Strict bool

// reentrantWrites counts dropped reentrant writes for diagnostics.
var reentrantWrites uint64

// ReentrantWrites returns the number of reentrant writes dropped so far.
func ReentrantWrites() uint64 {
	return atomic.LoadUint64(&reentrantWrites)
}

// reportReentrantWrite records a rejected reentrant write on the given cell.
func reportReentrantWrite(cellID uint64) {
	if Strict {
		panic(fmt.Errorf("%w (cell %d)", ErrReentrantWrite, cellID))
	}
	atomic.AddUint64(&reentrantWrites, 1)
}
