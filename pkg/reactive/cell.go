package reactive

import (
	"reflect"
	"sync"
)

// cellBase provides type-erased subscriber management.
// It is embedded in Cell[T] so bindings can track sources without knowing T.
type cellBase struct {
	id uint64

	// subs are the listeners subscribed to this cell.
	subs []Listener

	// subMu protects the subs slice.
	subMu sync.RWMutex

	// notifying is true while this cell is delivering change notifications.
	// A write to the same cell from inside one of its own change handlers is
	// a reentrant write and is rejected (see Set).
	notifying bool
}

// subscribe adds a listener to this cell's subscribers.
// Deduplicates by listener ID to prevent double-subscription.
func (c *cellBase) subscribe(l Listener) {
	if l == nil {
		return
	}

	c.subMu.Lock()
	defer c.subMu.Unlock()

	lid := l.ID()
	for _, existing := range c.subs {
		if existing.ID() == lid {
			return
		}
	}

	c.subs = append(c.subs, l)
}

// unsubscribe removes a listener from this cell's subscribers.
func (c *cellBase) unsubscribe(l Listener) {
	if l == nil {
		return
	}

	c.subMu.Lock()
	defer c.subMu.Unlock()

	lid := l.ID()
	for i, existing := range c.subs {
		if existing.ID() == lid {
			// Remove by swapping with last element (order doesn't matter)
			c.subs[i] = c.subs[len(c.subs)-1]
			c.subs = c.subs[:len(c.subs)-1]
			return
		}
	}
}

// notifySubscribers delivers a change notification to every subscriber.
// Uses copy-before-notify so no lock is held during handler execution.
// Outside of a batch the delivery is fully synchronous: every subscriber has
// finished processing before notifySubscribers returns.
func (c *cellBase) notifySubscribers() {
	c.subMu.RLock()
	subs := make([]Listener, len(c.subs))
	copy(subs, c.subs)
	c.subMu.RUnlock()

	if getBatchDepth() > 0 {
		for _, sub := range subs {
			queuePendingUpdate(sub)
		}
		return
	}

	c.subMu.Lock()
	c.notifying = true
	c.subMu.Unlock()

	// Reset even if a handler panics (strict-mode reentrancy).
	defer func() {
		c.subMu.Lock()
		c.notifying = false
		c.subMu.Unlock()
	}()

	for _, sub := range subs {
		sub.MarkDirty()
	}
}

// isNotifying reports whether the cell is currently delivering notifications.
func (c *cellBase) isNotifying() bool {
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	return c.notifying
}

// getID returns the unique identifier for this cell.
func (c *cellBase) getID() uint64 {
	return c.id
}

// Cell is a reactive value container, the observable unit every layout
// binder and click modifier attaches to.
//
// Reading a Cell during a tracked context (a Binding run) automatically
// subscribes the current listener to receive notifications when the value
// changes. Writes propagate synchronously: Set returns only after every
// subscriber has observed and finished processing the new value.
type Cell[T any] struct {
	base cellBase

	// value is the current cell value.
	value T

	// mu protects the value.
	mu sync.RWMutex

	// equal is the equality function used to decide whether a write changed
	// the value. If nil, default equality is used.
	equal func(T, T) bool
}

// NewCell creates a new cell with the given initial value.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		base: cellBase{
			id: nextID(),
		},
		value: initial,
	}
}

// Get returns the current value and subscribes the current listener.
// If called during a tracked context (a Binding run), the current listener
// will be notified when this cell's value changes.
func (c *Cell[T]) Get() T {
	// Read value with lock
	c.mu.RLock()
	value := c.value
	c.mu.RUnlock()

	// Track dependency (after releasing the value lock to prevent deadlock)
	if listener := getCurrentListener(); listener != nil {
		c.base.subscribe(listener)

		if b, ok := listener.(*Binding); ok {
			b.addSource(&c.base)
		}
	}

	return value
}

// Peek returns the current value without subscribing.
// Use this to read a value without creating a dependency.
func (c *Cell[T]) Peek() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set updates the cell's value and notifies subscribers if the value changed.
// Writing the value the cell already holds does not notify.
//
// A write issued from inside one of this cell's own change handlers is
// reentrant: it is dropped, and in strict mode it panics instead. Handlers
// that need to derive one cell from another should write to a different cell.
func (c *Cell[T]) Set(value T) {
	if c.base.isNotifying() {
		reportReentrantWrite(c.base.id)
		return
	}

	c.mu.Lock()
	changed := !c.equals(c.value, value)
	if changed {
		c.value = value
	}
	c.mu.Unlock()

	if changed {
		c.base.notifySubscribers()
	}
}

// Update atomically reads and updates the cell's value.
// The function receives the current value and returns the new value.
// Subject to the same reentrancy rule as Set.
func (c *Cell[T]) Update(fn func(T) T) {
	if c.base.isNotifying() {
		reportReentrantWrite(c.base.id)
		return
	}

	c.mu.Lock()
	oldValue := c.value
	newValue := fn(oldValue)
	changed := !c.equals(oldValue, newValue)
	if changed {
		c.value = newValue
	}
	c.mu.Unlock()

	if changed {
		c.base.notifySubscribers()
	}
}

// WithEquals returns the cell configured with a custom equality function.
// Useful for types where reflect.DeepEqual is too expensive or has the
// wrong semantics.
func (c *Cell[T]) WithEquals(fn func(T, T) bool) *Cell[T] {
	c.equal = fn
	return c
}

// ID returns the unique identifier for this cell.
func (c *Cell[T]) ID() uint64 {
	return c.base.id
}

// equals checks whether two values are equal using the configured equality
// function, falling back to defaultEquals.
func (c *Cell[T]) equals(a, b T) bool {
	if c.equal != nil {
		return c.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals provides type-appropriate equality checking.
// Uses == for common comparable types and reflect.DeepEqual for the rest.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		// Slices, maps, structs, etc.
		return reflect.DeepEqual(a, b)
	}
}
