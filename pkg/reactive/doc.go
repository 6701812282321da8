// Package reactive implements the observable cell runtime that dashwire
// layout helpers bind to.
//
// A Cell is a single mutable value with a subscriber list. Reads inside a
// Binding run are tracked automatically; writes notify every subscriber
// synchronously, so by the time Set returns, every binder attached to the
// cell has finished recomputing. Batch groups writes when several cells
// change together.
//
// The runtime is cooperative and event-driven: within one live session all
// handlers run to completion on the session goroutine, and a cell is never
// mutated concurrently from two handlers of the same session.
package reactive
