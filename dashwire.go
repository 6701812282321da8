// Package dashwire provides the public API for the dashwire layout helpers.
//
// This is the recommended import for most applications:
//
//	import "github.com/dashwire-dev/dashwire"
//
// Usage:
//
//	scene := dashwire.NewScene()
//	pane := dashwire.NewIntCell(1)
//	view := scene.Overlay(pane, dashwire.Options{}, plotA, plotB)
package dashwire

import (
	"github.com/dashwire-dev/dashwire/pkg/layout"
	"github.com/dashwire-dev/dashwire/pkg/reactive"
)

// =============================================================================
// Reactive primitives (re-export from pkg/reactive)
// =============================================================================

// NewCell creates a new observable cell with the given initial value.
//
// Example:
//
//	index := dashwire.NewCell(1)
//	index.Set(2)
//	value := index.Get() // 2
func NewCell[T any](initial T) *Cell[T] {
	return reactive.NewCell(initial)
}

// NewIntCell creates an integer cell with arithmetic helpers.
var NewIntCell = reactive.NewIntCell

// NewBoolCell creates a boolean cell.
var NewBoolCell = reactive.NewBoolCell

// Bind registers a reactive callback that re-runs when any cell it reads
// changes.
var Bind = reactive.Bind

// Batch groups multiple cell updates into a single notification.
var Batch = reactive.Batch

// Untracked reads cells without creating subscriptions.
var Untracked = reactive.Untracked

// UntrackedGet reads a cell's value without subscribing.
func UntrackedGet[T any](c *Cell[T]) T {
	return reactive.UntrackedGet(c)
}

// Cell type aliases
type Cell[T any] = reactive.Cell[T]
type IntCell = reactive.IntCell
type BoolCell = reactive.BoolCell
type Binding = reactive.Binding
type Cleanup = reactive.Cleanup
type Listener = reactive.Listener

// ErrReentrantWrite reports a write to a cell from inside that cell's own
// change notification.
var ErrReentrantWrite = reactive.ErrReentrantWrite

// =============================================================================
// Layout helpers (re-export from pkg/layout)
// =============================================================================

// NewScene creates an empty scene. Every layout constructor hangs off a
// scene; there is no ambient default.
var NewScene = layout.New

// Scene is the explicit session object layout helpers are built against.
type Scene = layout.Scene

// Options is the configuration record accepted by every constructor.
type Options = layout.Options

// Patch records one marker-class change on a referenced node.
type Patch = layout.Patch

// Transition rule tags.
type Rule = layout.Rule

const (
	Toggle      = layout.Toggle
	Increase    = layout.Increase
	Decrease    = layout.Decrease
	IncreaseMod = layout.IncreaseMod
	DecreaseMod = layout.DecreaseMod
	IncreaseCap = layout.IncreaseCap
	DecreaseCap = layout.DecreaseCap
)

// Transition is a validated transition policy.
type Transition = layout.Transition

// NewTransition validates rule parameters and returns the transition.
var NewTransition = layout.NewTransition

// ParseRule resolves a rule tag name.
var ParseRule = layout.ParseRule

// Marker classes (part of the styling contract).
const (
	ClassActive  = layout.ClassActive
	ClassHovered = layout.ClassHovered
	ClassStay    = layout.ClassStay
)

// Stylesheet returns the CSS backing the marker and container classes.
var Stylesheet = layout.Stylesheet
