// Package layout provides declarative layout helpers for reactive
// dashboards: stack containers, an overlay with a selectable active child, a
// hover-reactive wrapper, class-selector binders, and click-driven numeric
// modifiers.
//
// All helpers hang off an explicit Scene built once at application start;
// there is no ambient default. Helpers emit their DOM fragment once and
// afterwards only flip marker classes, driven by the observable cells they
// are bound to. Cell writes propagate synchronously, so by the time a click
// handler returns, every selector bound to the same cell has recomputed and
// the resulting patches are queued on the scene.
//
//	scene := layout.New()
//	pane := reactive.NewIntCell(1)
//	view := scene.Overlay(pane, layout.Options{Animate: layout.AnimateFade},
//	    plotA, plotB, plotC)
//	next, err := scene.Clicker(pane, layout.Options{
//	    Rule: layout.IncreaseMod, Step: 1, Cap: 3,
//	}, dom.Text("next pane"))
package layout
