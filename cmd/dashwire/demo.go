package main

import (
	"github.com/dashwire-dev/dashwire/pkg/dom"
	"github.com/dashwire-dev/dashwire/pkg/layout"
	"github.com/dashwire-dev/dashwire/pkg/reactive"
)

// demoApp builds a small dashboard exercising every layout helper: an
// overlay of three plot panes cycled by a click modifier, a hover-reactive
// legend that can be pinned, and a theme switcher driven by a class-set
// binder.
func demoApp(scene *layout.Scene) *dom.VNode {
	pane := reactive.NewIntCell(1)
	pinned := reactive.NewIntCell(0)
	theme := reactive.NewIntCell(1)

	panes := scene.Overlay(pane, layout.Options{
		Animate: layout.AnimateFade,
		Style:   "height: 320px",
	},
		plotPane("Temperature", "#e05d44"),
		plotPane("Humidity", "#4497e0"),
		plotPane("Pressure", "#44e08b"),
	)

	// Rule parameters are static here; the error path is covered by tests.
	next, _ := scene.Clicker(pane, layout.Options{
		Rule:  layout.IncreaseMod,
		Step:  1,
		Cap:   3,
		Class: "demo-button",
	}, dom.Text("next pane"))

	prev, _ := scene.Clicker(pane, layout.Options{
		Rule:  layout.DecreaseMod,
		Step:  1,
		Cap:   3,
		Class: "demo-button",
	}, dom.Text("previous pane"))

	// The historical toggle rule reassigns the value unchanged, so the pin
	// button flips the cell directly instead of going through a Toggler.
	pin := dom.Div(dom.Class(layout.ClassClicker, "demo-button"), dom.Text("pin legend"))
	scene.On(pin, "click", func() {
		if pinned.Peek() == 0 {
			pinned.Set(1)
		} else {
			pinned.Set(0)
		}
	})

	legend := scene.Hover(layout.Options{StayActive: pinned},
		dom.Ul(
			dom.Li("Temperature (°C)"),
			dom.Li("Humidity (%)"),
			dom.Li("Pressure (hPa)"),
		),
	)

	themeCard := dom.Div(dom.Class("demo-card"), dom.Text("theme preview"))
	scene.BindClassSet(themeCard, theme, []string{"theme-light", "theme-dark", "theme-high-contrast"})
	themeNext, _ := scene.Clicker(theme, layout.Options{
		Rule: layout.IncreaseMod,
		Step: 1,
		Cap:  3,
	}, dom.Text("cycle theme"))

	return scene.Column(layout.Options{Class: "demo-root"},
		dom.H1("dashwire demo"),
		panes,
		scene.Row(layout.Options{Class: "demo-controls"}, prev, next),
		scene.Row(layout.Options{}, legend, pin),
		scene.Row(layout.Options{}, themeCard, themeNext),
	)
}

// plotPane fakes a plot surface; a real dashboard would mount the scene
// graph output here.
func plotPane(title, color string) *dom.VNode {
	return dom.Div(
		dom.Class("demo-pane"),
		dom.StyleAttr("background: "+color),
		dom.H2(title),
		dom.Canvas(dom.Attr{Key: "width", Value: 640}, dom.Attr{Key: "height", Value: 240}),
	)
}
