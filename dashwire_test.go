package dashwire

import (
	"testing"

	"github.com/dashwire-dev/dashwire/pkg/dom"
)

func TestFacadeOverlayCycle(t *testing.T) {
	scene := NewScene()
	defer scene.Close()

	pane := NewIntCell(1)
	overlay := scene.Overlay(pane, Options{},
		dom.Div(dom.Text("temperature")),
		dom.Div(dom.Text("humidity")),
		dom.Div(dom.Text("pressure")),
	)

	next, err := scene.Clicker(pane, Options{Rule: IncreaseMod, Step: 1, Cap: 3}, dom.Text("next"))
	if err != nil {
		t.Fatal(err)
	}

	active := func() int {
		for i, child := range overlay.Children {
			if dom.HasClass(child, ClassActive) {
				return i + 1
			}
		}
		return 0
	}

	want := []int{2, 3, 1}
	for _, w := range want {
		if err := scene.Dispatch(next.Ref, "click"); err != nil {
			t.Fatal(err)
		}
		if got := active(); got != w {
			t.Errorf("active pane = %d, want %d", got, w)
		}
	}
}

func TestFacadeCells(t *testing.T) {
	index := NewCell("a")
	index.Set("b")
	if got := UntrackedGet(index); got != "b" {
		t.Errorf("UntrackedGet = %q", got)
	}

	runs := 0
	b := Bind(func() Cleanup {
		runs++
		_ = index.Get()
		return nil
	})
	defer b.Dispose()

	Batch(func() {
		index.Set("c")
		index.Set("d")
	})
	if runs != 2 {
		t.Errorf("expected a single batched re-run, got %d runs", runs)
	}
}

func TestFacadeTransitions(t *testing.T) {
	tr, err := NewTransition(DecreaseCap, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Apply(1); got != 1 {
		t.Errorf("Apply(1) = %d, want saturation at 1", got)
	}

	rule, err := ParseRule("decrease-mod")
	if err != nil || rule != DecreaseMod {
		t.Errorf("ParseRule = %v, %v", rule, err)
	}

	if Stylesheet() == "" {
		t.Errorf("stylesheet should not be empty")
	}
}
