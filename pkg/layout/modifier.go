package layout

import (
	"github.com/dashwire-dev/dashwire/pkg/dom"
	"github.com/dashwire-dev/dashwire/pkg/reactive"
)

// Clicker wraps the children in a clickable container that applies the
// configured transition (Options.Rule/Step/Cap) to the cell on each
// activation. The rule parameters are validated up front; a step or cap
// outside its precondition is a configuration error, not a silent
// degenerate state.
//
// The write propagates synchronously: every subscriber of the cell -
// including any selector bound to it - has finished processing the new
// value before the click handler returns.
func (s *Scene) Clicker(cell *reactive.IntCell, o Options, children ...*dom.VNode) (*dom.VNode, error) {
	tr, err := NewTransition(o.Rule, o.Step, o.Cap)
	if err != nil {
		return nil, err
	}
	return s.clicker(cell, tr, o, children), nil
}

// Toggler is a Clicker fixed to the Toggle rule. Toggle takes no parameters
// and cannot fail validation, so no error is returned.
func (s *Scene) Toggler(cell *reactive.IntCell, o Options, children ...*dom.VNode) *dom.VNode {
	return s.clicker(cell, Transition{Rule: Toggle}, o, children)
}

func (s *Scene) clicker(cell *reactive.IntCell, tr Transition, o Options, children []*dom.VNode) *dom.VNode {
	node := dom.Div(dom.Class(ClassClicker), children)
	o.decorate(node)

	s.On(node, "click", func() {
		cell.Set(tr.Apply(cell.Peek()))
	})
	return node
}
