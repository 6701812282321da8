package layout

import (
	"github.com/dashwire-dev/dashwire/pkg/dom"
	"github.com/dashwire-dev/dashwire/pkg/reactive"
)

// Overlay stacks the children on top of each other and shows exactly the one
// the index cell selects (1-indexed). Every child is wrapped so the active
// marker always lands on an element, regardless of the child's own kind.
//
// An out-of-range index shows no child. Options.Animate picks the reveal
// animation variant.
func (s *Scene) Overlay(cell *reactive.IntCell, o Options, children ...*dom.VNode) *dom.VNode {
	wrapped := make([]*dom.VNode, 0, len(children))
	for _, child := range children {
		if child == nil {
			continue
		}
		wrapped = append(wrapped, dom.Div(dom.Class(ClassOverlayChild), child))
	}

	node := dom.Div(dom.Class(ClassOverlay), wrapped)
	if o.Animate != "" {
		dom.AddClass(node, o.Animate)
	}
	o.decorate(node)

	s.BindActiveChild(node, cell, len(wrapped))
	return node
}
