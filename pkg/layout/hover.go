package layout

import "github.com/dashwire-dev/dashwire/pkg/dom"

// Hover wraps the children in a container that carries the hovered marker
// while the pointer is over it. With Options.StayActive set, the hovered
// visual state is also pinned while that cell is nonzero; the stylesheet
// combines the two markers, so the container looks hovered when either
// condition holds.
func (s *Scene) Hover(o Options, children ...*dom.VNode) *dom.VNode {
	node := dom.Div(dom.Class(ClassHover), children)
	o.decorate(node)

	s.On(node, "pointerenter", func() {
		s.setMarker(node, ClassHovered, true)
	})
	s.On(node, "pointerleave", func() {
		s.setMarker(node, ClassHovered, false)
	})

	if o.StayActive != nil {
		s.BindStay(node, o.StayActive)
	}
	return node
}
