package layout

import "github.com/dashwire-dev/dashwire/pkg/dom"

// Row lays the children out horizontally in a flex row.
func (s *Scene) Row(o Options, children ...*dom.VNode) *dom.VNode {
	return s.stack(ClassRow, o, children)
}

// Column lays the children out vertically in a flex column.
func (s *Scene) Column(o Options, children ...*dom.VNode) *dom.VNode {
	return s.stack(ClassColumn, o, children)
}

func (s *Scene) stack(class string, o Options, children []*dom.VNode) *dom.VNode {
	node := dom.Div(dom.Class(class), children)
	o.decorate(node)
	return node
}
