package layout

import (
	"github.com/dashwire-dev/dashwire/pkg/dom"
	"github.com/dashwire-dev/dashwire/pkg/reactive"
)

// Selector binders maintain marker-class invariants against an index cell.
//
// Out-of-range policy: both binders treat an index outside the valid range
// as "mark nothing" - every managed marker is removed and none is added.
// The policy is deliberately uniform; see DESIGN.md.

// BindActiveChild keeps the active marker on exactly one of the container's
// first total children: child v (1-indexed) carries ClassActive if and only
// if the cell holds v. Recomputed synchronously on every cell change, and
// idempotent - rebinding or re-running with the same value changes nothing.
func (s *Scene) BindActiveChild(container *dom.VNode, cell *reactive.IntCell, total int) *reactive.Binding {
	if total > len(container.Children) {
		total = len(container.Children)
	}
	for i := 0; i < total; i++ {
		s.Ref(container.Children[i])
	}
	return s.track(reactive.Bind(func() reactive.Cleanup {
		v := cell.Get()
		for i := 0; i < total; i++ {
			s.setMarker(container.Children[i], ClassActive, i+1 == v)
		}
		return nil
	}))
}

// BindClassSet swaps the element's class among a fixed ordered candidate
// list: on value v, every class in the list is removed from the element and
// classes[v-1] is added. An out-of-range v leaves the element with none of
// the candidate classes.
func (s *Scene) BindClassSet(node *dom.VNode, cell *reactive.IntCell, classes []string) *reactive.Binding {
	// Private copy; the candidate list is fixed at bind time.
	candidates := make([]string, len(classes))
	copy(candidates, classes)

	s.Ref(node)
	return s.track(reactive.Bind(func() reactive.Cleanup {
		v := cell.Get()
		for i, class := range candidates {
			s.setMarker(node, class, i+1 == v)
		}
		return nil
	}))
}

// BindStay keeps the stay marker on the node while the stay-active cell
// holds a nonzero value. Combined with the hovered marker through the
// stylesheet's OR selector, the node shows its hovered visual state whenever
// the pointer is over it or the cell is set.
func (s *Scene) BindStay(node *dom.VNode, stay *reactive.IntCell) *reactive.Binding {
	s.Ref(node)
	return s.track(reactive.Bind(func() reactive.Cleanup {
		s.setMarker(node, ClassStay, stay.Get() != 0)
		return nil
	}))
}
