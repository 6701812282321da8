package layout

import (
	"strings"

	"github.com/dashwire-dev/dashwire/pkg/dom"
	"github.com/dashwire-dev/dashwire/pkg/reactive"
)

// Options is the configuration record every constructor accepts alongside
// its ordered child list. The zero value is valid everywhere; fields are
// only consulted by the constructors that recognize them.
type Options struct {
	// Class is appended to the container's CSS classes.
	Class string

	// Style is appended to the container's inline style.
	Style string

	// Animate selects an animation variant class (AnimateFade, ...).
	// Recognized by Overlay.
	Animate string

	// StayActive pins the hovered visual state while the cell is nonzero.
	// Recognized by Hover.
	StayActive *reactive.IntCell

	// Rule, Step and Cap configure the transition a Clicker applies.
	Rule Rule
	Step int
	Cap  int
}

// decorate applies the shared Class/Style options to a container node.
func (o Options) decorate(node *dom.VNode) {
	if o.Class != "" {
		for _, c := range strings.Fields(o.Class) {
			dom.AddClass(node, c)
		}
	}
	if o.Style != "" {
		existing, _ := node.Props["style"].(string)
		if existing == "" {
			node.Props["style"] = o.Style
		} else {
			node.Props["style"] = existing + "; " + o.Style
		}
	}
}
