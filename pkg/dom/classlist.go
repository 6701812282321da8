package dom

import "strings"

// Class-list helpers treat the class attribute as an ordered set of labels.
// Marker classes ("dw-active", "dw-hovered", ...) are flipped through these
// helpers by scene binders; adding a class that is already present and
// removing one that is absent are both no-ops, which is what makes the
// binders idempotent.

// Classes returns the ordered class list of the node.
// Returns nil for non-element nodes or nodes without a class attribute.
func Classes(node *VNode) []string {
	if node == nil || node.Kind != KindElement || node.Props == nil {
		return nil
	}
	raw, ok := node.Props["class"].(string)
	if !ok || raw == "" {
		return nil
	}
	return strings.Fields(raw)
}

// HasClass reports whether the node carries the given class.
func HasClass(node *VNode, class string) bool {
	for _, c := range Classes(node) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds a class to the node if not already present.
// Existing classes keep their order; the new class is appended.
func AddClass(node *VNode, class string) {
	if node == nil || node.Kind != KindElement || class == "" {
		return
	}
	if HasClass(node, class) {
		return
	}
	if node.Props == nil {
		node.Props = make(Props)
	}
	existing, _ := node.Props["class"].(string)
	if existing == "" {
		node.Props["class"] = class
		return
	}
	node.Props["class"] = existing + " " + class
}

// RemoveClass removes a class from the node if present.
func RemoveClass(node *VNode, class string) {
	if node == nil || node.Kind != KindElement || node.Props == nil {
		return
	}
	classes := Classes(node)
	if len(classes) == 0 {
		return
	}
	kept := classes[:0]
	removed := false
	for _, c := range classes {
		if c == class {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return
	}
	if len(kept) == 0 {
		delete(node.Props, "class")
		return
	}
	node.Props["class"] = strings.Join(kept, " ")
}

// ToggleClass adds the class when on is true and removes it otherwise.
func ToggleClass(node *VNode, class string, on bool) {
	if on {
		AddClass(node, class)
	} else {
		RemoveClass(node, class)
	}
}
