package dom

import "testing"

func TestCreateElementArgs(t *testing.T) {
	node := Div(
		ID("root"),
		Class("panel"),
		nil, // ignored
		Span("inner"),
		[]*VNode{Text("a"), nil, Text("b")},
		"shorthand text",
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("unexpected node %+v", node)
	}
	if node.Props["id"] != "root" {
		t.Errorf("id = %v", node.Props["id"])
	}
	if got, _ := node.Props["class"].(string); got != "panel" {
		t.Errorf("class = %q", got)
	}
	// span + 2 texts from the slice + shorthand string
	if len(node.Children) != 4 {
		t.Fatalf("expected 4 children, got %d", len(node.Children))
	}
	if last := node.Children[3]; last.Kind != KindText || last.Text != "shorthand text" {
		t.Errorf("shorthand string child = %+v", last)
	}
}

func TestCreateElementKey(t *testing.T) {
	node := Li(Key("row-7"), "entry")
	if node.Key != "row-7" {
		t.Errorf("Key = %q, want %q", node.Key, "row-7")
	}
}

func TestCreateElementEventHandler(t *testing.T) {
	fn := func() {}
	node := Button(EventHandler{Event: "onclick", Handler: fn}, "go")
	if node.Props["onclick"] == nil {
		t.Errorf("handler not stored")
	}
	if !node.IsInteractive() {
		t.Errorf("node with handler should be interactive")
	}
	if Div().IsInteractive() {
		t.Errorf("bare div should not be interactive")
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") || !IsVoidElement("img") {
		t.Errorf("br and img are void")
	}
	if IsVoidElement("div") {
		t.Errorf("div is not void")
	}
}

func TestFragment(t *testing.T) {
	f := Fragment(Text("a"), nil, []*VNode{Text("b")}, "c")
	if f.Kind != KindFragment {
		t.Fatalf("kind = %v", f.Kind)
	}
	if len(f.Children) != 3 {
		t.Errorf("expected 3 children, got %d", len(f.Children))
	}
}

func TestConditionalHelpers(t *testing.T) {
	shown := Span("yes")
	if If(true, shown) != shown || If(false, shown) != nil {
		t.Errorf("If misbehaved")
	}
	other := Span("no")
	if IfElse(false, shown, other) != other {
		t.Errorf("IfElse misbehaved")
	}

	items := Range([]string{"x", "y"}, func(s string, i int) *VNode {
		return Li(s)
	})
	if len(items) != 2 || items[1].Children[0].Text != "y" {
		t.Errorf("Range produced %v", items)
	}

	if got := Repeat(0, func(i int) *VNode { return Div() }); got != nil {
		t.Errorf("Repeat(0) should be nil")
	}
	if got := Repeat(3, func(i int) *VNode { return If(i != 1, Div()) }); len(got) != 2 {
		t.Errorf("Repeat should skip nil nodes, got %d", len(got))
	}
}
