package layout

import (
	"fmt"
	"sync"

	dwerrors "github.com/dashwire-dev/dashwire/internal/errors"
	"github.com/dashwire-dev/dashwire/pkg/dom"
	"github.com/dashwire-dev/dashwire/pkg/reactive"
)

// Patch records one marker-class change on a referenced node. Patches are
// what a live session forwards to the browser after an event has fully
// propagated through the cells.
type Patch struct {
	Ref    string   `json:"ref"`
	Add    []string `json:"add,omitempty"`
	Remove []string `json:"remove,omitempty"`
}

// Scene is the explicit session object every constructor hangs off.
// There is no ambient default scene: callers build one at application start
// and thread it through. A scene owns the handler registry for its nodes,
// the class patches produced by its binders, and the bindings it created.
type Scene struct {
	mu       sync.Mutex
	nextRef  uint64
	handlers map[string]map[string]func()
	patches  []Patch
	bindings []*reactive.Binding
	closed   bool
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		handlers: make(map[string]map[string]func()),
	}
}

// Ref returns the node's binding ID, assigning one if the node has none.
// The ID is emitted as a data attribute during rendering so events and
// patches can address the node.
func (s *Scene) Ref(node *dom.VNode) string {
	if node == nil {
		return ""
	}
	if node.Ref != "" {
		return node.Ref
	}
	s.mu.Lock()
	s.nextRef++
	node.Ref = fmt.Sprintf("dw-%d", s.nextRef)
	s.mu.Unlock()
	return node.Ref
}

// On registers an activation handler for the given event name ("click",
// "pointerenter", ...) on the node. The node receives a binding ID and the
// handler becomes dispatchable through Dispatch.
func (s *Scene) On(node *dom.VNode, event string, fn func()) {
	if node == nil || fn == nil {
		return
	}
	ref := s.Ref(node)
	node.Props["on"+event] = fn

	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.handlers[ref]
	if m == nil {
		m = make(map[string]func())
		s.handlers[ref] = m
	}
	m[event] = fn
}

// Dispatch runs the handler registered for (ref, event). The handler runs to
// completion before Dispatch returns: by then every cell write it performed
// has propagated through all subscribers and the resulting patches are
// available via DrainPatches.
func (s *Scene) Dispatch(ref, event string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return dwerrors.New("E303")
	}
	m, ok := s.handlers[ref]
	if !ok {
		s.mu.Unlock()
		return dwerrors.New("E301").WithDetail("no binding %q in scene", ref)
	}
	fn, ok := m[event]
	if !ok {
		s.mu.Unlock()
		return dwerrors.New("E302").WithDetail("binding %q has no %q handler", ref, event)
	}
	s.mu.Unlock()

	// Handler runs without the scene lock so its binders can record patches.
	fn()
	return nil
}

// DrainPatches returns the patches accumulated since the last drain and
// clears the queue.
func (s *Scene) DrainPatches() []Patch {
	s.mu.Lock()
	defer s.mu.Unlock()
	patches := s.patches
	s.patches = nil
	return patches
}

// Close disposes every binding the scene created and rejects further
// dispatches. Safe to call more than once.
func (s *Scene) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	bindings := s.bindings
	s.bindings = nil
	s.mu.Unlock()

	for _, b := range bindings {
		b.Dispose()
	}
}

// track registers a binding for disposal on Close.
func (s *Scene) track(b *reactive.Binding) *reactive.Binding {
	s.mu.Lock()
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()
	return b
}

// setMarker flips a marker class on the node and records a patch when the
// class actually changed. Nodes without a binding ID are still mutated but
// produce no patch; they are static fragments nobody addresses remotely.
func (s *Scene) setMarker(node *dom.VNode, class string, on bool) {
	if node == nil {
		return
	}
	if dom.HasClass(node, class) == on {
		return
	}
	dom.ToggleClass(node, class, on)
	if node.Ref == "" {
		return
	}

	patch := Patch{Ref: node.Ref}
	if on {
		patch.Add = []string{class}
	} else {
		patch.Remove = []string{class}
	}

	s.mu.Lock()
	s.patches = append(s.patches, patch)
	s.mu.Unlock()
}
