package layout

import "github.com/dashwire-dev/dashwire/pkg/dom"

// Marker classes. These names are part of the styling contract: the
// stylesheet below and any external theme target them verbatim, so they are
// versioned with the package and never renamed casually.
const (
	// ClassActive marks the selected child of an overlay, and generally the
	// element a selector binding currently points at.
	ClassActive = "dw-active"

	// ClassHovered marks an element the pointer is currently over.
	ClassHovered = "dw-hovered"

	// ClassStay marks an element whose hovered visual state is pinned by a
	// stay-active cell.
	ClassStay = "dw-stay"
)

// Container classes.
const (
	ClassRow          = "dw-row"
	ClassColumn       = "dw-column"
	ClassOverlay      = "dw-overlay"
	ClassOverlayChild = "dw-overlay-child"
	ClassHover        = "dw-hover"
	ClassClicker      = "dw-clicker"
)

// Animation variant classes. Applied to overlay containers to pick how the
// active child is revealed.
const (
	AnimateFade  = "dw-fade"
	AnimateScale = "dw-scale"
	AnimateSlide = "dw-slide"
)

// stylesheet gives the marker classes their visual meaning. The
// hovered-or-stay OR combination is expressed in CSS; the binders only flip
// the two marker classes independently.
const stylesheet = `.dw-row {
  display: flex;
  flex-direction: row;
}
.dw-column {
  display: flex;
  flex-direction: column;
}
.dw-overlay {
  position: relative;
}
.dw-overlay > .dw-overlay-child {
  position: absolute;
  inset: 0;
  opacity: 0;
  pointer-events: none;
}
.dw-overlay > .dw-overlay-child.dw-active {
  opacity: 1;
  pointer-events: auto;
}
.dw-overlay.dw-fade > .dw-overlay-child {
  transition: opacity 0.25s ease;
}
.dw-overlay.dw-scale > .dw-overlay-child {
  transform: scale(0.96);
  transition: opacity 0.25s ease, transform 0.25s ease;
}
.dw-overlay.dw-scale > .dw-overlay-child.dw-active {
  transform: scale(1);
}
.dw-overlay.dw-slide > .dw-overlay-child {
  transform: translateY(6px);
  transition: opacity 0.2s ease, transform 0.2s ease;
}
.dw-overlay.dw-slide > .dw-overlay-child.dw-active {
  transform: translateY(0);
}
.dw-hover {
  opacity: 0.75;
  transition: opacity 0.15s ease, transform 0.15s ease;
}
.dw-hover.dw-hovered,
.dw-hover.dw-stay {
  opacity: 1;
  transform: scale(1.02);
}
.dw-clicker {
  cursor: pointer;
  user-select: none;
}
`

// Stylesheet returns the CSS backing the marker and container classes.
func Stylesheet() string {
	return stylesheet
}

// StyleNode returns the stylesheet wrapped in a <style> element, ready to be
// placed in a page head.
func StyleNode() *dom.VNode {
	return dom.StyleTag(dom.Raw(stylesheet))
}
