// Package render serializes dom.VNode trees to escaped HTML.
//
// Interactive nodes (those a scene assigned a binding ID) are emitted with a
// data-dw attribute and data-on-* event markers, which is all the thin
// client needs to route activation events back to the live session.
package render
