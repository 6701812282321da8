// Package dom builds static DOM fragments as VNode trees.
//
// Element constructors accept a variadic argument list and type-switch over
// it: Attr values become attributes, *VNode values become children, strings
// become text nodes, and EventHandler values register callbacks. Trees are
// emitted once; after that only marker classes change, via the class-list
// helpers.
package dom
