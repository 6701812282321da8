// Package live runs layout scenes over a websocket: the browser sends
// activation events for nodes the scene registered handlers on, the session
// dispatches them in arrival order, and the marker-class patches produced by
// cell propagation are sent back after each event.
package live
