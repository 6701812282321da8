package middleware

// Dispatch is the function a live session uses to deliver one activation
// event to its scene. Middleware wraps it.
type Dispatch func(ref, event string) error

// Middleware wraps a Dispatch with cross-cutting behavior.
type Middleware func(Dispatch) Dispatch

// Chain applies middlewares so the first one listed is outermost.
func Chain(d Dispatch, mws ...Middleware) Dispatch {
	for i := len(mws) - 1; i >= 0; i-- {
		d = mws[i](d)
	}
	return d
}
