package root

import "errors"

// Conditions the coordinator recognizes. Both are logged and never
// returned to callers.
var (
	// ErrNoDelegate means a redraw was requested before a delegate was attached.
	ErrNoDelegate = errors.New("no delegate attached")

	// ErrNoSurface means the delegate could not provide a surface for a paint.
	ErrNoSurface = errors.New("surface not available")
)
