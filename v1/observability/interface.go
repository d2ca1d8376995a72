package observability

import "time"

// Observer receives operation events from SDK components.
// Implementations typically forward them to metrics or tracing backends.
//
// Implementations must be safe for concurrent use: the client reports
// operations from whichever goroutine invoked them.
type Observer interface {
	// ObserveOperation is called once per completed operation,
	// after all retries have resolved.
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes a single completed operation.
type OperationContext struct {
	// Component identifies the reporting component, e.g. "vortex".
	Component string

	// Operation is the short operation name, e.g. "search_points".
	Operation string

	// Resource is the primary resource the operation acted on,
	// typically a collection name.
	Resource string

	// SubResource carries additional context, e.g. a point ID.
	SubResource string

	// Duration is the total wall-clock time of the operation,
	// including retry sleeps.
	Duration time.Duration

	// Error is the terminal error, or nil on success.
	Error error

	// Attempts is the number of call attempts issued (1 = no retries).
	Attempts int

	// Size is an operation-specific size, e.g. number of points.
	Size int64

	// Metadata holds optional low-cardinality extras.
	Metadata map[string]interface{}
}
