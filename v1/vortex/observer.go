package vortex

import (
	"time"

	"github.com/vortex-db/vortex-go/v1/observability"
)

const componentName = "vortex"

// observeOperation reports a completed operation to the configured
// observer, if any.
func (c *Client) observeOperation(operation, resource string, start time.Time, attempts int, size int64, err error) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveOperation(observability.OperationContext{
		Component: componentName,
		Operation: operation,
		Resource:  resource,
		Duration:  time.Since(start),
		Error:     err,
		Attempts:  attempts,
		Size:      size,
	})
}
