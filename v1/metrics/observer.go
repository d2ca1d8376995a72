package metrics

import (
	"github.com/vortex-db/vortex-go/v1/observability"
)

// Observer implements observability.Observer by recording completed
// operations into the Prometheus collectors of a Metrics instance.
type Observer struct {
	metrics *Metrics
}

// NewObserver returns an Observer backed by the given Metrics instance.
func NewObserver(m *Metrics) *Observer {
	return &Observer{metrics: m}
}

// ObserveOperation records one completed operation: a count labelled by
// terminal status, a duration sample, and any call attempts beyond the
// first as retries.
func (o *Observer) ObserveOperation(ctx observability.OperationContext) {
	if o == nil || o.metrics == nil {
		return
	}

	status := "success"
	if ctx.Error != nil {
		status = "error"
	}

	o.metrics.operationsTotal.WithLabelValues(ctx.Operation, status).Inc()
	o.metrics.operationDuration.WithLabelValues(ctx.Operation).Observe(ctx.Duration.Seconds())

	if ctx.Attempts > 1 {
		o.metrics.retryAttempts.WithLabelValues(ctx.Operation).Add(float64(ctx.Attempts - 1))
	}
}
