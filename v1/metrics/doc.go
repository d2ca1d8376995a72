// Package metrics provides Prometheus metrics for the Vortex SDK.
//
// It exposes a [Metrics] instance holding an isolated registry and an HTTP
// server serving /metrics, plus an [Observer] that implements
// observability.Observer and records every completed client operation:
//
//   - vortex_operations_total{operation,status}
//   - vortex_operation_duration_seconds{operation}
//   - vortex_retry_attempts_total{operation}
//
// Wire it into a client:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "indexer"})
//	go m.Server.ListenAndServe()
//
//	client, err := vortex.NewClient(cfg,
//	    vortex.WithObserver(metrics.NewObserver(m)),
//	)
//
// Or use [FXModule] with an fx application, which provides the Metrics
// instance and the Observer and manages the server lifecycle.
package metrics
