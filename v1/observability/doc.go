// Package observability defines the observer contract used by SDK
// components to report completed operations.
//
// Components accept an [Observer] and call it once per finished operation
// with an [OperationContext]. A nil observer disables reporting; components
// must treat it as a no-op rather than an error.
//
// The metrics package provides a Prometheus-backed implementation.
package observability
