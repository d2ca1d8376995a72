// Package vortex provides a typed Go client for the Vortex vector database.
//
// The vortex package wraps the Vortex gRPC API with domain types, automatic
// retry with exponential backoff, structured error classification, and
// optional logging and metrics integration. It follows the builder-style
// configuration and fx lifecycle conventions used across this module.
//
// # Core Features
//
//   - Typed collection and point operations over gRPC
//   - Automatic retry with exponential backoff, jitter, and backoff capping
//   - Configurable set of retryable gRPC status codes
//   - Structured error types: APIError, UnexpectedError, ConnectionError,
//     ConfigurationError
//   - Thread-safe, hot-swappable retry policy
//   - Optional TLS, API-key authentication, and keepalive
//   - Config struct supporting environment and YAML loading
//   - Fx module for managed client lifecycle
//
// # Basic Usage
//
//	import "github.com/vortex-db/vortex-go/v1/vortex"
//
//	client, err := vortex.NewClient(vortex.FromEndpoint("localhost", 50051))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//
//	// Create a collection
//	err = client.CreateCollection(ctx, "documents", 768, vortex.DistanceCosine, nil)
//
//	// Upsert points
//	statuses, err := client.UpsertPoints(ctx, "documents", []vortex.PointStruct{
//	    {
//	        ID:      vortex.NewPointID(),
//	        Vector:  embedding,
//	        Payload: vortex.Payload{"title": "My Document"},
//	    },
//	}, vortex.Bool(true))
//
//	// Search
//	results, err := client.SearchPoints(ctx,
//	    vortex.NewSearchRequest("documents", queryVector, 5))
//	for _, res := range results {
//	    fmt.Printf("ID=%s Score=%.4f\n", res.ID, res.Score)
//	}
//
// # Retries
//
// Every operation runs through a retry loop. By default transient failures
// (UNAVAILABLE, RESOURCE_EXHAUSTED) are retried up to 3 times with an
// initial backoff of 200ms, a multiplier of 1.5, a cap of 5s, and ±10%
// jitter. All of that is configurable:
//
//	cfg := vortex.DefaultConfig()
//	cfg.Retry.MaxRetries = 5
//	cfg.Retry.InitialBackoff = 100 * time.Millisecond
//
// The policy can also be swapped at runtime without disturbing in-flight
// operations:
//
//	client.SetRetryPolicy(vortex.RetryPolicy{Enabled: false})
//
// Non-retryable or exhausted failures surface as *APIError carrying the
// gRPC status code name and server detail text. Failures that carry no
// gRPC status at all surface as *UnexpectedError and are never retried.
// Context cancellation always stops retrying immediately and returns the
// context's error unwrapped.
//
// # Configuration
//
// The client can be configured via environment variables or YAML:
//
//	VORTEX_HOST=localhost
//	VORTEX_PORT=50051
//	VORTEX_API_KEY=your-api-key
//	VORTEX_TLS=true
//	VORTEX_RETRY_MAX_RETRIES=3
//
//	cfg, err := vortex.ConfigFromEnv()
//
// # FX Module Integration
//
// The package exposes an Fx module for automatic dependency injection:
//
//	app := fx.New(
//	    vortex.FXModule,
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Provide(func() *vortex.Config { return vortex.DefaultConfig() }),
//	)
//	app.Run()
//
// When the logger and metrics modules are present, operations are logged
// and observed automatically.
//
// # Thread Safety
//
// All exported methods on the Client are safe for concurrent use by
// multiple goroutines.
//
// # Package Layout
//
//	vortex/
//	├── client.go        // Client construction, dialing, TLS, credentials
//	├── operations.go    // Collection and point operations
//	├── retry.go         // Retry policy and backoff executor
//	├── errors.go        // Error taxonomy
//	├── models.go        // Domain types
//	├── converter.go     // Domain ↔ wire type conversion
//	├── configs.go       // Configuration struct
//	└── fx_module.go     // Fx dependency injection module
//
// # Related Packages
//
//   - [github.com/vortex-db/vortex-go/v1/wire]: wire-level protocol types
//   - [github.com/vortex-db/vortex-go/v1/metrics]: prometheus operation metrics
//   - [github.com/vortex-db/vortex-go/v1/logger]: zap-based structured logging
package vortex
