// Package logger provides structured logging for the Vortex SDK.
//
// The package wraps Uber's Zap logger with a small, opinionated surface:
// JSON output, leveled logging, and structured key-value fields with an
// optional error on every entry. It integrates with the fx dependency
// injection framework for easy incorporation into applications.
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create a logger directly:
//
//	import "github.com/vortex-db/vortex-go/v1/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "vortex-client",
//	})
//
//	log.Info("collection created", nil, map[string]interface{}{
//	    "collection": "documents",
//	})
//
// Use [NewNopLogger] in tests or when logging should be disabled.
//
// # FX Module Integration
//
// For applications using Uber's fx:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info, ServiceName: "my-service"}
//	    }),
//	)
//
// The module registers an OnStop hook that flushes buffered entries on
// shutdown.
package logger
