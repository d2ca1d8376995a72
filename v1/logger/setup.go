package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper around Uber's Zap logger.
// It provides a simplified interface to the underlying Zap logger,
// with structured key-value fields and an optional error attached
// to every entry.
type Logger struct {
	// Zap is the underlying zap.Logger instance.
	// This is exposed to allow direct access to Zap-specific functionality
	// when needed, but most logging should go through the wrapper methods.
	Zap *zap.Logger
}

// NewLoggerClient initializes and returns a new logger based on configuration.
//
// The logger is configured with:
//   - JSON encoding for structured logging
//   - ISO8601 timestamp format
//   - Capital letter level encoding (e.g., "INFO", "ERROR")
//   - Process ID and service name as default fields
//   - Caller information (file and line) included in log entries
//   - Output directed to stderr
//
// If initialization fails, the function calls log.Fatal to terminate the
// application.
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "vortex-client",
//	})
//	log.Info("client connected", nil, map[string]interface{}{"host": "localhost"})
func NewLoggerClient(cfg Config) *Logger {

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel

	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(logLevel),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	zl, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))

	if err != nil {
		log.Fatal(err)
	}

	return &Logger{
		Zap: zl,
	}
}

// NewNopLogger returns a logger that discards all entries.
// Useful as a default when the caller does not supply a logger.
func NewNopLogger() *Logger {
	return &Logger{Zap: zap.NewNop()}
}

// fields converts the optional error and key-value map into zap fields.
func fields(err error, kv map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(kv)+1)
	if err != nil {
		out = append(out, zap.Error(err))
	}
	for k, v := range kv {
		out = append(out, zap.Any(k, v))
	}
	return out
}

// Debug logs a message at debug level with optional error and fields.
func (l *Logger) Debug(msg string, err error, kv map[string]interface{}) {
	l.Zap.Debug(msg, fields(err, kv)...)
}

// Info logs a message at info level with optional error and fields.
func (l *Logger) Info(msg string, err error, kv map[string]interface{}) {
	l.Zap.Info(msg, fields(err, kv)...)
}

// Warn logs a message at warning level with optional error and fields.
func (l *Logger) Warn(msg string, err error, kv map[string]interface{}) {
	l.Zap.Warn(msg, fields(err, kv)...)
}

// Error logs a message at error level with optional error and fields.
func (l *Logger) Error(msg string, err error, kv map[string]interface{}) {
	l.Zap.Error(msg, fields(err, kv)...)
}
