package logger

// Level controls the minimum severity of emitted log entries.
type Level string

const (
	Debug   Level = "debug"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Config holds settings for the logger.
type Config struct {
	// Level is the minimum log level. Defaults to Info when empty.
	Level Level `yaml:"level" env:"VORTEX_LOG_LEVEL"`

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"VORTEX_LOG_SERVICE_NAME"`
}
