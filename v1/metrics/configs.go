package metrics

// Config holds settings for the metrics server.
type Config struct {
	// Address is the listen address for the /metrics endpoint, e.g. ":9090".
	Address string `yaml:"address" env:"VORTEX_METRICS_ADDRESS"`

	// ServiceName is attached to every metric as a constant "service" label.
	ServiceName string `yaml:"service_name" env:"VORTEX_METRICS_SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go runtime, process, and
	// build info collectors in addition to the SDK metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"VORTEX_METRICS_DEFAULT_COLLECTORS"`
}
