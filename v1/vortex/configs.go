package vortex

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds connection and behavior settings for the Vortex client.
//
// It is intentionally minimal, readable, and easy to override from
// environment variables, YAML, or programmatically via helper methods.
//
// Example (programmatic):
//
//	cfg := vortex.DefaultConfig()
//	cfg.Host = "vortex.internal"
//	cfg.APIKey = os.Getenv("VORTEX_API_KEY")
//	cfg.Timeout = 10 * time.Second
//
// Example (builder style):
//
//	cfg := vortex.FromEndpoint("vortex.internal", 50051).
//	    WithAPIKey(os.Getenv("VORTEX_API_KEY")).
//	    WithTimeout(10 * time.Second)
type Config struct {
	// Hostname of the Vortex server, e.g. "localhost".
	Host string `yaml:"host" env:"VORTEX_HOST"`

	// gRPC port of the Vortex server. Defaults to 50051.
	Port int `yaml:"port" env:"VORTEX_PORT"`

	// Optional authentication token for secured deployments, sent as
	// per-call "api-key" metadata.
	APIKey string `yaml:"api_key" env:"VORTEX_API_KEY"`

	// Maximum duration of a single call attempt. Zero disables the
	// per-attempt timeout. The retry loop may issue several attempts, so
	// total call time can exceed this value.
	Timeout time.Duration `yaml:"timeout" env:"VORTEX_TIMEOUT"`

	// TLS enables transport security.
	TLS bool `yaml:"tls" env:"VORTEX_TLS"`

	// RootCAFile is an optional PEM file with root certificates to trust.
	// Empty means the system pool.
	RootCAFile string `yaml:"root_ca_file" env:"VORTEX_ROOT_CA_FILE"`

	// CertFile and KeyFile optionally configure a client certificate.
	CertFile string `yaml:"cert_file" env:"VORTEX_CERT_FILE"`
	KeyFile  string `yaml:"key_file" env:"VORTEX_KEY_FILE"`

	// KeepAlive enables gRPC keepalive pings on idle connections.
	KeepAlive bool `yaml:"keep_alive" env:"VORTEX_KEEP_ALIVE"`

	// Retry governs the retry loop around every remote call.
	Retry RetryPolicy `yaml:"retry"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Host:      "localhost",
		Port:      50051,
		KeepAlive: true,
		Retry:     DefaultRetryPolicy(),
	}
}

// FromEndpoint returns a default config pre-filled with a specific endpoint.
func FromEndpoint(host string, port int) *Config {
	cfg := DefaultConfig()
	cfg.Host = host
	cfg.Port = port
	return cfg
}

// ConfigFromEnv returns the default config overridden by any VORTEX_*
// environment variables declared in the struct tags.
func ConfigFromEnv() (*Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, &ConfigurationError{Message: fmt.Sprintf("failed to parse environment: %v", err)}
	}
	return cfg, nil
}

// validate rejects configurations the client cannot operate with.
func (c *Config) validate() error {
	if c.Host == "" {
		return &ConfigurationError{Message: "host cannot be empty"}
	}
	if c.Port <= 0 || c.Port > 65535 {
		return &ConfigurationError{Message: fmt.Sprintf("invalid port %d", c.Port)}
	}
	if c.Retry.MaxRetries < 0 {
		return &ConfigurationError{Message: "max retries cannot be negative"}
	}
	if c.Retry.Enabled && c.Retry.BackoffMultiplier < 1.0 {
		return &ConfigurationError{Message: "backoff multiplier must be >= 1.0"}
	}
	if (c.CertFile == "") != (c.KeyFile == "") {
		return &ConfigurationError{Message: "cert_file and key_file must be set together"}
	}
	return nil
}

// Builder-style helpers (optional, ergonomic)
func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

func (c *Config) WithTLS(enabled bool) *Config {
	c.TLS = enabled
	return c
}

func (c *Config) WithKeepAlive(enabled bool) *Config {
	c.KeepAlive = enabled
	return c
}

func (c *Config) WithRetryPolicy(p RetryPolicy) *Config {
	c.Retry = p
	return c
}
