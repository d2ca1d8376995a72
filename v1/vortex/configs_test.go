package vortex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 50051, cfg.Port)
	assert.True(t, cfg.KeepAlive)
	assert.False(t, cfg.TLS)
	assert.True(t, cfg.Retry.Enabled)
	require.NoError(t, cfg.validate())
}

func TestFromEndpoint(t *testing.T) {
	cfg := FromEndpoint("vortex.internal", 6334)

	assert.Equal(t, "vortex.internal", cfg.Host)
	assert.Equal(t, 6334, cfg.Port)
	assert.True(t, cfg.Retry.Enabled)
}

func TestConfigBuilders(t *testing.T) {
	policy := RetryPolicy{Enabled: false}
	cfg := FromEndpoint("vortex.internal", 50051).
		WithAPIKey("secret").
		WithTimeout(10 * time.Second).
		WithTLS(true).
		WithKeepAlive(false).
		WithRetryPolicy(policy)

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.True(t, cfg.TLS)
	assert.False(t, cfg.KeepAlive)
	assert.False(t, cfg.Retry.Enabled)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("VORTEX_HOST", "vortex.example.com")
	t.Setenv("VORTEX_PORT", "6334")
	t.Setenv("VORTEX_API_KEY", "from-env")
	t.Setenv("VORTEX_TLS", "true")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "vortex.example.com", cfg.Host)
	assert.Equal(t, 6334, cfg.Port)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.True(t, cfg.TLS)
	// Untouched fields keep their defaults.
	assert.Equal(t, 3, cfg.Retry.MaxRetries)
}

func TestConfigFromEnvInvalid(t *testing.T) {
	t.Setenv("VORTEX_PORT", "not-a-port")

	_, err := ConfigFromEnv()
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty host",
			mutate:  func(c *Config) { c.Host = "" },
			wantErr: "host cannot be empty",
		},
		{
			name:    "zero port",
			mutate:  func(c *Config) { c.Port = 0 },
			wantErr: "invalid port",
		},
		{
			name:    "port too large",
			mutate:  func(c *Config) { c.Port = 70000 },
			wantErr: "invalid port",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.Retry.MaxRetries = -1 },
			wantErr: "max retries cannot be negative",
		},
		{
			name:    "multiplier below one",
			mutate:  func(c *Config) { c.Retry.BackoffMultiplier = 0.5 },
			wantErr: "backoff multiplier must be >= 1.0",
		},
		{
			name:    "cert without key",
			mutate:  func(c *Config) { c.CertFile = "client.pem" },
			wantErr: "cert_file and key_file must be set together",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigValidateDisabledRetryIgnoresMultiplier(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Retry.Enabled = false
	cfg.Retry.BackoffMultiplier = 0

	require.NoError(t, cfg.validate())
}
