package vortex

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/vortex-db/vortex-go/v1/logger"
	"github.com/vortex-db/vortex-go/v1/observability"
	"github.com/vortex-db/vortex-go/v1/wire"
)

//
// ──────────────────────────────────────────────────────────────
//   VORTEX CLIENT
// ──────────────────────────────────────────────────────────────
//
// This file defines the typed client over the Vortex gRPC API, wiring
// connection setup (host/port, TLS, api-key credentials, keepalive) to the
// wire-level service bindings. All remote operations live in
// operations.go and run through the retry executor in retry.go.
//

// Client is the typed Vortex client. It is safe for concurrent use.
type Client struct {
	cfg  *Config
	conn *grpc.ClientConn

	collections wire.CollectionsClient
	points      wire.PointsClient

	// policy is guarded by policyMu; each invocation snapshots it at
	// start, so mutation between calls never affects an in-flight call.
	policyMu sync.RWMutex
	policy   RetryPolicy

	sleep    sleeper
	jitter   func() float64
	log      *logger.Logger
	observer observability.Observer
}

// Option customizes a Client beyond its Config.
type Option func(*Client)

// WithLogger attaches a logger; by default the client is silent.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithObserver attaches an operation observer, e.g. metrics.NewObserver.
func WithObserver(o observability.Observer) Option {
	return func(c *Client) { c.observer = o }
}

// WithBlockingSleeps makes retry delays block the calling goroutine
// unconditionally instead of honoring context cancellation mid-sleep.
// Attempt counts, delays, and classification are unaffected.
func WithBlockingSleeps() Option {
	return func(c *Client) { c.sleep = blockingSleeper{} }
}

// NewClient constructs a Client from cfg and establishes the (lazy) gRPC
// channel. The server is not contacted until the first operation.
//
// Example:
//
//	client, err := vortex.NewClient(vortex.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	target := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	dialOpts, err := dialOptions(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, &ConnectionError{
			Message: fmt.Sprintf("Failed to connect to Vortex at %s: %v", target, err),
			cause:   err,
		}
	}

	c := &Client{
		cfg:         cfg,
		conn:        conn,
		collections: wire.NewCollectionsClient(conn),
		points:      wire.NewPointsClient(conn),
		policy:      cfg.Retry,
		sleep:       contextSleeper{},
		jitter:      defaultJitter,
		log:         logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.log.Debug("vortex client created", nil, map[string]interface{}{
		"target":          target,
		"tls":             cfg.TLS,
		"retries_enabled": cfg.Retry.Enabled,
	})
	return c, nil
}

// dialOptions assembles the gRPC dial options for cfg.
func dialOptions(cfg *Config) ([]grpc.DialOption, error) {
	var creds credentials.TransportCredentials
	if cfg.TLS {
		tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12}

		if cfg.RootCAFile != "" {
			pem, err := os.ReadFile(cfg.RootCAFile)
			if err != nil {
				return nil, &ConfigurationError{Message: fmt.Sprintf("failed to read root CA file: %v", err)}
			}
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(pem) {
				return nil, &ConfigurationError{Message: "no certificates found in root CA file"}
			}
			tlsCfg.RootCAs = pool
		}

		if cfg.CertFile != "" {
			cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
			if err != nil {
				return nil, &ConfigurationError{Message: fmt.Sprintf("failed to load client certificate: %v", err)}
			}
			tlsCfg.Certificates = []tls.Certificate{cert}
		}

		creds = credentials.NewTLS(tlsCfg)
	} else {
		creds = insecure.NewCredentials()
	}

	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}

	if cfg.APIKey != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(apiKeyCredentials{
			key:    cfg.APIKey,
			secure: cfg.TLS,
		}))
	}

	if cfg.KeepAlive {
		opts = append(opts, grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                30 * time.Second,
			Timeout:             10 * time.Second,
			PermitWithoutStream: true,
		}))
	}

	return opts, nil
}

// apiKeyCredentials sends the configured API key as per-call metadata.
type apiKeyCredentials struct {
	key    string
	secure bool
}

func (a apiKeyCredentials) GetRequestMetadata(_ context.Context, _ ...string) (map[string]string, error) {
	return map[string]string{"api-key": a.key}, nil
}

func (a apiKeyCredentials) RequireTransportSecurity() bool {
	return a.secure
}

// Close releases the underlying gRPC channel.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	c.log.Debug("closing vortex client", nil, nil)
	return c.conn.Close()
}

// Conn exposes the underlying channel for advanced use, e.g. issuing raw
// wire-level calls.
func (c *Client) Conn() *grpc.ClientConn {
	return c.conn
}

// RetryPolicy returns the policy currently in effect.
func (c *Client) RetryPolicy() RetryPolicy {
	c.policyMu.RLock()
	defer c.policyMu.RUnlock()
	return c.policy.snapshot()
}

// SetRetryPolicy replaces the policy for subsequent operations.
// In-flight operations keep the snapshot they started with.
func (c *Client) SetRetryPolicy(p RetryPolicy) {
	c.policyMu.Lock()
	defer c.policyMu.Unlock()
	c.policy = p.snapshot()
}

// executor snapshots the collaborators of one invocation.
func (c *Client) executor() retryExecutor {
	c.policyMu.RLock()
	policy := c.policy.snapshot()
	c.policyMu.RUnlock()
	return retryExecutor{
		policy: policy,
		sleep:  c.sleep,
		jitter: c.jitter,
	}
}

// callContext applies the per-attempt timeout, when configured.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, c.cfg.Timeout)
	}
	return ctx, func() {}
}
