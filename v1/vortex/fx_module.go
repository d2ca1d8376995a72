package vortex

import (
	"context"

	"go.uber.org/fx"

	"github.com/vortex-db/vortex-go/v1/logger"
	"github.com/vortex-db/vortex-go/v1/observability"
)

// FXModule is an fx.Module that provides and configures the Vortex client.
// It registers the client with the Fx dependency injection framework, making
// it available to other components in the application.
//
// Usage:
//
//	app := fx.New(
//	    vortex.FXModule,
//	    fx.Provide(func() *vortex.Config {
//	        return vortex.DefaultConfig()
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("vortex",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterVortexLifecycle),
)

// VortexParams groups the dependencies needed to create a Vortex client.
type VortexParams struct {
	fx.In

	Config   *Config
	Logger   *logger.Logger         `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI creates a new Vortex client using dependency injection.
// The logger and observer are optional; when the logger or metrics modules
// are part of the application, they are injected automatically.
func NewClientWithDI(params VortexParams) (*Client, error) {
	var opts []Option
	if params.Logger != nil {
		opts = append(opts, WithLogger(params.Logger))
	}
	if params.Observer != nil {
		opts = append(opts, WithObserver(params.Observer))
	}
	return NewClient(params.Config, opts...)
}

// VortexLifecycleParams groups the dependencies for lifecycle management.
type VortexLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *Client
}

// RegisterVortexLifecycle registers the Vortex client with the fx lifecycle
// system so its channel is closed cleanly on application shutdown. The
// channel itself connects lazily, so there is no work to do on start.
func RegisterVortexLifecycle(params VortexLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return params.Client.Close()
		},
	})
}
