// Package sdk is the public client for the Galileo job, machine, and project API.
//
// A Galileo value is built once with New or NewFromEnv and is safe for
// concurrent use. Every call is synchronous and maps to a single backend
// request, except DownloadJobResults which issues one request per file.
package sdk

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hypernetlabs/galileo-go/internal/bootstrap"
	"github.com/hypernetlabs/galileo-go/internal/data"
	"github.com/hypernetlabs/galileo-go/internal/events"
	"github.com/hypernetlabs/galileo-go/internal/ports"
)

// Galileo composes the jobs, machines, and projects clients.
type Galileo struct {
	Jobs     *JobsSdk
	Machines *MachinesSdk
	Projects *ProjectsSdk

	dispatcher *events.Dispatcher
	closer     io.Closer
}

// New builds a client from cfg. cfg is sanitized on a copy, so zero-value
// fields such as Namespace and HTTPTimeout fall back to their defaults.
func New(ctx context.Context, cfg Config, opts ...Option) (*Galileo, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	cfg.Sanitize()

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	var tokens ports.AccessTokenProvider
	if o.tokens != nil {
		tokens = ports.AccessTokenProviderFunc(o.tokens.GetAccessToken)
	} else {
		built, err := bootstrap.BuildTokenProvider(ctx, cfg.Auth, httpClient)
		if err != nil {
			return nil, fmt.Errorf("galileo: %w", err)
		}
		tokens = built
	}

	g := &Galileo{}
	transport := data.BackendTransport{HTTPClient: httpClient, Logger: o.logger}
	if o.metrics != nil {
		transport.Metrics = o.metrics
	} else {
		sink, err := bootstrap.BuildMetricsSink(cfg.Observability.Metrics, o.logger)
		if err != nil {
			return nil, fmt.Errorf("galileo: %w", err)
		}
		if sink != nil {
			transport.Metrics = sink
			g.closer = sink
		}
	}

	c, err := bootstrap.BuildServices(bootstrap.ServiceDeps{
		Config:    &cfg,
		Auth:      tokens,
		Transport: transport,
	})
	if err != nil {
		if g.closer != nil {
			_ = g.closer.Close()
		}
		return nil, fmt.Errorf("galileo: %w", err)
	}

	g.Jobs = &JobsSdk{svc: c.Jobs, events: c.Events.Jobs}
	g.Machines = &MachinesSdk{svc: c.Machines, events: c.Events.Machines}
	g.Projects = &ProjectsSdk{svc: c.Projects}
	g.dispatcher = c.Events.Dispatcher

	if o.logger != nil {
		o.logger.DebugContext(ctx, "galileo client ready", "backend", cfg.Backend, "namespace", cfg.Namespace, "auth_mode", cfg.Auth.Mode)
	}
	return g, nil
}

// NewFromEnv loads configuration from GALILEO_* environment variables, after
// reading envFiles (or ./.env) when present, and calls New.
func NewFromEnv(ctx context.Context, envFiles []string, opts ...Option) (*Galileo, error) {
	cfg, err := bootstrap.LoadConfig(envFiles...)
	if err != nil {
		return nil, fmt.Errorf("galileo: %w", err)
	}
	return New(ctx, cfg, opts...)
}

// EventDispatcher feeds raw backend events to the registered callbacks.
type EventDispatcher interface {
	// Dispatch decodes payload as the named event and runs its callbacks on the
	// calling goroutine before returning. Unknown names return an error matching
	// ErrUnknownEvent.
	Dispatch(event string, payload []byte) error
	// Names lists the event names Dispatch accepts.
	Names() []string
}

// Events returns the dispatcher for whatever transport delivers backend events.
func (g *Galileo) Events() EventDispatcher {
	return g.dispatcher
}

// Close releases resources owned by the client, such as the StatsD connection.
func (g *Galileo) Close() error {
	if g == nil || g.closer == nil {
		return nil
	}
	if err := g.closer.Close(); err != nil {
		return fmt.Errorf("galileo close: %w", err)
	}
	return nil
}
