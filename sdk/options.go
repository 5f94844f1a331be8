package sdk

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// TokenProvider supplies the bearer token for each request.
type TokenProvider interface {
	GetAccessToken(ctx context.Context) (string, error)
}

// TokenProviderFunc adapts a function to TokenProvider.
type TokenProviderFunc func(ctx context.Context) (string, error)

// GetAccessToken implements TokenProvider.
func (f TokenProviderFunc) GetAccessToken(ctx context.Context) (string, error) { return f(ctx) }

// MetricsSink receives per-request counters and timings.
type MetricsSink interface {
	Count(name string, value int64, tags map[string]string)
	Timing(name string, value time.Duration, tags map[string]string)
}

type options struct {
	logger     *slog.Logger
	httpClient *http.Client
	tokens     TokenProvider
	metrics    MetricsSink
}

// Option customises New.
type Option func(*options)

// WithLogger sets the structured logger. By default the SDK does not log.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithHTTPClient replaces the HTTP client used for backend and token requests.
// Config.HTTPTimeout is ignored when a client is supplied.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithTokenProvider overrides the token provider built from Config.Auth.
func WithTokenProvider(p TokenProvider) Option {
	return func(o *options) { o.tokens = p }
}

// WithMetrics sends request metrics to sink instead of the StatsD client built from config.
func WithMetrics(sink MetricsSink) Option {
	return func(o *options) { o.metrics = sink }
}
