// Package data implements the repository ports against the Galileo REST backend.
package data

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	sdkerrors "github.com/hypernetlabs/galileo-go/internal/errors"
	"github.com/hypernetlabs/galileo-go/internal/observability/metrics"
	"github.com/hypernetlabs/galileo-go/internal/observability/statsd"
	"github.com/hypernetlabs/galileo-go/internal/ports"
)

// DefaultNamespace is the API prefix every user-interface endpoint lives under.
const DefaultNamespace = "/galileo/user_interface/v1"

// RequestIDHeader carries a per-request identifier for correlating SDK and backend logs.
const RequestIDHeader = "X-Request-Id"

// maxErrorBody bounds how much of a failed response is read into the returned error.
const maxErrorBody = 4 << 10

// Settings locate the backend.
type Settings struct {
	Backend   string
	Namespace string
}

// BackendOptions groups dependencies for NewBackend.
type BackendOptions struct {
	Settings  Settings
	Auth      ports.AccessTokenProvider // Required
	Transport BackendTransport
}

// BackendTransport groups optional collaborators for issuing and observing requests.
type BackendTransport struct {
	HTTPClient *http.Client // Optional, defaults to a client with a 30s timeout
	Logger     *slog.Logger // Optional
	Metrics    statsd.Sink  // Optional
}

// Backend issues authenticated JSON requests against the Galileo API.
// Repositories share one Backend; it holds no per-request state.
type Backend struct {
	baseURL string
	auth    ports.AccessTokenProvider
	client  *http.Client
	logger  *slog.Logger
	metrics statsd.Sink
}

// NewBackend constructs a Backend. It panics when Auth is nil, matching service constructors.
func NewBackend(opts BackendOptions) (*Backend, error) {
	if opts.Auth == nil {
		panic("AccessTokenProvider is required")
	}

	base := strings.TrimRight(strings.TrimSpace(opts.Settings.Backend), "/")
	if base == "" {
		return nil, errors.New("backend url is required")
	}
	ns := strings.TrimSpace(opts.Settings.Namespace)
	if ns == "" {
		ns = DefaultNamespace
	}
	ns = "/" + strings.Trim(ns, "/")

	hc := opts.Transport.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}

	return &Backend{
		baseURL: base + ns,
		auth:    opts.Auth,
		client:  hc,
		logger:  opts.Transport.Logger,
		metrics: opts.Transport.Metrics,
	}, nil
}

// BaseURL returns the backend URL including the namespace.
func (b *Backend) BaseURL() string { return b.baseURL }

// request describes one backend call.
type request struct {
	op          string // metric/log operation name, e.g. "list_jobs"
	method      string
	path        string // relative to the namespace, already escaped
	query       string // pre-rendered query string without the leading "?"
	body        any    // JSON-encoded when non-nil
	rawBody     io.Reader
	contentType string // used with rawBody
}

func (b *Backend) url(path, query string) string {
	u := b.baseURL + path
	if query != "" {
		u += "?" + query
	}
	return u
}

// do sends req and returns the response when the status is 2xx.
// Non-2xx responses are consumed, closed, and converted to an AppError.
func (b *Backend) do(ctx context.Context, req request) (*http.Response, error) {
	requestID := uuid.NewString()
	start := time.Now()
	resp, err := b.send(ctx, req, requestID)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	b.observe(ctx, req, observation{
		requestID: requestID,
		status:    status,
		elapsed:   time.Since(start),
		err:       err,
	})

	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (b *Backend) send(ctx context.Context, req request, requestID string) (*http.Response, error) {
	token, err := b.auth.GetAccessToken(ctx)
	if err != nil {
		return nil, sdkerrors.Wrap(err, sdkerrors.ErrCodeUnauthorized, req.op+": get access token")
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.op, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, b.url(req.path, req.query), body)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", req.op, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, requestID)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return nil, sdkerrors.FromTransport(err, req.op)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, handleErrorResponse(resp, req.op)
	}
	return resp, nil
}

func encodeBody(req request) (io.Reader, string, error) {
	if req.rawBody != nil {
		return req.rawBody, req.contentType, nil
	}
	if req.body == nil {
		return nil, "", nil
	}
	raw, err := json.Marshal(req.body)
	if err != nil {
		return nil, "", fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(raw), "application/json", nil
}

func handleErrorResponse(resp *http.Response, op string) error {
	respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	closeErr := resp.Body.Close()
	appErr := sdkerrors.FromHTTPStatus(resp.StatusCode, op, respBody)
	if readErr != nil || closeErr != nil {
		appErr.Cause = errors.Join(readErr, closeErr)
	}
	return appErr
}

// doJSON sends req and decodes the 2xx JSON response into out.
func (b *Backend) doJSON(ctx context.Context, req request, out any) error {
	resp, err := b.do(ctx, req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return sdkerrors.Wrapf(err, sdkerrors.ErrCodeInternal, "%s: decode response", req.op)
	}
	return nil
}

type observation struct {
	requestID string
	status    int
	elapsed   time.Duration
	err       error
}

func (b *Backend) observe(ctx context.Context, req request, o observation) {
	metrics.EmitBackendRequest(b.metrics, metrics.RequestMetric{
		Operation: req.op,
		Method:    req.method,
		Status:    o.status,
		Duration:  o.elapsed,
		Err:       o.err,
	})

	if b.logger == nil {
		return
	}
	attrs := []any{
		"op", req.op,
		"method", req.method,
		"path", req.path,
		"status", o.status,
		"duration", o.elapsed,
		"request_id", o.requestID,
	}
	if o.err != nil {
		b.logger.DebugContext(ctx, "galileo request failed", append(attrs, "error", o.err)...)
		return
	}
	b.logger.DebugContext(ctx, "galileo request", attrs...)
}
