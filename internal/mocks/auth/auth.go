package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	"github.com/hypernetlabs/galileo-go/internal/ports"
)

// Ensure compile-time conformance to ports.
var _ ports.AccessTokenProvider = (*StaticTokenProvider)(nil)

// ErrNoToken is returned by StaticTokenProvider when no token and no TokenFunc are set.
var ErrNoToken = errors.New("mock: no access token configured")

// StaticTokenProvider returns a fixed token and records how often it was asked.
type StaticTokenProvider struct {
	Token     string
	TokenFunc func(ctx context.Context) (string, error)

	mu    sync.Mutex
	calls int
}

// NewStaticTokenProvider creates a provider that always returns token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{Token: token}
}

// GetAccessToken implements ports.AccessTokenProvider.
func (p *StaticTokenProvider) GetAccessToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.TokenFunc != nil {
		return p.TokenFunc(ctx)
	}
	if p.Token == "" {
		return "", ErrNoToken
	}
	return p.Token, nil
}

// Calls returns the number of GetAccessToken invocations.
func (p *StaticTokenProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
