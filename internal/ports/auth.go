package ports

// Package ports defines interfaces (hexagonal ports) for collaborators the SDK does not own.
// Implementations live in internal/adapters; consumers live in internal/data.

import "context"

// AccessTokenProvider supplies the bearer token attached to every backend request.
// Implementations own acquisition and refresh; callers ask for a token per request.
type AccessTokenProvider interface {
	GetAccessToken(ctx context.Context) (string, error)
}

// AccessTokenProviderFunc adapts a function to the AccessTokenProvider interface.
type AccessTokenProviderFunc func(ctx context.Context) (string, error)

// GetAccessToken implements AccessTokenProvider.
func (f AccessTokenProviderFunc) GetAccessToken(ctx context.Context) (string, error) {
	return f(ctx)
}
