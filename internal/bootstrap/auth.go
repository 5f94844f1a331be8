package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hypernetlabs/galileo-go/config"
	"github.com/hypernetlabs/galileo-go/internal/adapters/oidc"
	"github.com/hypernetlabs/galileo-go/internal/ports"
)

// BuildTokenProvider creates the access-token provider for the configured auth mode.
// httpClient is used for OIDC discovery and token requests; nil selects a default.
func BuildTokenProvider(
	ctx context.Context,
	cfg config.AuthConfig,
	httpClient *http.Client,
) (ports.AccessTokenProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("auth config: %w", err)
	}

	switch cfg.Mode {
	case config.AuthModeOAuth:
		p, err := oidc.NewClientCredentialsProvider(ctx, oidc.ClientCredentialsConfig{
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			Scope:        cfg.OAuth.Scope,
			Audience:     cfg.OAuth.Audience,
			DiscoveryURL: cfg.OAuth.DiscoveryURL,
			TokenURL:     cfg.OAuth.TokenURL,
			HTTPClient:   httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("build oauth token provider: %w", err)
		}
		return p, nil
	default:
		return oidc.NewStaticProvider(cfg.Token), nil
	}
}
