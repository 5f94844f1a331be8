package oidc

// Package oidc supplies bearer tokens for the Galileo backend from OAuth2 token sources.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/hypernetlabs/galileo-go/internal/ports"
)

var _ ports.AccessTokenProvider = (*TokenProvider)(nil)

// TokenProvider adapts an oauth2.TokenSource to ports.AccessTokenProvider.
type TokenProvider struct {
	source oauth2.TokenSource
}

// NewTokenProvider wraps src. The source is wrapped in oauth2.ReuseTokenSource so
// a valid token is served from memory until it expires.
func NewTokenProvider(src oauth2.TokenSource) *TokenProvider {
	if src == nil {
		panic("oauth2.TokenSource is required")
	}
	return &TokenProvider{source: oauth2.ReuseTokenSource(nil, src)}
}

// NewStaticProvider returns a provider that always hands out token.
func NewStaticProvider(token string) *TokenProvider {
	return NewTokenProvider(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
}

// ClientCredentialsConfig holds configuration for the client-credentials grant.
type ClientCredentialsConfig struct {
	ClientID     string
	ClientSecret string
	Scope        string
	Audience     string
	// DiscoveryURL is the issuer, with or without the well-known suffix.
	// It is used only when TokenURL is empty.
	DiscoveryURL string
	TokenURL     string
	HTTPClient   *http.Client // Optional, defaults to a client with a 30s timeout
}

// NewClientCredentialsProvider builds a provider that fetches tokens with the
// OAuth2 client-credentials grant, discovering the token endpoint when needed.
func NewClientCredentialsProvider(ctx context.Context, cfg ClientCredentialsConfig) (*TokenProvider, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if cfg.TokenURL == "" && cfg.DiscoveryURL == "" {
		return nil, errors.New("token URL or discovery URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	// The token source keeps this context for every refresh, so it must outlive ctx.
	clientCtx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		discovered, err := discoverTokenURL(context.WithValue(ctx, oauth2.HTTPClient, httpClient), cfg.DiscoveryURL)
		if err != nil {
			return nil, err
		}
		tokenURL = discovered
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
		Scopes:       strings.Fields(cfg.Scope),
	}
	if cfg.Audience != "" {
		cc.EndpointParams = url.Values{"audience": {cfg.Audience}}
	}

	return NewTokenProvider(cc.TokenSource(clientCtx)), nil
}

func discoverTokenURL(ctx context.Context, discoveryURL string) (string, error) {
	issuer := strings.TrimSuffix(discoveryURL, "/")
	issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")

	op, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return "", fmt.Errorf("oidc new provider: %w", err)
	}
	tokenURL := op.Endpoint().TokenURL
	if tokenURL == "" {
		return "", errors.New("oidc discovery returned no token endpoint")
	}
	return tokenURL, nil
}

// GetAccessToken implements ports.AccessTokenProvider.
func (p *TokenProvider) GetAccessToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	tok, err := p.source.Token()
	if err != nil {
		return "", fmt.Errorf("fetch token: %w", err)
	}
	if tok.AccessToken == "" {
		return "", errors.New("token source returned an empty access token")
	}
	return tok.AccessToken, nil
}
