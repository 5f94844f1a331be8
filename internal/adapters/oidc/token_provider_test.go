package oidc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// newIdP serves a discovery document and a client-credentials token endpoint.
func newIdP(t *testing.T, tokenCalls *atomic.Int32) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"issuer":                 srv.URL,
			"authorization_endpoint": srv.URL + "/auth",
			"token_endpoint":         srv.URL + "/token",
			"jwks_uri":               srv.URL + "/jwks",
		})
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "galileo-api", r.PostForm.Get("audience"))
		assert.Equal(t, "jobs machines", r.PostForm.Get("scope"))
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client", user)
		assert.Equal(t, "secret", pass)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "cc-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientCredentialsProvider_Discovery(t *testing.T) {
	var calls atomic.Int32
	idp := newIdP(t, &calls)

	p, err := NewClientCredentialsProvider(context.Background(), ClientCredentialsConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		Scope:        "jobs machines",
		Audience:     "galileo-api",
		DiscoveryURL: idp.URL + "/.well-known/openid-configuration",
		HTTPClient:   idp.Client(),
	})
	require.NoError(t, err)

	tok, err := p.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cc-token", tok)

	// Cached until expiry.
	tok, err = p.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cc-token", tok)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClientCredentialsProvider_ExplicitTokenURL(t *testing.T) {
	var calls atomic.Int32
	idp := newIdP(t, &calls)

	p, err := NewClientCredentialsProvider(context.Background(), ClientCredentialsConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		Scope:        "jobs machines",
		Audience:     "galileo-api",
		TokenURL:     idp.URL + "/token",
	})
	require.NoError(t, err)

	tok, err := p.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cc-token", tok)
}

func TestClientCredentialsProvider_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		config ClientCredentialsConfig
		errMsg string
	}{
		{
			name:   "missing client ID",
			config: ClientCredentialsConfig{ClientSecret: "secret", TokenURL: "http://example.com/token"},
			errMsg: "client ID is required",
		},
		{
			name:   "missing client secret",
			config: ClientCredentialsConfig{ClientID: "client", TokenURL: "http://example.com/token"},
			errMsg: "client secret is required",
		},
		{
			name:   "missing endpoints",
			config: ClientCredentialsConfig{ClientID: "client", ClientSecret: "secret"},
			errMsg: "token URL or discovery URL is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClientCredentialsProvider(context.Background(), tt.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestClientCredentialsProvider_DiscoveryFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewClientCredentialsProvider(context.Background(), ClientCredentialsConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		DiscoveryURL: srv.URL,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oidc new provider")
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider("static-token")
	tok, err := p.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "static-token", tok)

	_, err = NewStaticProvider("").GetAccessToken(context.Background())
	require.Error(t, err)
}

func TestTokenProvider_CanceledContext(t *testing.T) {
	p := NewTokenProvider(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "x"}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.GetAccessToken(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewTokenProvider_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewTokenProvider(nil) })
}
