package config

import (
	"fmt"
	"strings"
)

// AuthMode selects how the client obtains its bearer token.
type AuthMode string

const (
	// AuthModeStatic sends a pre-issued token verbatim.
	AuthModeStatic AuthMode = "static"
	// AuthModeOAuth fetches tokens with the OAuth2 client-credentials grant.
	AuthModeOAuth AuthMode = "oauth"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "static", "oauth":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: static, oauth)", v)
	}
}

// OAuthConfig contains client-credentials configuration.
// Either TokenURL or DiscoveryURL must be set.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	Scope        string `env:"SCOPE"`
	Audience     string `env:"AUDIENCE"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	TokenURL     string `env:"TOKEN_URL"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which token provider to build.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"static"`

	// Token is the bearer token used when Mode=static.
	Token string `env:"TOKEN"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`
}

// Sanitize trims values and fills in the mode default.
func (c *AuthConfig) Sanitize() {
	if c.Mode == "" {
		c.Mode = AuthModeStatic
	}
	c.Token = strings.TrimSpace(c.Token)
	c.OAuth.DiscoveryURL = strings.TrimSpace(c.OAuth.DiscoveryURL)
	c.OAuth.TokenURL = strings.TrimSpace(c.OAuth.TokenURL)
}

// Validate reports configuration that cannot produce a token.
func (c *AuthConfig) Validate() error {
	switch c.Mode {
	case AuthModeStatic, "":
		if c.Token == "" {
			return fmt.Errorf("auth mode %q requires GALILEO_TOKEN", AuthModeStatic)
		}
	case AuthModeOAuth:
		if c.OAuth.ClientID == "" || c.OAuth.ClientSecret == "" {
			return fmt.Errorf("auth mode %q requires client id and secret", AuthModeOAuth)
		}
		if c.OAuth.TokenURL == "" && c.OAuth.DiscoveryURL == "" {
			return fmt.Errorf("auth mode %q requires a token or discovery url", AuthModeOAuth)
		}
	default:
		return fmt.Errorf("unknown auth mode %q", c.Mode)
	}
	return nil
}
