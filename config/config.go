package config

import (
	"strings"
	"time"
)

// DefaultNamespace is the API prefix of the Galileo user-interface endpoints.
const DefaultNamespace = "/galileo/user_interface/v1"

// SDKConfig is the configuration for a Galileo client, composed from the
// domain-specific structs in this package.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Access-token acquisition
//   - observability.go: Logging and StatsD metrics
type SDKConfig struct {
	// Backend is the scheme and host of the Galileo API, e.g. "https://api.galileoapp.io".
	Backend string `env:"GALILEO_BACKEND,required"`

	// Namespace is the path prefix every endpoint lives under.
	Namespace string `env:"GALILEO_NAMESPACE" envDefault:"/galileo/user_interface/v1"`

	// HTTPTimeout bounds each backend request, including reading the body.
	HTTPTimeout time.Duration `env:"GALILEO_HTTP_TIMEOUT" envDefault:"30s"`

	// Authentication configuration
	Auth AuthConfig `envPrefix:"GALILEO_"`

	// Observability configuration
	Observability ObservabilityConfig `envPrefix:"GALILEO_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *SDKConfig) Sanitize() {
	c.Backend = strings.TrimRight(strings.TrimSpace(c.Backend), "/")

	c.Namespace = strings.Trim(strings.TrimSpace(c.Namespace), "/")
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	} else {
		c.Namespace = "/" + c.Namespace
	}

	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 30 * time.Second
	}

	c.Auth.Sanitize()
	c.Observability.Sanitize()
}
