package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/hypernetlabs/galileo-go/config"
	"github.com/hypernetlabs/galileo-go/internal/observability/statsd"
)

// BuildMetricsSink dials StatsD when metrics are enabled. It returns nil when
// they are disabled so callers can skip Close.
func BuildMetricsSink(cfg config.MetricsConfig, logger *slog.Logger) (*statsd.Client, error) {
	if !cfg.IsEnabled() {
		return nil, nil
	}
	client, err := statsd.NewClient(statsd.Config{
		Enabled: true,
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("statsd client: %w", err)
	}
	if logger != nil {
		logger.Debug("statsd metrics enabled", "address", cfg.StatsdAddress, "prefix", cfg.Prefix)
	}
	return client, nil
}
