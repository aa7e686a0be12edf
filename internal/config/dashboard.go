package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// DashboardConfig holds the dashboard server settings, read from
// STREAMGIT_HOST and STREAMGIT_PORT.
type DashboardConfig struct {
	Host string `default:"127.0.0.1"`
	Port int    `default:"8501"`
}

// LoadDashboardConfig reads the dashboard settings from the environment,
// applying defaults for anything unset.
func LoadDashboardConfig() (DashboardConfig, error) {
	var cfg DashboardConfig
	if err := envconfig.Process("streamgit", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load dashboard configuration: %w", err)
	}
	return cfg, nil
}

// Addr returns the host:port listen address.
func (c DashboardConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
