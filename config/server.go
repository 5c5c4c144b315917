package config

import (
	"fmt"
	"time"
)

// ServerConfig defines the dashboard HTTP listener.
type ServerConfig struct {
	Address string `json:"address"`
	// AssetsHost is the base URL the ECharts script is loaded from.
	AssetsHost          string `json:"assets_host"`
	ReadTimeoutSeconds  int    `json:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `json:"write_timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
	if c.ReadTimeoutSeconds == 0 {
		c.ReadTimeoutSeconds = 10
	}
	// Handlers fetch both sources before writing.
	if c.WriteTimeoutSeconds == 0 {
		c.WriteTimeoutSeconds = 90
	}
}

// Validate checks mandatory fields.
func (c ServerConfig) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("address is required")
	}
	if c.ReadTimeoutSeconds < 0 || c.WriteTimeoutSeconds < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}

// ReadTimeout returns the read timeout as a duration.
func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}
