package source

import (
	"errors"
	"time"

	"github.com/kilianp07/roomutil/auth"
)

// Config locates the two tables and tunes remote fetches.
type Config struct {
	RoomsURL       string `json:"rooms_url"`
	SectionsURL    string `json:"sections_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	RetryCount     int    `json:"retry_count"`
	// Auth enables OAuth2 client credentials on HTTP sources.
	Auth auth.Conf `json:"auth"`
}

// SetDefaults applies default values.
func (c *Config) SetDefaults() {
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 30
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.RoomsURL == "" {
		return errors.New("rooms_url is required")
	}
	if c.SectionsURL == "" {
		return errors.New("sections_url is required")
	}
	if c.TimeoutSeconds < 0 {
		return errors.New("timeout_seconds must be positive")
	}
	if c.RetryCount < 0 {
		return errors.New("retry_count must not be negative")
	}
	if c.Auth.Enabled() && c.Auth.AuthURL == "" {
		return errors.New("auth.auth_url is required with a client_id")
	}
	return nil
}

// Timeout returns the fetch timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
