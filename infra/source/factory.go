package source

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kilianp07/roomutil/auth"
	"github.com/kilianp07/roomutil/core/dataset"
	"github.com/kilianp07/roomutil/core/factory"
	"github.com/kilianp07/roomutil/core/logger"
)

var sourceRegistry = factory.NewRegistry[dataset.Source]()

type sourceConf struct {
	URL            string    `json:"url"`
	TimeoutSeconds int       `json:"timeout_seconds"`
	RetryCount     int       `json:"retry_count"`
	Auth           auth.Conf `json:"auth"`
}

func init() {
	httpFactory := func(conf map[string]any) (dataset.Source, error) {
		var c sourceConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		opts := Options{
			Timeout:    time.Duration(c.TimeoutSeconds) * time.Second,
			RetryCount: c.RetryCount,
		}
		if c.Auth.Enabled() {
			opts.Auth = auth.NewClientCred(c.Auth)
		}
		return NewHTTPSource(c.URL, opts), nil
	}
	_ = RegisterSource("http", httpFactory)
	_ = RegisterSource("https", httpFactory)
	_ = RegisterSource("file", func(conf map[string]any) (dataset.Source, error) {
		var c sourceConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewFileSource(c.URL), nil
	})
}

// RegisterSource registers a factory for a URL scheme.
func RegisterSource(scheme string, f factory.Factory[dataset.Source]) error {
	return sourceRegistry.Register(scheme, f)
}

// Scheme returns the registry key for a location. Plain paths, including
// Windows drive paths, map to "file".
func Scheme(location string) string {
	u, err := url.Parse(location)
	if err != nil || len(u.Scheme) <= 1 {
		return "file"
	}
	return u.Scheme
}

// New builds the source for location. Sources that log receive log.
func New(location string, cfg Config, log logger.Logger) (dataset.Source, error) {
	src, err := sourceRegistry.Create(factory.ModuleConfig{
		Type: Scheme(location),
		Conf: map[string]any{
			"url":             location,
			"timeout_seconds": cfg.TimeoutSeconds,
			"retry_count":     cfg.RetryCount,
			"auth": map[string]any{
				"client_id":     cfg.Auth.ClientID,
				"client_secret": cfg.Auth.ClientSecret,
				"auth_url":      cfg.Auth.AuthURL,
				"scopes":        cfg.Auth.Scopes,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", location, err)
	}
	if l, ok := src.(interface{ SetLogger(logger.Logger) }); ok && log != nil {
		l.SetLogger(log)
	}
	return src, nil
}

// NewPair builds the room and section sources of cfg.
func NewPair(cfg Config, log logger.Logger) (rooms, sections dataset.Source, err error) {
	if rooms, err = New(cfg.RoomsURL, cfg, log); err != nil {
		return nil, nil, err
	}
	if sections, err = New(cfg.SectionsURL, cfg, log); err != nil {
		return nil, nil, err
	}
	return rooms, sections, nil
}
