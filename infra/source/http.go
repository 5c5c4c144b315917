package source

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kilianp07/roomutil/core/logger"
)

// TokenProvider supplies bearer tokens for protected endpoints.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// refresher is implemented by providers able to discard a rejected token.
type refresher interface {
	ForceRefresh(ctx context.Context) (string, error)
}

// Options tune a source.
type Options struct {
	Timeout    time.Duration
	RetryCount int
	Logger     logger.Logger
	// Auth, when set, adds a bearer token to every request.
	Auth TokenProvider
}

// HTTPSource fetches a table with a GET request on every call to Rows.
type HTTPSource struct {
	url    string
	format Format
	client *resty.Client
	auth   TokenProvider
	log    logger.Logger
}

// NewHTTPSource returns a source for url.
func NewHTTPSource(url string, opts Options) *HTTPSource {
	client := resty.New().
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Accept", "text/csv, application/vnd.openxmlformats-officedocument.spreadsheetml.sheet, */*")
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	return &HTTPSource{
		url:    url,
		format: DetectFormat(url),
		client: client,
		auth:   opts.Auth,
		log:    logger.OrNop(opts.Logger),
	}
}

// SetLogger replaces the source logger.
func (s *HTTPSource) SetLogger(l logger.Logger) { s.log = logger.OrNop(l) }

// Rows downloads and decodes the resource.
func (s *HTTPSource) Rows(ctx context.Context) ([][]string, error) {
	start := time.Now()
	resp, err := s.get(ctx, false)
	if err == nil && resp.StatusCode() == http.StatusUnauthorized {
		if _, ok := s.auth.(refresher); ok {
			s.log.Warnf("source %s rejected token, refreshing", s.url)
			resp, err = s.get(ctx, true)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", s.url, resp.Status())
	}
	s.log.Debugw("source fetched", map[string]any{
		"url":      s.url,
		"bytes":    len(resp.Body()),
		"duration": time.Since(start).String(),
	})
	rows, err := Decode(s.format, bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.url, err)
	}
	return rows, nil
}

func (s *HTTPSource) get(ctx context.Context, refresh bool) (*resty.Response, error) {
	req := s.client.R().SetContext(ctx)
	if s.auth != nil {
		var tok string
		var err error
		if r, ok := s.auth.(refresher); ok && refresh {
			tok, err = r.ForceRefresh(ctx)
		} else {
			tok, err = s.auth.GetToken(ctx)
		}
		if err != nil {
			return nil, err
		}
		req.SetAuthToken(tok)
	}
	return req.Get(s.url)
}
