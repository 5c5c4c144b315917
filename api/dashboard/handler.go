// Package dashboard exposes the summary page, the dashboard page and their
// JSON mirrors over HTTP.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/roomutil/core/logger"
	coremetrics "github.com/kilianp07/roomutil/core/metrics"
	"github.com/kilianp07/roomutil/core/model"
	"github.com/kilianp07/roomutil/core/monitoring"
	"github.com/kilianp07/roomutil/core/report"
)

// Provider computes the render models of a request.
type Provider interface {
	Summary(ctx context.Context) (report.Summary, error)
	Dashboard(ctx context.Context, period, day string) (*report.Dashboard, error)
}

// Renderer writes the HTML pages.
type Renderer interface {
	Summary(w io.Writer, s report.Summary) error
	Dashboard(w io.Writer, d *report.Dashboard) error
}

// RequestIDHeader carries the id logged for each request.
const RequestIDHeader = "X-Request-ID"

type handler struct {
	provider Provider
	render   Renderer
	rec      coremetrics.RequestRecorder
	log      logger.Logger
}

// NewHandler routes GET /, /dashboard, /api/summary and /api/dashboard.
// The sink records one RequestEvent per request when it supports it.
func NewHandler(p Provider, r Renderer, sink coremetrics.MetricsSink, log logger.Logger) http.Handler {
	h := &handler{provider: p, render: r, log: logger.OrNop(log)}
	if rec, ok := sink.(coremetrics.RequestRecorder); ok {
		h.rec = rec
	}
	mux := http.NewServeMux()
	mux.Handle("/{$}", h.wrap("/", h.summaryPage))
	mux.Handle("/dashboard", h.wrap("/dashboard", h.dashboardPage))
	mux.Handle("/api/summary", h.wrap("/api/summary", h.summaryJSON))
	mux.Handle("/api/dashboard", h.wrap("/api/dashboard", h.dashboardJSON))
	return mux
}

// Filters reads the semester and hari query parameters. Both default to
// ALL and are upper-cased.
func Filters(r *http.Request) (period, day string) {
	q := r.URL.Query()
	return model.NormalizeFilter(q.Get("semester")), model.NormalizeFilter(q.Get("hari"))
}

// handlerFunc must not write to w when it returns an error.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (h *handler) wrap(route string, fn handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		w.Header().Set(RequestIDHeader, id)
		status := http.StatusOK
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			status = http.StatusMethodNotAllowed
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", status)
		} else if err := fn(w, r); err != nil {
			status = http.StatusInternalServerError
			h.log.Errorf("request %s %s: %v", id, route, err)
			monitoring.CaptureException(err, map[string]string{"route": route, "request_id": id})
			http.Error(w, "internal server error", status)
		}
		elapsed := time.Since(start)
		h.log.Infof("%s %s %d %s request_id=%s", r.Method, r.URL.RequestURI(), status, elapsed, id)
		if h.rec != nil {
			ev := coremetrics.RequestEvent{Route: route, Status: status, Duration: elapsed, Time: start}
			if err := h.rec.RecordRequest(ev); err != nil {
				h.log.Warnf("record request: %v", err)
			}
		}
	})
}

func (h *handler) summaryPage(w http.ResponseWriter, r *http.Request) error {
	s, err := h.provider.Summary(r.Context())
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return h.render.Summary(w, s)
}

func (h *handler) dashboardPage(w http.ResponseWriter, r *http.Request) error {
	period, day := Filters(r)
	d, err := h.provider.Dashboard(r.Context(), period, day)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return h.render.Dashboard(w, d)
}

func (h *handler) summaryJSON(w http.ResponseWriter, r *http.Request) error {
	s, err := h.provider.Summary(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, s)
}

func (h *handler) dashboardJSON(w http.ResponseWriter, r *http.Request) error {
	period, day := Filters(r)
	d, err := h.provider.Dashboard(r.Context(), period, day)
	if err != nil {
		return err
	}
	return writeJSON(w, d)
}

func writeJSON(w http.ResponseWriter, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
	return nil
}
