package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/roomutil/core/efficiency"
	coremetrics "github.com/kilianp07/roomutil/core/metrics"
	"github.com/kilianp07/roomutil/core/monitoring"
	"github.com/kilianp07/roomutil/core/report"
	"github.com/kilianp07/roomutil/infra/render"
)

type fakeProvider struct {
	period, day string
	err         error
}

func (f *fakeProvider) Summary(context.Context) (report.Summary, error) {
	if f.err != nil {
		return report.Summary{}, f.err
	}
	return report.Summary{
		Summary: efficiency.Summary{
			Efficient: efficiency.Bucket{Category: efficiency.Efficient, Count: 1, Percent: 100},
			Total:     1,
		},
		Period: "ALL",
		Rooms:  2,
	}, nil
}

func (f *fakeProvider) Dashboard(_ context.Context, period, day string) (*report.Dashboard, error) {
	f.period, f.day = period, day
	if f.err != nil {
		return nil, f.err
	}
	return &report.Dashboard{Period: period, Day: day, Periods: []string{"2023-1"}}, nil
}

type textRenderer struct{}

func (textRenderer) Summary(w io.Writer, s report.Summary) error {
	_, err := io.WriteString(w, "summary "+s.Period)
	return err
}

func (textRenderer) Dashboard(w io.Writer, d *report.Dashboard) error {
	_, err := io.WriteString(w, "dashboard "+d.Period+" "+d.Day)
	return err
}

type requestSink struct {
	coremetrics.NopSink
	mu     sync.Mutex
	events []coremetrics.RequestEvent
}

func (s *requestSink) RecordRequest(ev coremetrics.RequestEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func TestDashboard_Filters(t *testing.T) {
	p := &fakeProvider{}
	h := NewHandler(p, textRenderer{}, nil, nil)

	rr := serve(h, http.MethodGet, "/dashboard?semester=%202023-1&hari=senin")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2023-1", p.period)
	assert.Equal(t, "SENIN", p.day)
	assert.Equal(t, "dashboard 2023-1 SENIN", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))

	serve(h, http.MethodGet, "/dashboard")
	assert.Equal(t, "ALL", p.period)
	assert.Equal(t, "ALL", p.day)
}

func TestSummaryPage(t *testing.T) {
	h := NewHandler(&fakeProvider{}, textRenderer{}, nil, nil)
	rr := serve(h, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "summary ALL", rr.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
}

func TestMethodNotAllowed(t *testing.T) {
	h := NewHandler(&fakeProvider{}, textRenderer{}, nil, nil)
	rr := serve(h, http.MethodPost, "/dashboard")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET, HEAD", rr.Header().Get("Allow"))
}

func TestNotFound(t *testing.T) {
	h := NewHandler(&fakeProvider{}, textRenderer{}, nil, nil)
	rr := serve(h, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProviderError(t *testing.T) {
	sink := &requestSink{}
	h := NewHandler(&fakeProvider{err: errors.New("fetch rooms: 502")}, textRenderer{}, sink, nil)

	for _, target := range []string{"/", "/dashboard", "/api/summary", "/api/dashboard"} {
		rr := serve(h, http.MethodGet, target)
		assert.Equal(t, http.StatusInternalServerError, rr.Code, target)
		assert.NotContains(t, rr.Body.String(), "dashboard", target)
	}
	require.Len(t, sink.events, 4)
	assert.Equal(t, "/api/dashboard", sink.events[3].Route)
	assert.Equal(t, http.StatusInternalServerError, sink.events[3].Status)
}

func TestSummaryJSON(t *testing.T) {
	h := NewHandler(&fakeProvider{}, textRenderer{}, nil, nil)
	rr := serve(h, http.MethodGet, "/api/summary")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var out struct {
		Period    string `json:"period"`
		Rooms     int    `json:"rooms"`
		Total     int    `json:"total"`
		Efficient struct {
			Count   int     `json:"count"`
			Percent float64 `json:"percent"`
		} `json:"efficient"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "ALL", out.Period)
	assert.Equal(t, 2, out.Rooms)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, 100.0, out.Efficient.Percent)
}

func TestDashboardJSON(t *testing.T) {
	h := NewHandler(&fakeProvider{}, textRenderer{}, nil, nil)
	rr := serve(h, http.MethodGet, "/api/dashboard?semester=2023-1")
	require.Equal(t, http.StatusOK, rr.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "2023-1", out["period"])
	assert.NotContains(t, out, "Figures")
}

func TestDashboardPage_Rendered(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)
	h := NewHandler(&fakeProvider{}, r, nil, nil)

	rr := serve(h, http.MethodGet, "/dashboard?semester=2023-1")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `<option value="2023-1" selected>2023-1</option>`)
}

type captureMonitor struct{ tags []map[string]string }

func (c *captureMonitor) CaptureException(_ error, tags map[string]string) {
	c.tags = append(c.tags, tags)
}

func (c *captureMonitor) Flush(time.Duration) {}

func TestProviderError_Captured(t *testing.T) {
	mon := &captureMonitor{}
	monitoring.Init(mon)
	t.Cleanup(func() { monitoring.Init(monitoring.NopMonitor{}) })

	h := NewHandler(&fakeProvider{err: errors.New("timeout")}, textRenderer{}, nil, nil)
	rr := serve(h, http.MethodGet, "/dashboard")
	require.Len(t, mon.tags, 1)
	assert.Equal(t, "/dashboard", mon.tags[0]["route"])
	assert.Equal(t, rr.Header().Get(RequestIDHeader), mon.tags[0]["request_id"])
}
