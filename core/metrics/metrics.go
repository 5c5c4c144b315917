package metrics

import "time"

// LoadEvent describes one fetch-and-decode of a source table.
type LoadEvent struct {
	// Table is "rooms" or "sections".
	Table    string
	Rows     int
	Duration time.Duration
	Failed   bool
	Time     time.Time
}

// MetricsSink records pipeline activity for observability purposes.
type MetricsSink interface {
	RecordLoad(ev LoadEvent) error
}

// SummaryEvent is the efficiency category distribution of one computation.
type SummaryEvent struct {
	Period      string
	Efficient   int
	Adequate    int
	Inefficient int
	Unrated     int
	Total       int
	Time        time.Time
}

// SummaryRecorder records summary distributions.
type SummaryRecorder interface {
	RecordSummary(ev SummaryEvent) error
}

// RequestEvent describes one served HTTP request.
type RequestEvent struct {
	Route    string
	Status   int
	Duration time.Duration
	Time     time.Time
}

// RequestRecorder records served requests.
type RequestRecorder interface {
	RecordRequest(ev RequestEvent) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordLoad(LoadEvent) error       { return nil }
func (NopSink) RecordSummary(SummaryEvent) error { return nil }
func (NopSink) RecordRequest(RequestEvent) error { return nil }
