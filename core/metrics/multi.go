package metrics

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordLoad forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordLoad(ev LoadEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordLoad(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordSummary forwards summaries to sinks supporting them.
func (m *MultiSink) RecordSummary(ev SummaryEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(SummaryRecorder); ok {
			if err := rec.RecordSummary(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordRequest forwards request events to sinks supporting them.
func (m *MultiSink) RecordRequest(ev RequestEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(RequestRecorder); ok {
			if err := rec.RecordRequest(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
