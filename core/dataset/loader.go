package dataset

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/kilianp07/roomutil/core/logger"
	"github.com/kilianp07/roomutil/core/metrics"
	"github.com/kilianp07/roomutil/core/model"
)

// Dataset is the loaded inventory and the section records of one period.
type Dataset struct {
	Rooms    []model.Room
	Sections []model.Section
	// Period is the normalized filter that produced Sections.
	Period string
	// Periods lists every period key present before filtering.
	Periods []string
}

// Records joins the sections with the room inventory.
func (d *Dataset) Records() []model.Record { return Join(d.Rooms, d.Sections) }

// Loader fetches and decodes both sources on every call.
type Loader struct {
	rooms    Source
	sections Source
	cols     Columns
	log      logger.Logger
	sink     metrics.MetricsSink
}

// NewLoader creates a Loader. Nil logger or sink fall back to no-ops.
func NewLoader(rooms, sections Source, cols Columns, log logger.Logger, sink metrics.MetricsSink) *Loader {
	cols.SetDefaults()
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Loader{rooms: rooms, sections: sections, cols: cols, log: logger.OrNop(log), sink: sink}
}

// Load returns the full room table and the sections of the given period.
// The period is matched case and whitespace insensitively; any spelling of
// ALL keeps every section.
func (l *Loader) Load(ctx context.Context, period string) (*Dataset, error) {
	roomTable, err := l.fetch(ctx, "rooms", l.rooms)
	if err != nil {
		return nil, err
	}
	rooms, err := roomTable.Rooms(l.cols)
	if err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}
	if dups := DuplicateRooms(rooms); len(dups) > 0 {
		l.log.Warnf("room inventory repeats %d names, first rows win: %v", len(dups), dups)
	}

	sectionTable, err := l.fetch(ctx, "sections", l.sections)
	if err != nil {
		return nil, err
	}
	sections, err := sectionTable.Sections(l.cols)
	if err != nil {
		return nil, fmt.Errorf("decode sections: %w", err)
	}

	filter := model.NormalizeFilter(period)
	ds := &Dataset{
		Rooms:    rooms,
		Sections: FilterPeriod(sections, filter),
		Period:   filter,
		Periods:  Periods(sections),
	}
	l.log.Debugw("dataset loaded", map[string]any{
		"period":   filter,
		"rooms":    len(rooms),
		"sections": len(ds.Sections),
		"total":    len(sections),
	})
	return ds, nil
}

func (l *Loader) fetch(ctx context.Context, table string, src Source) (*Table, error) {
	start := time.Now()
	rows, err := src.Rows(ctx)
	ev := metrics.LoadEvent{Table: table, Duration: time.Since(start), Time: start}
	if err == nil && len(rows) > 0 {
		ev.Rows = len(rows) - 1
	}
	ev.Failed = err != nil
	if rerr := l.sink.RecordLoad(ev); rerr != nil {
		l.log.Warnf("record %s load: %v", table, rerr)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}
	t, err := NewTable(rows)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", table, err)
	}
	return t, nil
}

// FilterPeriod keeps sections whose period equals the normalized filter.
func FilterPeriod(sections []model.Section, period string) []model.Section {
	filter := model.NormalizeFilter(period)
	if filter == model.All {
		return sections
	}
	return lo.Filter(sections, func(s model.Section, _ int) bool { return s.Period == filter })
}

// Periods returns the distinct non-empty period keys in ascending order.
func Periods(sections []model.Section) []string {
	keys := lo.Uniq(lo.FilterMap(sections, func(s model.Section, _ int) (string, bool) {
		return s.Period, s.Period != ""
	}))
	sort.Strings(keys)
	return keys
}
