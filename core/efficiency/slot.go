package efficiency

import "github.com/kilianp07/roomutil/core/model"

type slotKey struct {
	day     model.Day
	session model.Session
}

// slotTemplate enumerates the day×session cross-product for a day filter,
// ordered by day then session.
func slotTemplate(day string) []slotKey {
	days := model.Days
	if day != model.All {
		days = []model.Day{model.Day(day)}
	}
	out := make([]slotKey, 0, len(days)*len(model.Sessions))
	for _, d := range days {
		for _, s := range model.Sessions {
			out = append(out, slotKey{day: d, session: s})
		}
	}
	return out
}

// DayFilters returns ALL followed by the teaching days.
func DayFilters() []string {
	out := []string{model.All}
	for _, d := range model.Days {
		out = append(out, string(d))
	}
	return out
}

// SessionFilters returns ALL followed by the session slots.
func SessionFilters() []string {
	out := []string{model.All}
	for _, s := range model.Sessions {
		out = append(out, string(s))
	}
	return out
}

// SlotEfficiency is the mean efficiency of one day×session slot.
type SlotEfficiency struct {
	Day        model.Day     `json:"day"`
	Session    model.Session `json:"session"`
	Label      string        `json:"label"`
	Efficiency float64       `json:"efficiency"`
	Percent    float64       `json:"percent"`
	Sections   int           `json:"sections"`
}

// SlotSeries is the dense slot view for one day filter.
type SlotSeries struct {
	Day   string           `json:"day"`
	Slots []SlotEfficiency `json:"slots"`
}

// BySlot computes one series per day filter (ALL, then each day). Each
// series covers the full cross-product of its days and the sessions;
// slots without a defined mean report 0. Records outside the day or
// session domain do not contribute.
func BySlot(recs []model.Record) []SlotSeries {
	g := newGroups[slotKey]()
	for _, r := range recs {
		if !r.Day.Known() || !r.Session.Known() {
			continue
		}
		g.add(slotKey{day: r.Day, session: r.Session}, r.Efficiency)
	}
	filters := DayFilters()
	out := make([]SlotSeries, 0, len(filters))
	for _, day := range filters {
		keys := slotTemplate(day)
		series := SlotSeries{Day: day, Slots: make([]SlotEfficiency, 0, len(keys))}
		for _, k := range keys {
			slot := SlotEfficiency{Day: k.day, Session: k.session, Label: model.SlotLabel(k.day, k.session)}
			acc := g.get(k)
			if m, ok := acc.mean(); ok {
				slot.Efficiency = m
				slot.Percent = Percent(m)
				slot.Sections = len(acc.values)
			}
			series.Slots = append(series.Slots, slot)
		}
		out = append(out, series)
	}
	return out
}

// FindSlotSeries returns the series of a day filter and its index.
func FindSlotSeries(series []SlotSeries, day string) (SlotSeries, int, bool) {
	for i, s := range series {
		if s.Day == day {
			return s, i, true
		}
	}
	return SlotSeries{}, -1, false
}
