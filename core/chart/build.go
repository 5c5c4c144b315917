package chart

import (
	"fmt"

	"github.com/kilianp07/roomutil/core/efficiency"
	"github.com/kilianp07/roomutil/core/model"
)

const defaultHeight = 460

// Figure identifiers, also used as DOM ids by renderers.
const (
	RoomFigureID      = "chart-rooms"
	ProgramFigureID   = "chart-programs"
	SlotFigureID      = "chart-slots"
	OccupancyFigureID = "chart-occupancy"
)

func roomTrace(name, color string, rows []efficiency.RoomEfficiency, visible bool) Trace {
	t := Trace{Name: name, Color: color, Visible: visible}
	for _, r := range rows {
		t.Labels = append(t.Labels, r.Room)
		t.Values = append(t.Values, r.Percent)
		t.Text = append(t.Text, PercentText(r.Percent))
	}
	return t
}

// RoomFigure shows all rooms, the top ten and the bottom ten, starting on
// the top ten.
func RoomFigure(r efficiency.RoomRanking) Figure {
	traces := []Trace{
		roomTrace("All rooms", "#3b82f6", r.All, false),
		roomTrace(fmt.Sprintf("Top %d", efficiency.RankLimit), "#16a34a", r.Top, true),
		roomTrace(fmt.Sprintf("Bottom %d", efficiency.RankLimit), "#dc2626", r.Bottom, false),
	}
	menu := Menu{Name: "view", Active: 1}
	for i, t := range traces {
		menu.Buttons = append(menu.Buttons, Button{Label: t.Name, Visible: mask(len(traces), i)})
	}
	return Figure{
		ID:     RoomFigureID,
		Layout: Layout{Title: "Room efficiency", YTitle: "Efficiency (%)", Height: defaultHeight, TickAngle: 80},
		Traces: traces,
		Menus:  []Menu{menu},
	}
}

// ProgramFigure is a single always-visible trace.
func ProgramFigure(rows []efficiency.ProgramEfficiency) Figure {
	t := Trace{Name: "Programs", Color: "steelblue", Visible: true}
	for _, p := range rows {
		t.Labels = append(t.Labels, p.Program)
		t.Values = append(t.Values, p.Percent)
		t.Text = append(t.Text, PercentText(p.Percent))
	}
	return Figure{
		ID: ProgramFigureID,
		Layout: Layout{
			Title:     "Program efficiency",
			XTitle:    "Study program",
			YTitle:    "Efficiency (%)",
			Height:    defaultHeight,
			TickAngle: 45,
		},
		Traces: []Trace{t},
	}
}

// SlotFigure holds one trace per day filter; the trace matching day is
// visible. Unknown day values fall back to ALL.
func SlotFigure(series []efficiency.SlotSeries, day string) Figure {
	day = model.DayFilter(day)
	traces := make([]Trace, 0, len(series))
	for _, s := range series {
		t := Trace{Name: s.Day, Color: "steelblue", Visible: s.Day == day}
		for _, slot := range s.Slots {
			t.Labels = append(t.Labels, slot.Label)
			t.Values = append(t.Values, slot.Percent)
			t.Text = append(t.Text, PercentText(slot.Percent))
		}
		traces = append(traces, t)
	}
	menu := Menu{Name: "day"}
	for i, t := range traces {
		if t.Visible {
			menu.Active = i
		}
		menu.Buttons = append(menu.Buttons, Button{Label: t.Name, Visible: mask(len(traces), i)})
	}
	return Figure{
		ID: SlotFigureID,
		Layout: Layout{
			Title:     "Efficiency by day and session",
			XTitle:    "Day - Session",
			YTitle:    "Efficiency (%)",
			Height:    defaultHeight,
			TickAngle: 45,
		},
		Traces: traces,
		Menus:  []Menu{menu},
	}
}

// OccupancyFigure holds one trace per (day, session) filter pair. The
// (day, ALL) trace is visible, which is (ALL, ALL) by default. The day menu
// switches among (d, ALL) and the session menu among (ALL, s); combined
// pairs are precomputed but not reachable from the menus.
func OccupancyFigure(occ efficiency.Occupancy, day string) Figure {
	day = model.DayFilter(day)
	traces := make([]Trace, 0, len(occ.Series))
	for _, s := range occ.Series {
		t := Trace{
			Name:    s.Day + " / " + s.Session,
			Color:   "royalblue",
			Visible: s.Day == day && s.Session == model.All,
		}
		for _, slot := range s.Slots {
			t.Labels = append(t.Labels, slot.Label)
			t.Values = append(t.Values, slot.Percent)
			t.Text = append(t.Text, PercentText(slot.Percent))
		}
		traces = append(traces, t)
	}

	dayMenu := Menu{Name: "day"}
	for _, d := range efficiency.DayFilters() {
		if _, idx, ok := occ.Find(d, model.All); ok {
			if d == day {
				dayMenu.Active = len(dayMenu.Buttons)
			}
			dayMenu.Buttons = append(dayMenu.Buttons, Button{Label: d, Visible: mask(len(traces), idx)})
		}
	}
	sessionMenu := Menu{Name: "session"}
	for _, s := range efficiency.SessionFilters() {
		if _, idx, ok := occ.Find(model.All, s); ok {
			label := s
			if s != model.All {
				label = "Session " + s
			}
			sessionMenu.Buttons = append(sessionMenu.Buttons, Button{Label: label, Visible: mask(len(traces), idx)})
		}
	}
	return Figure{
		ID: OccupancyFigureID,
		Layout: Layout{
			Title:     "Room occupancy",
			XTitle:    "Day - Session",
			YTitle:    "Rooms in use (%)",
			Height:    defaultHeight,
			TickAngle: 45,
		},
		Traces: traces,
		Menus:  []Menu{dayMenu, sessionMenu},
	}
}
