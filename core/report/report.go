// Package report turns a loaded dataset into the view models served by the
// dashboard. Building a report is a pure function of the dataset and the
// day argument.
package report

import (
	"github.com/kilianp07/roomutil/core/chart"
	"github.com/kilianp07/roomutil/core/dataset"
	"github.com/kilianp07/roomutil/core/efficiency"
	"github.com/kilianp07/roomutil/core/model"
)

// Dashboard is the render model of the dashboard page.
type Dashboard struct {
	Period    string                         `json:"period"`
	Day       string                         `json:"day"`
	Periods   []string                       `json:"periods"`
	Rooms     efficiency.RoomRanking         `json:"rooms"`
	Programs  []efficiency.ProgramEfficiency `json:"programs"`
	Slots     []efficiency.SlotSeries        `json:"slots"`
	Occupancy efficiency.Occupancy           `json:"occupancy"`
	Figures   Figures                        `json:"-"`
}

// Figures are the four dashboard charts.
type Figures struct {
	Rooms     chart.Figure
	Programs  chart.Figure
	Slots     chart.Figure
	Occupancy chart.Figure
}

// All returns the figures in page order.
func (f Figures) All() []chart.Figure {
	return []chart.Figure{f.Rooms, f.Programs, f.Slots, f.Occupancy}
}

// BuildDashboard aggregates the dataset and assembles its figures. day
// selects the initially visible day series.
func BuildDashboard(ds *dataset.Dataset, day string) *Dashboard {
	recs := ds.Records()
	day = model.DayFilter(day)
	d := &Dashboard{
		Period:    ds.Period,
		Day:       day,
		Periods:   ds.Periods,
		Rooms:     efficiency.ByRoom(recs),
		Programs:  efficiency.ByProgram(recs),
		Slots:     efficiency.BySlot(recs),
		Occupancy: efficiency.ByOccupancy(recs, dataset.RoomCount(ds.Rooms)),
	}
	d.Figures = Figures{
		Rooms:     chart.RoomFigure(d.Rooms),
		Programs:  chart.ProgramFigure(d.Programs),
		Slots:     chart.SlotFigure(d.Slots, day),
		Occupancy: chart.OccupancyFigure(d.Occupancy, day),
	}
	return d
}

// Summary is the render model of the landing page.
type Summary struct {
	efficiency.Summary
	Period string `json:"period"`
	// Rooms is the inventory size, rated or not.
	Rooms int `json:"rooms"`
}

// BuildSummary computes the category distribution of the dataset.
func BuildSummary(ds *dataset.Dataset) Summary {
	return Summary{
		Summary: efficiency.Summarize(ds.Records()),
		Period:  ds.Period,
		Rooms:   dataset.RoomCount(ds.Rooms),
	}
}
