package efficiency

import (
	"github.com/samber/lo"

	"github.com/kilianp07/roomutil/core/model"
)

// OccupancySlot counts the distinct rooms used in one day×session slot.
type OccupancySlot struct {
	Day     model.Day     `json:"day"`
	Session model.Session `json:"session"`
	Label   string        `json:"label"`
	Rooms   int           `json:"rooms"`
	// Percent is Rooms relative to the inventory size.
	Percent float64 `json:"percent"`
}

// OccupancySeries is the dense occupancy view for one (day, session)
// filter pair.
type OccupancySeries struct {
	Day     string          `json:"day"`
	Session string          `json:"session"`
	Slots   []OccupancySlot `json:"slots"`
}

// Occupancy holds every filter combination.
type Occupancy struct {
	TotalRooms int               `json:"total_rooms"`
	Series     []OccupancySeries `json:"series"`
}

// ByOccupancy counts distinct rooms per slot for every combination of
// ({ALL}∪days) × ({ALL}∪sessions), day-major. totalRooms is the inventory
// size used for percentages.
func ByOccupancy(recs []model.Record, totalRooms int) Occupancy {
	inDomain := lo.Filter(recs, func(r model.Record, _ int) bool {
		return r.Room != "" && r.Day.Known() && r.Session.Known()
	})
	bySlot := lo.GroupBy(inDomain, func(r model.Record) slotKey {
		return slotKey{day: r.Day, session: r.Session}
	})
	used := make(map[slotKey]int, len(bySlot))
	for k, rs := range bySlot {
		used[k] = len(lo.Uniq(lo.Map(rs, func(r model.Record, _ int) string { return r.Room })))
	}

	occ := Occupancy{TotalRooms: totalRooms}
	for _, day := range DayFilters() {
		for _, session := range SessionFilters() {
			series := OccupancySeries{Day: day, Session: session}
			for _, k := range slotTemplate(day) {
				if session != model.All && string(k.session) != session {
					continue
				}
				n := used[k]
				series.Slots = append(series.Slots, OccupancySlot{
					Day:     k.day,
					Session: k.session,
					Label:   model.SlotLabel(k.day, k.session),
					Rooms:   n,
					Percent: Share(n, totalRooms),
				})
			}
			occ.Series = append(occ.Series, series)
		}
	}
	return occ
}

// Find returns the series of a filter pair and its index.
func (o Occupancy) Find(day, session string) (OccupancySeries, int, bool) {
	for i, s := range o.Series {
		if s.Day == day && s.Session == session {
			return s, i, true
		}
	}
	return OccupancySeries{}, -1, false
}
