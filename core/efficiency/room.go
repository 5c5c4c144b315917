package efficiency

import (
	"sort"

	"github.com/kilianp07/roomutil/core/model"
)

// RankLimit is the size of the top and bottom room views.
const RankLimit = 10

// RoomEfficiency is the mean efficiency of one room.
type RoomEfficiency struct {
	Room       string  `json:"room"`
	Efficiency float64 `json:"efficiency"`
	Percent    float64 `json:"percent"`
	// Sections counts the records with a defined efficiency.
	Sections int `json:"sections"`
}

// RoomRanking holds the rooms sorted by descending efficiency.
type RoomRanking struct {
	All []RoomEfficiency `json:"all"`
	// Top is the head of All.
	Top []RoomEfficiency `json:"top"`
	// Bottom is the tail of All, still in descending order.
	Bottom []RoomEfficiency `json:"bottom"`
	// Unrated lists rooms whose records all lack a defined efficiency.
	Unrated []string `json:"unrated"`
}

// ByRoom ranks rooms by mean efficiency, highest first.
func ByRoom(recs []model.Record) RoomRanking {
	all, unrated := roomMeans(recs)
	r := RoomRanking{All: all, Unrated: unrated}
	n := len(all)
	r.Top = all[:min(RankLimit, n)]
	r.Bottom = all[max(0, n-RankLimit):]
	return r
}

// roomMeans returns rated rooms sorted by descending percentage, ties by
// name, plus the names of unrated rooms in first-seen order.
func roomMeans(recs []model.Record) ([]RoomEfficiency, []string) {
	g := newGroups[string]()
	for _, r := range recs {
		if r.Room == "" {
			continue
		}
		g.add(r.Room, r.Efficiency)
	}
	out := make([]RoomEfficiency, 0, len(g.order))
	var unrated []string
	for _, room := range g.order {
		acc := g.get(room)
		m, ok := acc.mean()
		if !ok {
			unrated = append(unrated, room)
			continue
		}
		out = append(out, RoomEfficiency{Room: room, Efficiency: m, Percent: Percent(m), Sections: len(acc.values)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return out[i].Room < out[j].Room
	})
	return out, unrated
}
