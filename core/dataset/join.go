package dataset

import (
	"github.com/samber/lo"

	"github.com/kilianp07/roomutil/core/model"
)

// Join left-joins sections onto rooms by exact room name. Every section is
// kept; sections naming an unknown room get undefined capacity. When the
// inventory repeats a name the first row wins.
func Join(rooms []model.Room, sections []model.Section) []model.Record {
	byName := make(map[string]*model.Room, len(rooms))
	for i := range rooms {
		if _, ok := byName[rooms[i].Name]; !ok {
			byName[rooms[i].Name] = &rooms[i]
		}
	}
	out := make([]model.Record, len(sections))
	for i, s := range sections {
		out[i] = model.NewRecord(s, byName[s.Room])
	}
	return out
}

// DuplicateRooms lists room names appearing more than once in the inventory.
func DuplicateRooms(rooms []model.Room) []string {
	return lo.FindDuplicates(lo.Map(rooms, func(r model.Room, _ int) string { return r.Name }))
}

// RoomCount returns the number of distinct, non-empty room names.
func RoomCount(rooms []model.Room) int {
	names := lo.FilterMap(rooms, func(r model.Room, _ int) (string, bool) { return r.Name, r.Name != "" })
	return len(lo.Uniq(names))
}
